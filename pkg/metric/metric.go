package metric

import (
	"net/url"
	"time"

	"github.com/GoblinLedger/wowapi/pkg/logging"
	"github.com/sirupsen/logrus"
)

const defaultMessage = "welp"

type name string

const (
	blizzardAPIIngress name = "blizzard_api_ingress"
	downloadAttempt    name = "download_attempt"
)

// credential query keys that never reach a log line
var obfuscatedKeys = []string{"apikey", "access_token"}

func report(n name, fields logrus.Fields) {
	fields["metric"] = n

	logging.WithFields(fields).Info(defaultMessage)
}

// ObfuscateURI replaces credentials in the query string of uri
func ObfuscateURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}

	q := u.Query()
	for _, key := range obfuscatedKeys {
		if _, ok := q[key]; ok {
			q.Set(key, "xxx")
		}
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// BlizzardAPIIngressMetrics - encapsulation of blizzard api metrics
type BlizzardAPIIngressMetrics struct {
	ByteCount          int
	ConnectionDuration time.Duration
	RequestDuration    time.Duration
}

func (b BlizzardAPIIngressMetrics) toFields() logrus.Fields {
	return logrus.Fields{
		"byte_count":    b.ByteCount,
		"conn_duration": b.ConnectionDuration.Nanoseconds() / int64(time.Millisecond),
		"req_duration":  b.RequestDuration.Nanoseconds() / int64(time.Millisecond),
	}
}

// ReportBlizzardAPIIngress - for knowing how much network ingress is happening via blizzard api
func ReportBlizzardAPIIngress(uri string, m BlizzardAPIIngressMetrics) error {
	uri, err := ObfuscateURI(uri)
	if err != nil {
		return err
	}

	fields := m.toFields()
	fields["uri"] = uri

	report(blizzardAPIIngress, fields)

	return nil
}

// ReportDownloadAttempt - for knowing how often auction files need another attempt
func ReportDownloadAttempt(uri string, attempt int, status int) error {
	uri, err := ObfuscateURI(uri)
	if err != nil {
		return err
	}

	report(downloadAttempt, logrus.Fields{
		"uri":     uri,
		"attempt": attempt,
		"status":  status,
	})

	return nil
}
