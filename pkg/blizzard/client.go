package blizzard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/GoblinLedger/wowapi/pkg/logging"
	"github.com/GoblinLedger/wowapi/pkg/metric"
	"github.com/sirupsen/logrus"
	"github.com/twinj/uuid"
)

// ErrNotAnObject - the response body is valid json but not a json object
var ErrNotAnObject = errors.New("response is not a json object")

// Params - caller-supplied query parameters, taking precedence over the locale and apikey defaults
type Params map[string]string

// Resource is a decoded json object returned verbatim from the api
type Resource map[string]interface{}

// Decode re-decodes the resource into v
func (r Resource) Decode(v interface{}) error {
	body, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, v)
}

// NewClient - generates a client used for querying the community api of one region
func NewClient(c Config) (Client, error) {
	c = c.withDefaults()

	baseURL, err := RegionBaseURL(c.Region)
	if err != nil {
		return Client{}, err
	}

	return Client{
		apiKey:     c.APIKey,
		locale:     c.Locale,
		region:     c.Region,
		baseURL:    baseURL,
		downloader: c.Downloader,
		sessionID:  uuid.NewV4().String(),
	}, nil
}

// Client - used for querying the community api; immutable once constructed
type Client struct {
	apiKey     string
	locale     string
	region     RegionName
	baseURL    string
	downloader Downloader
	sessionID  string
}

// Region - the region the client was constructed for
func (c Client) Region() RegionName { return c.region }

// Locale - the locale sent with every request
func (c Client) Locale() string { return c.locale }

// BaseURL - the base url every resource path is appended to
func (c Client) BaseURL() string { return c.baseURL }

// Downloader - the transport used by the client, for reuse when following urls found in responses
func (c Client) Downloader() Downloader { return c.downloader }

// SessionID - tags every log line of this client
func (c Client) SessionID() string { return c.sessionID }

func (c Client) query(params Params) url.Values {
	q := url.Values{}
	q.Set("locale", c.locale)
	q.Set("apikey", c.apiKey)
	for k, v := range params {
		q.Set(k, v)
	}

	return q
}

func (c Client) fetchBody(path string, params Params) ([]byte, string, error) {
	uri := c.baseURL + path
	q := c.query(params)

	logFields := logrus.Fields{
		"session": c.sessionID,
		"region":  c.region,
		"path":    path,
	}
	if obfuscated, err := metric.ObfuscateURI(uri + "?" + q.Encode()); err == nil {
		logFields["uri"] = obfuscated
	}
	logging.WithFields(logFields).Debug("Fetching resource")

	resp, err := c.downloader.Download(uri, q)
	if err != nil {
		return nil, uri, err
	}

	if resp.Status != http.StatusOK {
		logFields["status"] = resp.Status
		logging.WithFields(logFields).Info("Received failed response from Blizzard API")

		return nil, uri, &APIError{StatusCode: resp.Status, Message: string(resp.Body), URI: uri}
	}

	return resp.Body, uri, nil
}

// Fetch - downloads base url + path and decodes the json object it responds with
// Any other top-level json value (array, null, scalar) is a ParseError wrapping ErrNotAnObject
func (c Client) Fetch(path string, params Params) (Resource, error) {
	body, uri, err := c.fetchBody(path, params)
	if err != nil {
		return nil, err
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &ParseError{URI: uri, Err: err}
	}

	out, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, &ParseError{URI: uri, Err: fmt.Errorf("%w, got %T", ErrNotAnObject, decoded)}
	}

	return Resource(out), nil
}

// FetchInto - downloads base url + path and decodes the response into v
func (c Client) FetchInto(path string, params Params, v interface{}) error {
	body, uri, err := c.fetchBody(path, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{URI: uri, Err: err}
	}

	return nil
}
