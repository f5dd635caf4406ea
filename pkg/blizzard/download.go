package blizzard

import (
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptrace"
	"net/url"
	"time"

	"github.com/GoblinLedger/wowapi/pkg/metric"
	"github.com/GoblinLedger/wowapi/pkg/util"
)

// DefaultTimeout bounds a single download made by an HTTPDownloader
const DefaultTimeout = 60 * time.Second

// ResponseMeta is a blizzard api response meta data
type ResponseMeta struct {
	ContentLength int
	Body          []byte
	Status        int
}

// Downloader issues a GET against uri with the given query
// A non-200 status is reported through ResponseMeta.Status, not as an error
type Downloader interface {
	Download(uri string, query url.Values) (ResponseMeta, error)
}

// requestTimer collects connection and request timings of a single request through httptrace
type requestTimer struct {
	connStart time.Time
	connEnd   time.Time
	reqStart  time.Time
	reqEnd    time.Time
}

func (rt *requestTimer) trace() *httptrace.ClientTrace {
	return &httptrace.ClientTrace{
		GetConn: func(string) { rt.connStart = time.Now() },
		GotConn: func(httptrace.GotConnInfo) { rt.connEnd = time.Now() },
	}
}

func (rt *requestTimer) ReqDuration() time.Duration {
	return rt.Duration() - rt.ConnDuration()
}

func (rt *requestTimer) ConnDuration() time.Duration {
	return rt.connEnd.Sub(rt.connStart)
}

func (rt *requestTimer) Duration() time.Duration {
	return rt.reqEnd.Sub(rt.reqStart)
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
}

// sharedTransport serves HTTPDownloader values not built by NewHTTPDownloader
var sharedTransport = newTransport()

// NewHTTPDownloader - the default downloader, with DefaultTimeout and its own pooled transport
func NewHTTPDownloader() HTTPDownloader {
	return HTTPDownloader{Timeout: DefaultTimeout, transport: newTransport()}
}

// HTTPDownloader downloads over net/http, ungzipping and reporting ingress metrics
// Copies share one connection pool
type HTTPDownloader struct {
	Timeout time.Duration

	transport *http.Transport
}

func (dl HTTPDownloader) pool() *http.Transport {
	if dl.transport == nil {
		return sharedTransport
	}

	return dl.transport
}

// CloseIdleConnections closes the pooled connections not currently in use
func (dl HTTPDownloader) CloseIdleConnections() {
	dl.pool().CloseIdleConnections()
}

// Download - performs HTTP GET request against uri, including adding gzip header and ungzipping
func (dl HTTPDownloader) Download(uri string, query url.Values) (ResponseMeta, error) {
	// appending the query
	u, err := url.Parse(uri)
	if err != nil {
		return ResponseMeta{}, err
	}
	if len(query) > 0 {
		q := u.Query()
		for k, values := range query {
			q[k] = values
		}
		u.RawQuery = q.Encode()
	}
	uri = u.String()

	// forming a request
	req, err := http.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		return ResponseMeta{}, err
	}
	req.Header.Add("Accept-Encoding", "gzip")

	// running it into a client
	tp := &requestTimer{}
	req = req.WithContext(httptrace.WithClientTrace(req.Context(), tp.trace()))
	tp.reqStart = time.Now()
	resp, err := (&http.Client{Transport: dl.pool(), Timeout: dl.Timeout}).Do(req)
	tp.reqEnd = time.Now()
	if err != nil {
		return ResponseMeta{}, err
	}

	// parsing the body
	body, isGzipped, err := func() ([]byte, bool, error) {
		defer resp.Body.Close()

		isGzipped := resp.Header.Get("Content-Encoding") == "gzip"
		out, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return []byte{}, false, err
		}

		return out, isGzipped, nil
	}()
	if err != nil {
		return ResponseMeta{}, err
	}

	// logging network ingress
	contentLength := len(body)
	err = metric.ReportBlizzardAPIIngress(uri, metric.BlizzardAPIIngressMetrics{
		ByteCount:          contentLength,
		ConnectionDuration: tp.ConnDuration(),
		RequestDuration:    tp.ReqDuration(),
	})
	if err != nil {
		return ResponseMeta{}, err
	}

	// optionally decoding the response body
	decodedBody, err := func() ([]byte, error) {
		if !isGzipped {
			return body, nil
		}

		return util.GzipDecode(body)
	}()
	if err != nil {
		return ResponseMeta{}, err
	}

	return ResponseMeta{
		ContentLength: contentLength,
		Body:          decodedBody,
		Status:        resp.StatusCode,
	}, nil
}
