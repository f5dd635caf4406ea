package utiltest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/GoblinLedger/wowapi/pkg/blizzard"
	"github.com/GoblinLedger/wowapi/pkg/util"
)

// ServeFile - services a file up in an httptest server
func ServeFile(relativePath string) (*httptest.Server, error) {
	body, err := util.ReadFile(relativePath)
	if err != nil {
		return nil, err
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, string(body))
	}))

	return ts, nil
}

// ServeStatus - services a fixed status and body up in an httptest server
func ServeStatus(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

// Call is a single download seen by a StubDownloader
type Call struct {
	URI   string
	Query url.Values
}

// StubResponse is a scripted outcome of a single download
type StubResponse struct {
	Status int
	Body   string
	Err    error
}

// NewStubDownloader - responds with each scripted response in order, repeating the last one
func NewStubDownloader(responses ...StubResponse) *StubDownloader {
	return &StubDownloader{responses: responses}
}

// NewFileStubDownloader - responds 200 with the contents of a fixture file
func NewFileStubDownloader(relativePath string) (*StubDownloader, error) {
	body, err := util.ReadFile(relativePath)
	if err != nil {
		return nil, err
	}

	return NewStubDownloader(StubResponse{Status: http.StatusOK, Body: string(body)}), nil
}

// StubDownloader records every call and never touches the network
type StubDownloader struct {
	responses []StubResponse
	Calls     []Call
}

// Download - records the call and returns the next scripted response
func (dl *StubDownloader) Download(uri string, query url.Values) (blizzard.ResponseMeta, error) {
	dl.Calls = append(dl.Calls, Call{URI: uri, Query: query})

	if len(dl.responses) == 0 {
		return blizzard.ResponseMeta{}, fmt.Errorf("no scripted response for %s", uri)
	}

	i := len(dl.Calls) - 1
	if i >= len(dl.responses) {
		i = len(dl.responses) - 1
	}
	resp := dl.responses[i]
	if resp.Err != nil {
		return blizzard.ResponseMeta{}, resp.Err
	}

	return blizzard.ResponseMeta{
		ContentLength: len(resp.Body),
		Body:          []byte(resp.Body),
		Status:        resp.Status,
	}, nil
}

// LastCall returns the most recent call, or a blank call when none were made
func (dl *StubDownloader) LastCall() Call {
	if len(dl.Calls) == 0 {
		return Call{}
	}

	return dl.Calls[len(dl.Calls)-1]
}
