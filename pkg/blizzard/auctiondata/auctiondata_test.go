package auctiondata

import (
	"errors"
	"net/http"
	"testing"

	"github.com/GoblinLedger/wowapi/pkg/blizzard"
	"github.com/GoblinLedger/wowapi/pkg/util"
	"github.com/GoblinLedger/wowapi/pkg/utiltest"
	"github.com/stretchr/testify/assert"
)

const auctionFileURL = "http://auction-api-us.worldofwarcraft.com/auction-data/0a1b2c3d/auctions.json"

func newSnapshot() blizzard.Resource {
	return blizzard.Resource{
		"files": []interface{}{
			map[string]interface{}{"url": auctionFileURL, "lastModified": float64(1533848520000)},
		},
	}
}

func readAuctions(t *testing.T) string {
	body, err := util.ReadFile("../TestData/auctions.json")
	if err != nil {
		t.Fatalf("could not read auctions fixture: %s", err.Error())
	}

	return string(body)
}

func TestRetrieveAuctions(t *testing.T) {
	dl := utiltest.NewStubDownloader(utiltest.StubResponse{Status: http.StatusOK, Body: readAuctions(t)})
	snapshot := newSnapshot()

	out, err := RetrieveAuctions(dl, snapshot, DefaultMaxAttempts)
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Len(t, dl.Calls, 1) || !assert.Equal(t, auctionFileURL, dl.LastCall().URI) {
		return
	}

	files := out["files"].([]interface{})
	file := files[0].(map[string]interface{})
	data, ok := file["data"].(map[string]interface{})
	if !assert.True(t, ok) || !assert.Contains(t, data, "auctions") {
		return
	}
	if !assert.Equal(t, float64(1533848520000), file["lastModified"]) {
		return
	}
}

func TestRetrieveAuctionsRetriesOnce(t *testing.T) {
	dl := utiltest.NewStubDownloader(
		utiltest.StubResponse{Status: http.StatusInternalServerError, Body: "welp"},
		utiltest.StubResponse{Status: http.StatusOK, Body: readAuctions(t)},
	)
	snapshot := newSnapshot()

	out, err := RetrieveAuctions(dl, snapshot, DefaultMaxAttempts)
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Len(t, dl.Calls, 2) {
		return
	}

	outFile := out["files"].([]interface{})[0].(map[string]interface{})
	if !assert.Contains(t, outFile, "data") {
		return
	}

	// the input snapshot is left untouched
	inFile := snapshot["files"].([]interface{})[0].(map[string]interface{})
	if !assert.NotContains(t, inFile, "data") {
		return
	}
	if !assert.Len(t, inFile, 2) {
		return
	}
}

func TestRetrieveAuctionsExhausted(t *testing.T) {
	for _, maxAttempts := range []int{1, 2, 5} {
		dl := utiltest.NewStubDownloader(
			utiltest.StubResponse{Status: http.StatusServiceUnavailable, Body: "first"},
			utiltest.StubResponse{Status: http.StatusNotFound, Body: "last"},
		)

		out, err := RetrieveAuctions(dl, newSnapshot(), maxAttempts)
		if !assert.Nil(t, out) || !assert.Len(t, dl.Calls, maxAttempts) {
			return
		}

		apiErr, ok := err.(*blizzard.APIError)
		if !assert.True(t, ok) {
			return
		}
		expected := http.StatusNotFound
		if maxAttempts == 1 {
			expected = http.StatusServiceUnavailable
		}
		if !assert.Equal(t, expected, apiErr.StatusCode) {
			return
		}
	}
}

func TestRetrieveAuctionsTransportError(t *testing.T) {
	dl := utiltest.NewStubDownloader(
		utiltest.StubResponse{Err: errors.New("connection reset")},
		utiltest.StubResponse{Status: http.StatusOK, Body: `{"auctions":[]}`},
	)

	if _, err := RetrieveAuctions(dl, newSnapshot(), 2); !assert.Nil(t, err) {
		return
	}

	dl = utiltest.NewStubDownloader(utiltest.StubResponse{Err: errors.New("connection reset")})
	_, err := RetrieveAuctions(dl, newSnapshot(), 2)
	if !assert.EqualError(t, err, "connection reset") || !assert.Len(t, dl.Calls, 2) {
		return
	}
}

func TestRetrieveAuctionsNoPartialResult(t *testing.T) {
	snapshot := blizzard.Resource{
		"files": []interface{}{
			map[string]interface{}{"url": auctionFileURL},
			map[string]interface{}{"url": auctionFileURL + "?second"},
		},
	}
	dl := utiltest.NewStubDownloader(
		utiltest.StubResponse{Status: http.StatusOK, Body: `{"auctions":[]}`},
		utiltest.StubResponse{Status: http.StatusBadGateway, Body: "bad gateway"},
	)

	out, err := RetrieveAuctions(dl, snapshot, 2)
	if !assert.Nil(t, out) || !assert.Equal(t, blizzard.APIKind, blizzard.KindOf(err)) {
		return
	}
	if !assert.Len(t, dl.Calls, 3) {
		return
	}
}

func TestRetrieveAuctionsParseError(t *testing.T) {
	dl := utiltest.NewStubDownloader(utiltest.StubResponse{Status: http.StatusOK, Body: "<html>"})

	_, err := RetrieveAuctions(dl, newSnapshot(), 2)
	if !assert.Equal(t, blizzard.ParseKind, blizzard.KindOf(err)) || !assert.Len(t, dl.Calls, 1) {
		return
	}
}

func TestRetrieveAuctionsValidation(t *testing.T) {
	tests := []struct {
		snapshot    blizzard.Resource
		maxAttempts int
	}{
		{newSnapshot(), 0},
		{blizzard.Resource{}, 2},
		{blizzard.Resource{"files": "nope"}, 2},
		{blizzard.Resource{"files": []interface{}{"nope"}}, 2},
		{blizzard.Resource{"files": []interface{}{map[string]interface{}{"lastModified": 1}}}, 2},
	}

	for _, test := range tests {
		dl := utiltest.NewStubDownloader()
		_, err := RetrieveAuctions(dl, test.snapshot, test.maxAttempts)
		if !assert.Equal(t, blizzard.ValidationKind, blizzard.KindOf(err)) || !assert.Empty(t, dl.Calls) {
			return
		}
	}
}

func TestRetrieveEmptyFiles(t *testing.T) {
	dl := utiltest.NewStubDownloader()

	out, err := RetrieveAuctions(dl, blizzard.Resource{"files": []interface{}{}}, 2)
	if !assert.Nil(t, err) || !assert.Empty(t, out["files"]) || !assert.Empty(t, dl.Calls) {
		return
	}
}

func TestRetrieveWithClient(t *testing.T) {
	dl := utiltest.NewStubDownloader(
		utiltest.StubResponse{Status: http.StatusOK, Body: `{"files":[{"url":"` + auctionFileURL + `","lastModified":1533848520000}]}`},
		utiltest.StubResponse{Status: http.StatusOK, Body: readAuctions(t)},
	)
	client, err := blizzard.NewClient(blizzard.Config{APIKey: "abc123", Downloader: dl})
	if !assert.Nil(t, err) {
		return
	}

	status, err := client.AuctionStatus("madoran")
	if !assert.Nil(t, err) {
		return
	}

	out, err := Retrieve(client, status)
	if !assert.Nil(t, err) {
		return
	}
	for _, file := range out["files"].([]interface{}) {
		data := file.(map[string]interface{})["data"].(map[string]interface{})
		if !assert.Contains(t, data, "auctions") {
			return
		}
	}

	// auction files are fetched without the api credentials
	if !assert.Empty(t, dl.LastCall().Query) {
		return
	}
}
