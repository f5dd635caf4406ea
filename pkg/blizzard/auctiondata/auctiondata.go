package auctiondata

import (
	"encoding/json"
	"net/http"

	"github.com/GoblinLedger/wowapi/pkg/blizzard"
	"github.com/GoblinLedger/wowapi/pkg/logging"
	"github.com/GoblinLedger/wowapi/pkg/metric"
	"github.com/sirupsen/logrus"
)

// DefaultMaxAttempts - the auction data host fails intermittently, one extra attempt is usually enough
const DefaultMaxAttempts = 2

/*
keys of an auction status response
*/
const (
	filesKey = "files"
	urlKey   = "url"
	dataKey  = "data"
)

// Retrieve downloads the files of snapshot with the client's downloader and DefaultMaxAttempts
func Retrieve(client blizzard.Client, snapshot blizzard.Resource) (blizzard.Resource, error) {
	return RetrieveAuctions(client.Downloader(), snapshot, DefaultMaxAttempts)
}

// RetrieveAuctions returns a copy of snapshot with the decoded contents of every file url stored under its data key
// Files are downloaded in order; the first file to exhaust maxAttempts fails the whole call
func RetrieveAuctions(dl blizzard.Downloader, snapshot blizzard.Resource, maxAttempts int) (blizzard.Resource, error) {
	if maxAttempts < 1 {
		return nil, blizzard.NewValidationError("maxAttempts", maxAttempts, "at least one attempt is required")
	}

	out, files, err := copySnapshot(snapshot)
	if err != nil {
		return nil, err
	}

	for i, file := range files {
		uri := file[urlKey].(string)

		body, err := download(dl, uri, maxAttempts)
		if err != nil {
			return nil, err
		}

		var data interface{}
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, &blizzard.ParseError{URI: uri, Err: err}
		}

		logging.WithFields(logrus.Fields{
			"file":  i,
			"bytes": len(body),
		}).Debug("Retrieved auction file")

		file[dataKey] = data
	}

	return out, nil
}

// copySnapshot copies the top level, the files list and every file so the caller's value is left untouched
func copySnapshot(snapshot blizzard.Resource) (blizzard.Resource, []map[string]interface{}, error) {
	rawFiles, ok := snapshot[filesKey].([]interface{})
	if !ok {
		return nil, nil, blizzard.NewValidationError(filesKey, snapshot[filesKey], "snapshot has no list of files")
	}

	files := make([]map[string]interface{}, len(rawFiles))
	outFiles := make([]interface{}, len(rawFiles))
	for i, rawFile := range rawFiles {
		var file map[string]interface{}
		switch v := rawFile.(type) {
		case map[string]interface{}:
			file = v
		case blizzard.Resource:
			file = v
		default:
			return nil, nil, blizzard.NewValidationError(filesKey, rawFile, "file is not an object")
		}
		if _, ok := file[urlKey].(string); !ok {
			return nil, nil, blizzard.NewValidationError(urlKey, file[urlKey], "file has no url")
		}

		fileCopy := make(map[string]interface{}, len(file)+1)
		for k, v := range file {
			fileCopy[k] = v
		}
		files[i] = fileCopy
		outFiles[i] = fileCopy
	}

	out := make(blizzard.Resource, len(snapshot))
	for k, v := range snapshot {
		out[k] = v
	}
	out[filesKey] = outFiles

	return out, files, nil
}

// download makes up to maxAttempts sequential attempts, surfacing only the last failure
func download(dl blizzard.Downloader, uri string, maxAttempts int) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := dl.Download(uri, nil)
		if err == nil && resp.Status == http.StatusOK {
			return resp.Body, nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = &blizzard.APIError{StatusCode: resp.Status, Message: string(resp.Body), URI: uri}
		}

		logging.WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": maxAttempts,
			"status":       resp.Status,
			"error":        lastErr.Error(),
		}).Warn("Auction file download failed")
		if err := metric.ReportDownloadAttempt(uri, attempt, resp.Status); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}
