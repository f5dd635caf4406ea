package characterrace

import (
	"net/http"
	"testing"

	"github.com/GoblinLedger/wowapi/pkg/blizzard"
	"github.com/GoblinLedger/wowapi/pkg/utiltest"
	"github.com/stretchr/testify/assert"
)

func newClient(t *testing.T, dl blizzard.Downloader) blizzard.Client {
	client, err := blizzard.NewClient(blizzard.Config{APIKey: "abc123", Downloader: dl})
	if err != nil {
		t.Fatalf("could not create client: %s", err.Error())
	}

	return client
}

func TestFormat(t *testing.T) {
	dl, err := utiltest.NewFileStubDownloader("../TestData/character-races.json")
	if !assert.Nil(t, err) {
		return
	}
	client := newClient(t, dl)

	name, err := Format(client, 10)
	if !assert.Nil(t, err) || !assert.Equal(t, "Blood Elf", name) {
		return
	}
	if !assert.Equal(t, "https://us.api.battle.net/wow/data/character/races", dl.LastCall().URI) {
		return
	}
}

func TestFormatUnknown(t *testing.T) {
	dl, err := utiltest.NewFileStubDownloader("../TestData/character-races.json")
	if !assert.Nil(t, err) {
		return
	}

	_, err = Format(newClient(t, dl), 99)
	if !assert.Equal(t, blizzard.ValidationKind, blizzard.KindOf(err)) {
		return
	}
}

func TestFormatAPIError(t *testing.T) {
	dl := utiltest.NewStubDownloader(utiltest.StubResponse{Status: http.StatusForbidden, Body: "Account Inactive"})

	_, err := Format(newClient(t, dl), 1)
	if !assert.Equal(t, blizzard.APIKind, blizzard.KindOf(err)) {
		return
	}
}

func TestFormatMalformedList(t *testing.T) {
	dl := utiltest.NewStubDownloader(utiltest.StubResponse{Status: http.StatusOK, Body: `{"races":"welp"}`})

	_, err := Format(newClient(t, dl), 1)
	if !assert.Equal(t, blizzard.ParseKind, blizzard.KindOf(err)) {
		return
	}
	parseErr, ok := err.(*blizzard.ParseError)
	if !assert.True(t, ok) || !assert.Equal(t, blizzard.CharacterRacesPath, parseErr.URI) {
		return
	}
}
