package charactergender

import (
	"testing"

	"github.com/GoblinLedger/wowapi/pkg/blizzard"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	name, err := Format("0")
	if !assert.Nil(t, err) || !assert.Equal(t, "Male", name) {
		return
	}

	name, err = Female.Name()
	if !assert.Nil(t, err) || !assert.Equal(t, "Female", name) {
		return
	}
}

func TestFormatUnknown(t *testing.T) {
	for _, code := range []string{"2", "-1", "", "male"} {
		_, err := Format(code)
		if !assert.Equal(t, blizzard.ValidationKind, blizzard.KindOf(err)) {
			return
		}
	}
}
