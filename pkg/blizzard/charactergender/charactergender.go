package charactergender

import (
	"strconv"

	"github.com/GoblinLedger/wowapi/pkg/blizzard"
)

// CharacterGender is the gender code of a character response
type CharacterGender int

/*
gender codes
*/
const (
	Male   CharacterGender = 0
	Female CharacterGender = 1
)

var names = map[string]string{
	"0": "Male",
	"1": "Female",
}

// Format looks up the label of a string-encoded gender code
func Format(code string) (string, error) {
	name, ok := names[code]
	if !ok {
		return "", blizzard.NewValidationError("gender", code, "unknown character gender")
	}

	return name, nil
}

// Name - the label of the gender
func (g CharacterGender) Name() (string, error) {
	return Format(strconv.Itoa(int(g)))
}
