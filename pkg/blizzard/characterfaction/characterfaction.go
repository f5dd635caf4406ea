package characterfaction

import (
	"strconv"

	"github.com/GoblinLedger/wowapi/pkg/blizzard"
)

// CharacterFaction is the faction code of a character response
type CharacterFaction int

/*
faction codes
*/
const (
	Alliance CharacterFaction = 0
	Horde    CharacterFaction = 1
)

var names = map[string]string{
	"0": "Alliance",
	"1": "Horde",
}

// Format looks up the label of a string-encoded faction code
func Format(code string) (string, error) {
	name, ok := names[code]
	if !ok {
		return "", blizzard.NewValidationError("faction", code, "unknown character faction")
	}

	return name, nil
}

// Name - the label of the faction
func (f CharacterFaction) Name() (string, error) {
	return Format(strconv.Itoa(int(f)))
}
