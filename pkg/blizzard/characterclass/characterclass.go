package characterclass

import (
	"github.com/GoblinLedger/wowapi/pkg/blizzard"
)

// CharacterClass is the class id of a character response
type CharacterClass int

// Class describes one entry of the class list
type Class struct {
	ID        CharacterClass `json:"id"`
	Mask      int            `json:"mask"`
	PowerType string         `json:"powerType"`
	Name      string         `json:"name"`
}

// Classes describes the class list returned from the api
type Classes struct {
	Classes []Class `json:"classes"`
}

// Fetcher is satisfied by blizzard.Client
type Fetcher interface {
	CharacterClasses() (blizzard.Resource, error)
}

// Format fetches the class list and returns the name of the class with the given id
func Format(f Fetcher, ID CharacterClass) (string, error) {
	res, err := f.CharacterClasses()
	if err != nil {
		return "", err
	}

	classes := Classes{}
	if err := res.Decode(&classes); err != nil {
		return "", &blizzard.ParseError{URI: blizzard.CharacterClassesPath, Err: err}
	}

	for _, class := range classes.Classes {
		if class.ID == ID {
			return class.Name, nil
		}
	}

	return "", blizzard.NewValidationError("class", ID, "unknown character class")
}
