package characterrace

import (
	"github.com/GoblinLedger/wowapi/pkg/blizzard"
)

// CharacterRace is the race id of a character response
type CharacterRace int

// Race describes one entry of the race list
type Race struct {
	ID   CharacterRace `json:"id"`
	Mask int           `json:"mask"`
	Side string        `json:"side"`
	Name string        `json:"name"`
}

// Races describes the race list returned from the api
type Races struct {
	Races []Race `json:"races"`
}

// Fetcher is satisfied by blizzard.Client
type Fetcher interface {
	CharacterRaces() (blizzard.Resource, error)
}

// Format fetches the race list and returns the name of the race with the given id
func Format(f Fetcher, ID CharacterRace) (string, error) {
	res, err := f.CharacterRaces()
	if err != nil {
		return "", err
	}

	races := Races{}
	if err := res.Decode(&races); err != nil {
		return "", &blizzard.ParseError{URI: blizzard.CharacterRacesPath, Err: err}
	}

	for _, race := range races.Races {
		if race.ID == ID {
			return race.Name, nil
		}
	}

	return "", blizzard.NewValidationError("race", ID, "unknown character race")
}
