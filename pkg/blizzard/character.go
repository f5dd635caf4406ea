package blizzard

import "strings"

// paths of the character data lists
const (
	CharacterRacesPath   = "/data/character/races"
	CharacterClassesPath = "/data/character/classes"
)

const (
	characterPathFormat   = "/character/%s/%s"
	characterAchievesPath = "/data/character/achievements"
)

// Character returns character information for the given realm and name, with optional detail fields
func (c Client) Character(realm string, name string, fields ...string) (Resource, error) {
	params, err := fieldsParams("character field", characterFields, fields)
	if err != nil {
		return nil, err
	}

	return c.Fetch(slugPath(characterPathFormat, realm, name), params)
}

func fieldsParams(parameter string, wList whitelist, fields []string) (Params, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	for _, field := range fields {
		if !wList.has(field) {
			return nil, newWhitelistError(parameter, field, wList)
		}
	}

	return Params{"fields": strings.Join(fields, ",")}, nil
}

// CharacterRaces returns each race and its faction, name and id
func (c Client) CharacterRaces() (Resource, error) {
	return c.Fetch(CharacterRacesPath, nil)
}

// CharacterClasses returns each character class
func (c Client) CharacterClasses() (Resource, error) {
	return c.Fetch(CharacterClassesPath, nil)
}

// CharacterAchievements returns every achievement a character can earn
func (c Client) CharacterAchievements() (Resource, error) {
	return c.Fetch(characterAchievesPath, nil)
}
