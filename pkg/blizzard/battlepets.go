package blizzard

import "strconv"

const (
	battlePetAbilityPathFormat = "/battlePet/ability/%d"
	battlePetSpeciesPathFormat = "/battlePet/species/%d"
	battlePetStatsPathFormat   = "/battlePet/stats/%d"
	petTypesPath               = "/data/pet/types"
)

/*
battle pet stat bounds
*/
const (
	MinBattlePetLevel   = 1
	MaxBattlePetLevel   = 25
	MinBattlePetQuality = 0
	MaxBattlePetQuality = 6
)

// NewBattlePetStatsOptions - level 1, breed 3, quality 1
func NewBattlePetStatsOptions() BattlePetStatsOptions {
	return BattlePetStatsOptions{Level: 1, BreedID: 3, QualityID: 1}
}

// BattlePetStatsOptions - zero values are sent as-is, start from NewBattlePetStatsOptions for defaults
type BattlePetStatsOptions struct {
	Level     int
	BreedID   int
	QualityID int
}

func (opts BattlePetStatsOptions) validate() error {
	if opts.Level < MinBattlePetLevel || opts.Level > MaxBattlePetLevel {
		return NewValidationError("level", opts.Level, "battle pet levels must be in the range from 1 to 25")
	}

	if opts.QualityID < MinBattlePetQuality || opts.QualityID > MaxBattlePetQuality {
		return NewValidationError("qualityId", opts.QualityID, "battle pet quality must be in the range from 0 to 6")
	}

	return nil
}

func (opts BattlePetStatsOptions) params() Params {
	return Params{
		"level":     strconv.Itoa(opts.Level),
		"breedId":   strconv.Itoa(opts.BreedID),
		"qualityId": strconv.Itoa(opts.QualityID),
	}
}

// BattlePetAbility returns a battle pet ability
func (c Client) BattlePetAbility(abilityID int64) (Resource, error) {
	return c.Fetch(idPath(battlePetAbilityPathFormat, abilityID), nil)
}

// BattlePetSpecies returns a battle pet species
func (c Client) BattlePetSpecies(speciesID int64) (Resource, error) {
	return c.Fetch(idPath(battlePetSpeciesPathFormat, speciesID), nil)
}

// BattlePetStats returns the stats of a species at the given level, breed and quality
func (c Client) BattlePetStats(speciesID int64, opts BattlePetStatsOptions) (Resource, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return c.Fetch(idPath(battlePetStatsPathFormat, speciesID), opts.params())
}

// PetTypes returns each battle pet type with what it is strong and weak against
func (c Client) PetTypes() (Resource, error) {
	return c.Fetch(petTypesPath, nil)
}
