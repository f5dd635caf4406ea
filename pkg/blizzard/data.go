package blizzard

const (
	achievementPathFormat = "/achievement/%d"
	questPathFormat       = "/quest/%d"
	recipePathFormat      = "/recipe/%d"
	spellPathFormat       = "/spell/%d"
	talentsPath           = "/data/talents"
	mountsPath            = "/mount/"
)

// Achievement returns a single achievement
func (c Client) Achievement(ID int64) (Resource, error) {
	return c.Fetch(idPath(achievementPathFormat, ID), nil)
}

// Quest returns quest metadata
func (c Client) Quest(ID int64) (Resource, error) {
	return c.Fetch(idPath(questPathFormat, ID), nil)
}

// Recipe returns basic recipe information
func (c Client) Recipe(ID int64) (Resource, error) {
	return c.Fetch(idPath(recipePathFormat, ID), nil)
}

// Spell returns spell information
func (c Client) Spell(ID int64) (Resource, error) {
	return c.Fetch(idPath(spellPathFormat, ID), nil)
}

// Talents returns talents, specs and glyphs of each class
func (c Client) Talents() (Resource, error) {
	return c.Fetch(talentsPath, nil)
}

// Mounts returns every supported mount
func (c Client) Mounts() (Resource, error) {
	return c.Fetch(mountsPath, nil)
}
