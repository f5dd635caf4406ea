package blizzard

const (
	zonesPath      = "/zone/"
	zonePathFormat = "/zone/%d"
	bossesPath     = "/boss/"
	bossPathFormat = "/boss/%d"
)

// Zones returns every supported dungeon and raid
func (c Client) Zones() (Resource, error) {
	return c.Fetch(zonesPath, nil)
}

// Zone returns a single dungeon or raid
func (c Client) Zone(ID int64) (Resource, error) {
	return c.Fetch(idPath(zonePathFormat, ID), nil)
}

// Bosses returns every supported boss encounter
func (c Client) Bosses() (Resource, error) {
	return c.Fetch(bossesPath, nil)
}

// Boss returns a single boss encounter, which may include more than one npc
func (c Client) Boss(ID int64) (Resource, error) {
	return c.Fetch(idPath(bossPathFormat, ID), nil)
}
