package blizzard

const (
	realmStatusPath  = "/realm/status"
	battlegroupsPath = "/data/battlegroups/"
)

// RealmStatus returns the status of every realm in the region
func (c Client) RealmStatus() (Resource, error) {
	return c.Fetch(realmStatusPath, nil)
}

// Battlegroups returns the battlegroups of the region
func (c Client) Battlegroups() (Resource, error) {
	return c.Fetch(battlegroupsPath, nil)
}
