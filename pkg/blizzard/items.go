package blizzard

const (
	itemPathFormat    = "/item/%d"
	itemSetPathFormat = "/item/set/%d"
	itemClassesPath   = "/data/item/classes"
)

// ItemID the api-specific identifier
type ItemID int64

// Item returns detailed item information
func (c Client) Item(ID ItemID) (Resource, error) {
	return c.Fetch(idPath(itemPathFormat, int64(ID)), nil)
}

// ItemSet returns an item set
func (c Client) ItemSet(setID int64) (Resource, error) {
	return c.Fetch(idPath(itemSetPathFormat, setID), nil)
}

// ItemClasses returns every item class with its subclasses
func (c Client) ItemClasses() (Resource, error) {
	return c.Fetch(itemClassesPath, nil)
}
