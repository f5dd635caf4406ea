package blizzard

const (
	guildPathFormat       = "/guild/%s/%s"
	guildRewardsPath      = "/data/guild/rewards"
	guildPerksPath        = "/data/guild/perks"
	guildAchievementsPath = "/data/guild/achievements"
)

// Guild returns guild information for the given realm and name, with optional detail fields
func (c Client) Guild(realm string, name string, fields ...string) (Resource, error) {
	params, err := fieldsParams("guild field", guildFields, fields)
	if err != nil {
		return nil, err
	}

	return c.Fetch(slugPath(guildPathFormat, realm, name), params)
}

// GuildRewards returns every guild reward
func (c Client) GuildRewards() (Resource, error) {
	return c.Fetch(guildRewardsPath, nil)
}

// GuildPerks returns every guild perk
func (c Client) GuildPerks() (Resource, error) {
	return c.Fetch(guildPerksPath, nil)
}

// GuildAchievements returns every achievement a guild can earn
func (c Client) GuildAchievements() (Resource, error) {
	return c.Fetch(guildAchievementsPath, nil)
}
