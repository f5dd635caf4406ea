package blizzard

const (
	challengeRealmPathFormat = "/challenge/%s"
	challengeRegionPath      = "/challenge/region"
	pvpLeaderboardPathFormat = "/leaderboard/%s"
)

// ChallengeRealmLeaderboard returns the challenge mode leaderboard of a realm
func (c Client) ChallengeRealmLeaderboard(realm string) (Resource, error) {
	return c.Fetch(slugPath(challengeRealmPathFormat, realm), nil)
}

// ChallengeRegionLeaderboard returns the challenge mode leaderboard of the client's region
func (c Client) ChallengeRegionLeaderboard() (Resource, error) {
	return c.Fetch(challengeRegionPath, nil)
}

// PvPLeaderboard returns the leaderboard of a pvp bracket
func (c Client) PvPLeaderboard(bracket string) (Resource, error) {
	if !pvpBrackets.has(bracket) {
		return nil, newWhitelistError("pvp bracket", bracket, pvpBrackets)
	}

	return c.Fetch(slugPath(pvpLeaderboardPathFormat, bracket), nil)
}
