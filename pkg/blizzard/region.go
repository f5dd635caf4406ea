package blizzard

import "sort"

// RegionName - typehint for region names
type RegionName string

/*
regions served by the community api
*/
const (
	US RegionName = "US"
	EU RegionName = "EU"
	KR RegionName = "KR"
	TW RegionName = "TW"
)

// DefaultRegion is used when a config leaves the region blank
const DefaultRegion = US

var regionBaseURLs = map[RegionName]string{
	US: "https://us.api.battle.net/wow",
	EU: "https://eu.api.battle.net/wow",
	KR: "https://kr.api.battle.net/wow",
	TW: "https://tw.api.battle.net/wow",
}

// RegionBaseURL resolves the base url of a region
func RegionBaseURL(name RegionName) (string, error) {
	baseURL, ok := regionBaseURLs[name]
	if !ok {
		return "", &ConfigError{Region: name}
	}

	return baseURL, nil
}

// RegionNames returns every recognized region, sorted
func RegionNames() []RegionName {
	out := make([]RegionName, 0, len(regionBaseURLs))
	for name := range regionBaseURLs {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
