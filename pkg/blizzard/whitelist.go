package blizzard

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	characterFields = newWhitelist(
		"achievements",
		"appearance",
		"feed",
		"guild",
		"hunterPets",
		"items",
		"mounts",
		"pets",
		"petSlots",
		"progression",
		"pvp",
		"quests",
		"reputation",
		"statistics",
		"stats",
		"talents",
		"titles",
		"audit",
	)

	guildFields = newWhitelist("achievements", "members", "news", "challenge")

	pvpBrackets = newWhitelist("2v2", "3v3", "5v5", "rbg")
)

// CharacterFields returns the recognized character detail fields, sorted
func CharacterFields() []string { return characterFields.values() }

// GuildFields returns the recognized guild detail fields, sorted
func GuildFields() []string { return guildFields.values() }

// PvPBrackets returns the recognized pvp leaderboard brackets, sorted
func PvPBrackets() []string { return pvpBrackets.values() }

// whitelist is a fixed set of recognized tokens
type whitelist map[string]struct{}

func newWhitelist(values ...string) whitelist {
	out := whitelist{}
	for _, v := range values {
		out[v] = struct{}{}
	}

	return out
}

func (wList whitelist) has(value string) bool {
	_, ok := wList[value]

	return ok
}

func (wList whitelist) values() []string {
	out := make([]string, 0, len(wList))
	for v := range wList {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

func (wList whitelist) suggest(value string) []string {
	if value == "" {
		return nil
	}

	ranks := fuzzy.RankFindFold(value, wList.values())
	sort.Sort(ranks)

	out := make([]string, len(ranks))
	for i, rank := range ranks {
		out[i] = rank.Target
	}

	return out
}
