package teamwork

import (
	"strings"
)

// gameModeAliases maps normalized shorthand and long-form names onto the
// game mode tokens the API expects.
var gameModeAliases = map[string]string{
	"ad":               "attack-defend",
	"attack-defense":   "attack-defend",
	"capture-the-flag": "ctf",
	"cp":               "control-point",
	"king-of-the-hill": "koth",
	"mann-vs-machine":  "mvm",
	"pl":               "payload",
	"plr":              "payload-race",
}

// GameModeAliases returns a copy of the alias table used by ResolveGameMode.
func GameModeAliases() map[string]string {
	aliases := make(map[string]string, len(gameModeAliases))
	for alias, canonical := range gameModeAliases {
		aliases[alias] = canonical
	}

	return aliases
}

// ResolveGameMode turns a loose game mode name into the API's canonical token.
//
// The query is lower-cased, trimmed and has its spaces replaced with hyphens
// before the alias lookup. Names without an alias are returned normalized, so
// ResolveGameMode(ResolveGameMode(q)) == ResolveGameMode(q).
func ResolveGameMode(query string) string {
	normalized := normalizeGameMode(query)

	if canonical, ok := gameModeAliases[normalized]; ok {
		return canonical
	}

	return normalized
}

func normalizeGameMode(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))

	return strings.ReplaceAll(normalized, " ", "-")
}
