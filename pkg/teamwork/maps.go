package teamwork

import (
	"strings"

	"github.com/samber/lo"
)

// mapCatalog lists the canonical map identifiers known to the API, sorted.
var mapCatalog = []string{
	"arena_badlands",
	"arena_byre",
	"arena_granary",
	"arena_lumberyard",
	"arena_nucleus",
	"arena_offblast_final",
	"arena_ravine",
	"arena_sawmill",
	"arena_watchtower",
	"arena_well",
	"cp_5gorge",
	"cp_badlands",
	"cp_cloak",
	"cp_coldfront",
	"cp_degrootkeep",
	"cp_dustbowl",
	"cp_egypt_final",
	"cp_fastlane",
	"cp_foundry",
	"cp_freight_final1",
	"cp_gorge",
	"cp_gorge_event",
	"cp_granary",
	"cp_gravelpit",
	"cp_gullywash_final1",
	"cp_junction_final",
	"cp_manor_event",
	"cp_mercenarypark",
	"cp_metalworks",
	"cp_mossrock",
	"cp_mountainlab",
	"cp_powerhouse",
	"cp_process_final",
	"cp_snakewater_final1",
	"cp_snowplow",
	"cp_standin_final",
	"cp_steel",
	"cp_sunshine",
	"cp_sunshine_event",
	"cp_vanguard",
	"cp_well",
	"cp_yukon_final",
	"ctf_2fort",
	"ctf_2fort_invasion",
	"ctf_doublecross",
	"ctf_foundry",
	"ctf_gorge",
	"ctf_hellfire",
	"ctf_landfall",
	"ctf_sawmill",
	"ctf_thundermountain",
	"ctf_turbine",
	"ctf_well",
	"itemtest",
	"koth_badlands",
	"koth_bagel_event",
	"koth_brazil",
	"koth_harvest_event",
	"koth_harvest_final",
	"koth_highpass",
	"koth_king",
	"koth_lakeside_event",
	"koth_lakeside_final",
	"koth_lazarus",
	"koth_maple_ridge_event",
	"koth_moonshine_event",
	"koth_nucleus",
	"koth_probed",
	"koth_sawmill",
	"koth_slasher",
	"koth_suijin",
	"koth_viaduct",
	"koth_viaduct_event",
	"mvm_bigrock",
	"mvm_coaltown",
	"mvm_decoy",
	"mvm_example",
	"mvm_ghost_town",
	"mvm_mannhattan",
	"mvm_mannworks",
	"mvm_rottenburg",
	"pass_brickyard",
	"pass_district",
	"pass_timbertown",
	"pd_cursed_cove_event",
	"pd_monster_bash",
	"pd_pit_of_death_event",
	"pd_watergate",
	"pl_badwater",
	"pl_barnblitz",
	"pl_borneo",
	"pl_cactuscanyon",
	"pl_enclosure_final",
	"pl_fifthcurve_event",
	"pl_frontier_final",
	"pl_goldrush",
	"pl_hoodoo_final",
	"pl_millstone_event",
	"pl_rumble_event",
	"pl_snowycoast",
	"pl_swiftwater_final1",
	"pl_thundermountain",
	"pl_upward",
	"plr_bananabay",
	"plr_hightower",
	"plr_hightower_event",
	"plr_nightfall_final",
	"plr_pipeline",
	"rd_asteroid",
	"sd_doomsday",
	"sd_doomsday_event",
	"tc_hydro",
	"tr_dustbowl",
	"tr_target",
}

// MapCatalog returns a copy of the known canonical map identifiers in catalog order.
func MapCatalog() []string {
	return append([]string(nil), mapCatalog...)
}

// ResolveMapNames returns every catalog map whose identifier contains the
// token extracted from query, in catalog order.
//
// A query with an underscore is treated as "<mode>_<name>[_suffix]" and only
// the name segment is matched, so "cp_badlands" and "koth_badlands" both look
// for "badlands". Matching is case-insensitive on the query side. An empty
// token or an unmatched query yields an empty slice.
func ResolveMapNames(query string) []string {
	token := mapToken(query)
	if token == "" {
		return []string{}
	}

	return lo.Filter(mapCatalog, func(name string, _ int) bool {
		return strings.Contains(name, token)
	})
}

func mapToken(query string) string {
	if strings.Contains(query, "_") {
		query = strings.Split(query, "_")[1]
	}

	return strings.ToLower(query)
}
