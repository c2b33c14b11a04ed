package teamwork

import (
	"github.com/samber/mo"
)

// Every field of the result shapes is optional. Fields the API omits or sends
// with an unexpected type are left at their zero value.

// News represents a news feed entry.
type News struct {
	Hash      string `json:"hash"       yaml:"hash"`
	Title     string `json:"title"      yaml:"title"`
	Type      string `json:"type"       yaml:"type"`
	Link      string `json:"link"       yaml:"link"`
	Provider  string `json:"provider"   yaml:"provider"`
	Thumbnail string `json:"thumbnail"  yaml:"thumbnail"`
	Content   string `json:"content"    yaml:"content"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// Creator represents a content creator linked to a Steam account.
type Creator struct {
	SteamID      string `json:"steamid"       yaml:"steamid"`
	Name         string `json:"name"          yaml:"name"`
	MainClass    string `json:"main_class"    yaml:"main_class"`
	MainGameMode string `json:"main_gamemode" yaml:"main_gamemode"`
	Thumbnail    string `json:"thumbnail"     yaml:"thumbnail"`
	YouTube      string `json:"youtube"       yaml:"youtube"`
	Twitch       string `json:"twitch"        yaml:"twitch"`
	Twitter      string `json:"twitter"       yaml:"twitter"`
	Subscribers  int    `json:"subscribers"   yaml:"subscribers"`
}

// GameMode represents a game mode with its current population.
type GameMode struct {
	ID          string `json:"id"          yaml:"id"`
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image"       yaml:"image"`
	Color       string `json:"color"       yaml:"color"`
	Players     int    `json:"players"     yaml:"players"`
	MaxPlayers  int    `json:"max_players" yaml:"max_players"`
	Servers     int    `json:"servers"     yaml:"servers"`
	LastUpdate  string `json:"last_update" yaml:"last_update"`
}

// Server represents a game server.
type Server struct {
	IP           string         `json:"ip"                 yaml:"ip"`
	Port         int            `json:"port"               yaml:"port"`
	Name         string         `json:"name"               yaml:"name"`
	Reachable    bool           `json:"reachable"          yaml:"reachable"`
	Provider     ServerProvider `json:"provider"           yaml:"provider"`
	MapName      string         `json:"map_name"           yaml:"map_name"`
	MapThumbnail string         `json:"map_name_thumbnail" yaml:"map_name_thumbnail"`
	Players      int            `json:"players"            yaml:"players"`
	MaxPlayers   int            `json:"max_players"        yaml:"max_players"`
	Bots         int            `json:"bots"               yaml:"bots"`
	GameModes    []string       `json:"gamemodes"          yaml:"gamemodes"`
	GameType     string         `json:"game_type"          yaml:"game_type"`
	HasPassword  bool           `json:"has_password"       yaml:"has_password"`
	VACSecure    bool           `json:"vac_secure"         yaml:"vac_secure"`
	Country      string         `json:"country"            yaml:"country"`
	CountryCode  string         `json:"country_code"       yaml:"country_code"`
	LastUpdate   string         `json:"last_update"        yaml:"last_update"`
}

// ServerProvider is the provider reference embedded in a Server.
type ServerProvider struct {
	ID           int    `json:"id"            yaml:"id"`
	Name         string `json:"name"          yaml:"name"`
	ProviderType string `json:"provider_type" yaml:"provider_type"`
	URL          string `json:"url"           yaml:"url"`
}

// Provider represents a community server provider.
type Provider struct {
	ID           int    `json:"id"            yaml:"id"`
	Name         string `json:"name"          yaml:"name"`
	ProviderType string `json:"provider_type" yaml:"provider_type"`
	Description  string `json:"description"   yaml:"description"`
	URL          string `json:"url"           yaml:"url"`
	SteamGroup   string `json:"steam_group"   yaml:"steam_group"`
	Discord      string `json:"discord"       yaml:"discord"`
	Logo         string `json:"logo"          yaml:"logo"`
	ServerCount  int    `json:"server_count"  yaml:"server_count"`
	Region       string `json:"region"        yaml:"region"`
}

// ProviderStats represents population statistics for a community provider.
type ProviderStats struct {
	Players        int     `json:"players"         yaml:"players"`
	MaxPlayers     int     `json:"max_players"     yaml:"max_players"`
	Servers        int     `json:"servers"         yaml:"servers"`
	ReachableRatio float64 `json:"reachable_ratio" yaml:"reachable_ratio"`
	Rank           int     `json:"rank"            yaml:"rank"`
	LastUpdate     string  `json:"last_update"     yaml:"last_update"`
}

// CompetitiveProvider represents a competitive league or matchmaking provider.
type CompetitiveProvider struct {
	ID          int    `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url"         yaml:"url"`
	Logo        string `json:"logo"        yaml:"logo"`
	Region      string `json:"region"      yaml:"region"`
	Format      string `json:"format"      yaml:"format"`
}

// CompetitiveProviderStats represents activity statistics for a competitive provider.
type CompetitiveProviderStats struct {
	Players    int    `json:"players"     yaml:"players"`
	Servers    int    `json:"servers"     yaml:"servers"`
	Matches    int    `json:"matches"     yaml:"matches"`
	Teams      int    `json:"teams"       yaml:"teams"`
	LastUpdate string `json:"last_update" yaml:"last_update"`
}

// ServerList represents a user curated server list.
type ServerList struct {
	ID          int    `json:"id"           yaml:"id"`
	Name        string `json:"name"         yaml:"name"`
	Description string `json:"description"  yaml:"description"`
	Owner       string `json:"owner"        yaml:"owner"`
	ServerCount int    `json:"server_count" yaml:"server_count"`
	Public      bool   `json:"public"       yaml:"public"`
	CreatedAt   string `json:"created_at"   yaml:"created_at"`
	UpdatedAt   string `json:"updated_at"   yaml:"updated_at"`
}

// Map represents usage statistics for a single map.
type Map struct {
	Map            string   `json:"map"                 yaml:"map"`
	NormalizedName string   `json:"normalized_map_name" yaml:"normalized_map_name"`
	Thumbnail      string   `json:"thumbnail"           yaml:"thumbnail"`
	FirstSeen      string   `json:"first_seen"          yaml:"first_seen"`
	GameModes      []string `json:"all_gamemodes"       yaml:"all_gamemodes"`
	OfficialMap    bool     `json:"official_map"        yaml:"official_map"`
	Players        int      `json:"players"             yaml:"players"`
	Servers        int      `json:"servers"             yaml:"servers"`
	HighestPlayers int      `json:"highest_players"     yaml:"highest_players"`
	HighestServers int      `json:"highest_servers"     yaml:"highest_servers"`
}

// MapThumbnail represents the thumbnail of a map.
type MapThumbnail struct {
	MapName   string `json:"map_name"  yaml:"map_name"`
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
}

// ThumbnailContext represents the full image set of a map.
type ThumbnailContext struct {
	MapName     string   `json:"map_name"    yaml:"map_name"`
	Thumbnail   string   `json:"thumbnail"   yaml:"thumbnail"`
	Background  string   `json:"background"  yaml:"background"`
	Screenshots []string `json:"screenshots" yaml:"screenshots"`
}

// MapStatsResult is one entry of a MapsClient.StatsForAll fan-out.
type MapStatsResult struct {
	Name  string
	Stats mo.Option[Map]
	Err   error
}
