package partymeta

import "time"

// PartyState is the lobby screen a party is on.
type PartyState string

// Known party states.
const (
	PartyStateWorldView        PartyState = "WorldView"
	PartyStateTheaterView      PartyState = "TheaterView"
	PartyStateBattleRoyaleView PartyState = "BattleRoyaleView"
	PartyStateMatchmaking      PartyState = "Matchmaking"
	PartyStatePostMatchmaking  PartyState = "PostMatchmaking"
)

// Known reports whether s is one of the documented states.
func (s PartyState) Known() bool {
	switch s {
	case PartyStateWorldView, PartyStateTheaterView, PartyStateBattleRoyaleView,
		PartyStateMatchmaking, PartyStatePostMatchmaking:
		return true
	}
	return false
}

// MatchInfo summarizes a member's in-match state.
// Every field is nil when its source is missing or could not be decoded.
type MatchInfo struct {
	HasPreloadedAthena *bool      `json:"hasPreloadedAthena,omitempty"`
	IsSpectatable      *bool      `json:"isSpectatable,omitempty"`
	PlayerCount        *uint64    `json:"playerCount,omitempty"`
	Location           *string    `json:"location,omitempty"`
	MatchStartedAt     *time.Time `json:"matchStartedAt,omitempty"`
}

// ZoneInstanceID identifies the Save the World mission a party is
// preparing for. Empty fields were not present in the payload.
type ZoneInstanceID struct {
	TheaterMissionID      string `json:"theaterMissionId,omitempty"`
	TheaterMissionAlertID string `json:"theaterMissionAlertId,omitempty"`
	ZoneThemeClass        string `json:"zoneThemeClass,omitempty"`
	TheaterID             string `json:"theaterId,omitempty"`
}

// ZoneTheme returns the short identifier of ZoneThemeClass.
func (z ZoneInstanceID) ZoneTheme() (string, bool) {
	return extractAsset(z.ZoneThemeClass)
}

// PartyCampaignInfo is the party's Save the World lobby state.
type PartyCampaignInfo struct {
	MatchmakingState  string `json:"matchmakingState,omitempty"`
	MatchmakingResult string `json:"matchmakingResult,omitempty"`
	ZoneTileIndex     *int   `json:"zoneTileIndex,omitempty"`
	TheaterID         string `json:"theaterId,omitempty"`
}

// MemberCampaignInfo is a member's Save the World lobby state.
// The zone instance is exposed separately by MemberMeta.ZoneInstanceID.
type MemberCampaignInfo struct {
	MatchmakingLevel int    `json:"matchmakingLevel,omitempty"`
	HomeBaseVersion  int    `json:"homeBaseVersion,omitempty"`
	LobbyConnStr     string `json:"lobbyConnStr,omitempty"`
	ZoneInstanceID   string `json:"-"`
}

// BannerInfo is a member's banner.
type BannerInfo struct {
	BannerIconID  string `json:"bannerIconId"`
	BannerColorID string `json:"bannerColorId"`
	SeasonLevel   int    `json:"seasonLevel"`
}

// BattlePassInfo is a member's battle pass progress.
type BattlePassInfo struct {
	HasPurchasedPass bool `json:"bHasPurchasedPass"`
	PassLevel        int  `json:"passLevel"`
	SelfBoostXP      int  `json:"selfBoostXp"`
	FriendBoostXP    int  `json:"friendBoostXp"`
}

// AssistedChallenge is the challenge a member is asking for help with.
type AssistedChallenge struct {
	QuestItemDef        string `json:"questItemDef"`
	ObjectivesCompleted int    `json:"objectivesCompleted"`
}

// PackedState holds fields the client bundles into one meta key.
type PackedState struct {
	Location                string `json:"location,omitempty"`
	GameMode                string `json:"gameMode,omitempty"`
	SubGame                 string `json:"subGame,omitempty"`
	HasPurchasedSTW         bool   `json:"hasPurchasedSTW,omitempty"`
	HasCompletedSTWTutorial bool   `json:"hasCompletedSTWTutorial,omitempty"`
}

// Island is the playlist or creative island selected by the party leader.
type Island struct {
	LinkID struct {
		Mnemonic string `json:"mnemonic"`
		Version  int    `json:"version"`
	} `json:"linkId"`
	Session struct {
		ID       string `json:"iD"`
		JoinInfo string `json:"joinInfo,omitempty"`
	} `json:"session"`
	MatchmakingSettings map[string]any `json:"matchmakingSettings,omitempty"`
}

// CosmeticLoadout holds the short identifiers of a member's equipped items.
// An empty field means the slot is empty or unreadable.
type CosmeticLoadout struct {
	Outfit   string `json:"outfit,omitempty"`
	Backpack string `json:"backpack,omitempty"`
	Pickaxe  string `json:"pickaxe,omitempty"`
	Contrail string `json:"contrail,omitempty"`
}

// VariantMap maps a cosmetic slot ("AthenaCharacter", "AthenaPickaxe", ...)
// to its variant selection. Slot names are capitalized.
type VariantMap map[string]any

// MarkerLocation is a map marker position. The stored {x, y} object is
// returned as [y, x].
type MarkerLocation [2]float64

// NoMarker is returned when no marker is set.
var NoMarker = MarkerLocation{0, 0}
