package partymeta

//go:generate go tool partymeta generate keys -type PartySchema -var-prefix PartyKey -output party_keys.go schema.go
//go:generate go tool partymeta generate keys -type MemberSchema -var-prefix MemberKey -output member_keys.go schema.go

// PartySchema lists the party meta keys this package reads.
// The Go field type selects the codec; party_keys.go is generated from it.
type PartySchema struct {
	SelectedIsland  map[string]any `meta:"Default:SelectedIsland_j"`
	RegionID        string         `meta:"Default:RegionId_s"`
	CustomMatchKey  string         `meta:"Default:CustomMatchKey_s"`
	AthenaSquadFill bool           `meta:"Default:AthenaSquadFill_b"`
	PartyState      string         `meta:"Default:PartyState_s"`
	ZoneInstanceID  string         `meta:"Default:ZoneInstanceId_s"`
	CampaignInfo    map[string]any `meta:"Default:CampaignInfo_j"`
}

// MemberSchema lists the party member meta keys this package reads.
// member_keys.go is generated from it.
type MemberSchema struct {
	CosmeticLoadout       map[string]any `meta:"Default:AthenaCosmeticLoadout_j"`
	CosmeticVariants      map[string]any `meta:"Default:AthenaCosmeticLoadoutVariants_j"`
	FrontendEmote         map[string]any `meta:"Default:FrontendEmote_j"`
	LobbyState            map[string]any `meta:"Default:LobbyState_j"`
	CustomDataStore       map[string]any `meta:"Default:ArbitraryCustomDataStore_j"`
	BannerInfo            map[string]any `meta:"Default:AthenaBannerInfo_j"`
	BattlePassInfo        map[string]any `meta:"Default:BattlePassInfo_j"`
	PlatformData          map[string]any `meta:"Default:PlatformData_j"`
	SpectateAvailable     bool           `meta:"Default:SpectateAPartyMemberAvailable_b"`
	PlayersLeft           uint64         `meta:"Default:NumAthenaPlayersLeft_U"`
	MatchStartedAt        string         `meta:"Default:UtcTimeStartedMatchAthena_s"`
	MapMarker             map[string]any `meta:"Default:FrontEndMapMarker_j"`
	AssistedChallengeInfo map[string]any `meta:"Default:AssistedChallengeInfo_j"`
	PlatformSupportsSTW   bool           `meta:"Default:PlatformSupportsSTW_b"`
	CampaignInfo          map[string]any `meta:"Default:CampaignInfo_j"`
	PackedState           map[string]any `meta:"Default:PackedState_j"`
	CrossplayPreference   string         `meta:"Default:CrossplayPreference_s"`
}
