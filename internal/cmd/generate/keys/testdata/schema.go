package testdata

// Loadout is a typed JSON payload.
type Loadout struct {
	Character string `json:"characterDef"`
}

// Label is a named map key.
type Label string

// Attributes aliases the generic object type.
type Attributes = map[string]any

// LobbySchema is a sample schema for testing.
type LobbySchema struct {
	RegionID    string                 `meta:"Default:RegionId_s"`
	SquadFill   bool                   `meta:"Default:AthenaSquadFill_b"`
	PlayersLeft uint64                 `meta:"Default:NumAthenaPlayersLeft_U"`
	Offset      int64                  `meta:"Default:Offset_I"`
	Ratio       float64                `meta:"Default:Ratio_d"`
	LobbyState  map[string]any         `meta:"Default:LobbyState_j"`
	Loadout     Loadout                `meta:"Default:AthenaCosmeticLoadout_j"`
	Markers     []float64              `meta:"Default:Markers_j"`
	Attributes  Attributes             `meta:"Default:Attributes_j"`
	Labels      map[Label]any          `meta:"Default:Labels_j"`
	Generic     map[string]interface{} `meta:"Default:Generic_j"`
	Ignored     string                 `meta:"-"`
	Untagged    string
	hidden      string `meta:"Default:Hidden_s"`
}
