package partymeta

import (
	"github.com/yacchi/partymeta/codec"
	"github.com/yacchi/partymeta/jsonptr"
	"github.com/yacchi/partymeta/metastore"
)

var (
	ptrSelectedIsland    = jsonptr.New(PartyKeySelectedIsland.Field())
	ptrPartyCampaignInfo = jsonptr.New(PartyKeyCampaignInfo.Field())
)

// PartyMeta is a typed view of a party's meta.
type PartyMeta struct {
	view
}

// NewPartyMeta creates a view over store.
func NewPartyMeta(store metastore.Reader, opts ...Option) *PartyMeta {
	return &PartyMeta{view: newView(store, opts)}
}

// Island returns the selected island or playlist.
func (p *PartyMeta) Island() (Island, bool, error) {
	return record[Island](p.view, PartyKeySelectedIsland, ptrSelectedIsland)
}

// RegionID returns the matchmaking region (EU, NAE, NAW, ...).
// An empty value is absent.
func (p *PartyMeta) RegionID() (string, bool) {
	return p.nonEmpty(PartyKeyRegionID)
}

// CustomMatchmakingKey returns the custom matchmaking key.
// An empty value is absent.
func (p *PartyMeta) CustomMatchmakingKey() (string, bool) {
	return p.nonEmpty(PartyKeyCustomMatchKey)
}

// SquadFill reports whether squad fill is enabled.
func (p *PartyMeta) SquadFill() bool {
	return p.flag(PartyKeyAthenaSquadFill)
}

// PartyState returns the party's lobby screen.
// Values outside the known set are passed through; see PartyState.Known.
func (p *PartyMeta) PartyState() (PartyState, bool) {
	s, ok := p.nonEmpty(PartyKeyPartyState)
	return PartyState(s), ok
}

// ZoneInstanceID returns the Save the World mission the party is getting
// ready to play. The key holds JSON text; malformed text is a
// *metakey.ParseError.
func (p *PartyMeta) ZoneInstanceID() (ZoneInstanceID, bool, error) {
	raw, ok, _ := Get(p.store, PartyKeyZoneInstanceID)
	if !ok {
		return ZoneInstanceID{}, false, nil
	}
	z, ok, err := decodeZoneInstance(PartyKeyZoneInstanceID.Name(), codec.TagString, "", raw)
	if err != nil {
		p.report(err)
	}
	return z, ok, err
}

// TheaterMissionID returns the mission GUID of the party's zone instance.
func (p *PartyMeta) TheaterMissionID() (string, bool, error) {
	return zoneField(p.ZoneInstanceID, func(z ZoneInstanceID) string { return z.TheaterMissionID })
}

// TheaterMissionAlertID returns the mission alert GUID of the party's zone
// instance.
func (p *PartyMeta) TheaterMissionAlertID() (string, bool, error) {
	return zoneField(p.ZoneInstanceID, func(z ZoneInstanceID) string { return z.TheaterMissionAlertID })
}

// ZoneThemeClass returns the zone theme (biome) asset path.
func (p *PartyMeta) ZoneThemeClass() (string, bool, error) {
	return zoneField(p.ZoneInstanceID, func(z ZoneInstanceID) string { return z.ZoneThemeClass })
}

// TheaterID returns the theater the party is preparing to enter.
//
// The zone instance is the reliable source; the copy in CampaignInfo is not
// always refreshed when the leader switches theaters.
func (p *PartyMeta) TheaterID() (string, bool, error) {
	return zoneField(p.ZoneInstanceID, func(z ZoneInstanceID) string { return z.TheaterID })
}

// CampaignInfo returns the party's Save the World lobby state.
func (p *PartyMeta) CampaignInfo() (PartyCampaignInfo, bool, error) {
	return record[PartyCampaignInfo](p.view, PartyKeyCampaignInfo, ptrPartyCampaignInfo)
}

// ZoneTileIndex returns the selected tile on the theater map.
func (p *PartyMeta) ZoneTileIndex() (int, bool, error) {
	info, ok, err := p.CampaignInfo()
	if err != nil || !ok || info.ZoneTileIndex == nil {
		return 0, false, err
	}
	return *info.ZoneTileIndex, true, nil
}

// MatchmakingState returns the party's Save the World matchmaking state.
func (p *PartyMeta) MatchmakingState() (string, bool, error) {
	info, ok, err := p.CampaignInfo()
	if err != nil || !ok || info.MatchmakingState == "" {
		return "", false, err
	}
	return info.MatchmakingState, true, nil
}
