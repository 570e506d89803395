package partymeta

import (
	"github.com/yacchi/partymeta/assetpath"
	"github.com/yacchi/partymeta/codec"
	"github.com/yacchi/partymeta/jsonptr"
	"github.com/yacchi/partymeta/metakey"
	"github.com/yacchi/partymeta/metastore"
)

// Nested fields of member meta keys. JSON-tagged values wrap their payload
// in a property named after the key's field.
var (
	ptrCharacterDef = jsonptr.New(MemberKeyCosmeticLoadout.Field(), "characterDef")
	ptrBackpackDef  = jsonptr.New(MemberKeyCosmeticLoadout.Field(), "backpackDef")
	ptrPickaxeDef   = jsonptr.New(MemberKeyCosmeticLoadout.Field(), "pickaxeDef")
	ptrContrailDef  = jsonptr.New(MemberKeyCosmeticLoadout.Field(), "contrailDef")

	ptrEmoteItemDef = jsonptr.New(MemberKeyFrontendEmote.Field(), "emoteItemDef")

	ptrGameReadiness      = jsonptr.New(MemberKeyLobbyState.Field(), "gameReadiness")
	ptrCurrentInputType   = jsonptr.New(MemberKeyLobbyState.Field(), "currentInputType")
	ptrHasPreloadedAthena = jsonptr.New(MemberKeyLobbyState.Field(), "hasPreloadedAthena")

	ptrVariantList     = jsonptr.New(MemberKeyCosmeticVariants.Field(), "vL")
	ptrCustomDataStore = jsonptr.New(MemberKeyCustomDataStore.Field())
	ptrBannerInfo      = jsonptr.New(MemberKeyBannerInfo.Field())
	ptrBattlePassInfo  = jsonptr.New(MemberKeyBattlePassInfo.Field())
	ptrPlatformName    = jsonptr.New(MemberKeyPlatformData.Field(), "platform", "platformDescription", "name")

	ptrMarkerIsSet    = jsonptr.New(MemberKeyMapMarker.Field(), "bIsSet")
	ptrMarkerLocation = jsonptr.New(MemberKeyMapMarker.Field(), "markerLocation")

	ptrAssistedChallenge  = jsonptr.New(MemberKeyAssistedChallengeInfo.Field())
	ptrMemberCampaignInfo = jsonptr.New(MemberKeyCampaignInfo.Field())
	ptrMemberZoneInstance = jsonptr.New(MemberKeyCampaignInfo.Field(), "zoneInstanceId")
	ptrPackedState        = jsonptr.New(MemberKeyPackedState.Field())
)

// gameReady is the gameReadiness value of a ready member.
const gameReady = "Ready"

// MemberMeta is a typed view of one party member's meta.
// It reads the store on every call, so results always reflect the latest
// merged state.
type MemberMeta struct {
	view
}

// NewMemberMeta creates a view over store.
func NewMemberMeta(store metastore.Reader, opts ...Option) *MemberMeta {
	return &MemberMeta{view: newView(store, opts)}
}

// cosmetic extracts the short identifier of a loadout slot.
func (m *MemberMeta) cosmetic(p jsonptr.Pointer) (string, bool, error) {
	def, ok, err := field[string](m.view, MemberKeyCosmeticLoadout, p)
	if err != nil || !ok {
		return "", false, err
	}
	id, ok := assetpath.Extract(def)
	return id, ok, nil
}

// Outfit returns the equipped outfit CID.
func (m *MemberMeta) Outfit() (string, bool, error) {
	return m.cosmetic(ptrCharacterDef)
}

// Pickaxe returns the equipped pickaxe ID.
func (m *MemberMeta) Pickaxe() (string, bool, error) {
	return m.cosmetic(ptrPickaxeDef)
}

// Backpack returns the equipped backpack BID.
func (m *MemberMeta) Backpack() (string, bool, error) {
	return m.cosmetic(ptrBackpackDef)
}

// Contrail returns the equipped contrail ID.
func (m *MemberMeta) Contrail() (string, bool, error) {
	return m.cosmetic(ptrContrailDef)
}

// Loadout returns all equipped cosmetics at once.
func (m *MemberMeta) Loadout() (CosmeticLoadout, error) {
	obj, ok, err := m.object(MemberKeyCosmeticLoadout)
	if err != nil || !ok {
		return CosmeticLoadout{}, err
	}
	slot := func(p jsonptr.Pointer) string {
		id, _ := assetpath.Extract(jsonptr.GetOr(obj, p, ""))
		return id
	}
	return CosmeticLoadout{
		Outfit:   slot(ptrCharacterDef),
		Backpack: slot(ptrBackpackDef),
		Pickaxe:  slot(ptrPickaxeDef),
		Contrail: slot(ptrContrailDef),
	}, nil
}

// Emote returns the EID of the emote being played.
// The None token means no emote and is reported as absent.
func (m *MemberMeta) Emote() (string, bool, error) {
	def, ok, err := field[string](m.view, MemberKeyFrontendEmote, ptrEmoteItemDef)
	if err != nil || !ok {
		return "", false, err
	}
	id, ok := assetpath.Extract(def)
	return id, ok, nil
}

// IsReady reports whether the member is ready to play.
func (m *MemberMeta) IsReady() (bool, error) {
	s, _, err := field[string](m.view, MemberKeyLobbyState, ptrGameReadiness)
	return s == gameReady, err
}

// Input returns the member's current input method.
func (m *MemberMeta) Input() (string, bool, error) {
	return field[string](m.view, MemberKeyLobbyState, ptrCurrentInputType)
}

// Variants returns the member's cosmetic variants with capitalized slot
// names. An unset key yields an empty map.
func (m *MemberMeta) Variants() (VariantMap, error) {
	vl, ok, err := field[map[string]any](m.view, MemberKeyCosmeticVariants, ptrVariantList)
	if err != nil {
		return VariantMap{}, err
	}
	if !ok {
		return VariantMap{}, nil
	}
	return NormalizeVariants(vl), nil
}

// CustomDataStore returns the member's arbitrary custom data entries.
// An unset key yields an empty slice. Non-string entries are skipped.
func (m *MemberMeta) CustomDataStore() ([]string, error) {
	list, ok, err := field[[]any](m.view, MemberKeyCustomDataStore, ptrCustomDataStore)
	if err != nil || !ok {
		return []string{}, err
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// Banner returns the member's banner.
func (m *MemberMeta) Banner() (BannerInfo, bool, error) {
	return record[BannerInfo](m.view, MemberKeyBannerInfo, ptrBannerInfo)
}

// BattlePass returns the member's battle pass progress.
func (m *MemberMeta) BattlePass() (BattlePassInfo, bool, error) {
	return record[BattlePassInfo](m.view, MemberKeyBattlePassInfo, ptrBattlePassInfo)
}

// Platform returns the member's platform name, e.g. "WIN" or "PSN".
func (m *MemberMeta) Platform() (string, bool, error) {
	return field[string](m.view, MemberKeyPlatformData, ptrPlatformName)
}

// CrossplayPreference returns the member's crossplay setting.
func (m *MemberMeta) CrossplayPreference() (string, bool) {
	return m.nonEmpty(MemberKeyCrossplayPreference)
}

// Match returns the member's match state.
//
// Match is best-effort: a field whose source is missing or malformed is left
// nil. Malformed values are logged and passed to the failure handler instead
// of being returned.
func (m *MemberMeta) Match() MatchInfo {
	var info MatchInfo

	if b, ok, err := field[bool](m.view, MemberKeyLobbyState, ptrHasPreloadedAthena); err != nil {
		m.drop(err)
	} else if ok {
		info.HasPreloadedAthena = &b
	}

	if b, ok, _ := Get(m.store, MemberKeySpectateAvailable); ok {
		info.IsSpectatable = &b
	}

	if n, ok, err := scalar(m.view, MemberKeyPlayersLeft); err != nil {
		m.drop(err)
	} else if ok {
		info.PlayerCount = &n
	}

	if ps, ok, err := m.PackedState(); err != nil {
		m.drop(err)
	} else if ok && ps.Location != "" {
		loc := ps.Location
		info.Location = &loc
	}

	if s, ok, _ := Get(m.store, MemberKeyMatchStartedAt); ok && s != "" {
		if t, err := parseMatchTime(s); err != nil {
			pe := &metakey.ParseError{Key: MemberKeyMatchStartedAt.Name(), Tag: codec.TagString, Raw: s, Err: err}
			m.report(pe)
			m.drop(pe)
		} else {
			info.MatchStartedAt = &t
		}
	}

	return info
}

// IsMarkerSet reports whether the member has placed a map marker.
func (m *MemberMeta) IsMarkerSet() (bool, error) {
	b, _, err := field[bool](m.view, MemberKeyMapMarker, ptrMarkerIsSet)
	return b, err
}

// MarkerLocation returns the map marker position as [y, x].
// NoMarker is returned when no marker location is stored.
func (m *MemberMeta) MarkerLocation() (MarkerLocation, error) {
	loc, ok, err := field[map[string]any](m.view, MemberKeyMapMarker, ptrMarkerLocation)
	if err != nil || !ok {
		return NoMarker, err
	}
	marker, _ := markerFrom(loc)
	return marker, nil
}

// AssistedChallenge returns the challenge the member is getting help with.
func (m *MemberMeta) AssistedChallenge() (AssistedChallenge, bool, error) {
	return record[AssistedChallenge](m.view, MemberKeyAssistedChallengeInfo, ptrAssistedChallenge)
}

// PackedState returns the member's packed state.
func (m *MemberMeta) PackedState() (PackedState, bool, error) {
	return record[PackedState](m.view, MemberKeyPackedState, ptrPackedState)
}

// HasPurchasedSTW reports whether the member owns Save the World.
func (m *MemberMeta) HasPurchasedSTW() (bool, error) {
	ps, _, err := m.PackedState()
	return ps.HasPurchasedSTW, err
}

// HasCompletedSTWTutorial reports whether the member finished the Save the
// World tutorial.
func (m *MemberMeta) HasCompletedSTWTutorial() (bool, error) {
	ps, _, err := m.PackedState()
	return ps.HasCompletedSTWTutorial, err
}

// PlatformSupportsSTW reports whether the member's platform supports Save
// the World.
func (m *MemberMeta) PlatformSupportsSTW() bool {
	return m.flag(MemberKeyPlatformSupportsSTW)
}

// CampaignInfo returns the member's Save the World lobby state.
// ZoneInstanceID holds the raw zone payload when it was sent as text.
func (m *MemberMeta) CampaignInfo() (MemberCampaignInfo, bool, error) {
	info, ok, err := record[MemberCampaignInfo](m.view, MemberKeyCampaignInfo, ptrMemberCampaignInfo)
	if err != nil || !ok {
		return info, ok, err
	}
	info.ZoneInstanceID, _, _ = field[string](m.view, MemberKeyCampaignInfo, ptrMemberZoneInstance)
	return info, true, nil
}

// ZoneInstanceID returns the Save the World zone the member is heading to.
// It is carried as JSON text inside CampaignInfo and decoded on access;
// malformed text is a *metakey.ParseError.
func (m *MemberMeta) ZoneInstanceID() (ZoneInstanceID, bool, error) {
	payload, ok, err := field[any](m.view, MemberKeyCampaignInfo, ptrMemberZoneInstance)
	if err != nil || !ok {
		return ZoneInstanceID{}, false, err
	}
	z, ok, err := decodeZoneInstance(MemberKeyCampaignInfo.Name(), codec.TagJSON, ptrMemberZoneInstance.String(), payload)
	if err != nil {
		m.report(err)
	}
	return z, ok, err
}

// TheaterMissionID returns the mission GUID of the member's zone instance.
func (m *MemberMeta) TheaterMissionID() (string, bool, error) {
	return zoneField(m.ZoneInstanceID, func(z ZoneInstanceID) string { return z.TheaterMissionID })
}

// TheaterMissionAlertID returns the mission alert GUID of the member's zone
// instance.
func (m *MemberMeta) TheaterMissionAlertID() (string, bool, error) {
	return zoneField(m.ZoneInstanceID, func(z ZoneInstanceID) string { return z.TheaterMissionAlertID })
}

// ZoneThemeClass returns the zone theme asset path.
func (m *MemberMeta) ZoneThemeClass() (string, bool, error) {
	return zoneField(m.ZoneInstanceID, func(z ZoneInstanceID) string { return z.ZoneThemeClass })
}

// TheaterID returns the theater ID of the member's zone instance.
func (m *MemberMeta) TheaterID() (string, bool, error) {
	return zoneField(m.ZoneInstanceID, func(z ZoneInstanceID) string { return z.TheaterID })
}

// zoneField projects one field of a zone instance; empty fields are absent.
func zoneField(load func() (ZoneInstanceID, bool, error), get func(ZoneInstanceID) string) (string, bool, error) {
	z, ok, err := load()
	if err != nil || !ok {
		return "", false, err
	}
	s := get(z)
	return s, s != "", nil
}
