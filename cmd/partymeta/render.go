package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yacchi/partymeta"
	"github.com/yacchi/partymeta/decoder"
	"github.com/yacchi/partymeta/metakey"
	"github.com/yacchi/partymeta/metastore"
)

const (
	kindParty  = "party"
	kindMember = "member"
)

func validKind(kind string) error {
	switch kind {
	case kindParty, kindMember:
		return nil
	default:
		return fmt.Errorf("unknown kind %q (want %s or %s)", kind, kindParty, kindMember)
	}
}

// Report is the decoded form of one snapshot.
type Report struct {
	Kind   string         `json:"kind"`
	View   map[string]any `json:"view"`
	Errors []string       `json:"errors,omitempty"`
}

// failures deduplicates decode errors across accessors. Composite accessors
// report the same failure through the handler and their return value.
type failures struct {
	mu   sync.Mutex
	seen map[string]bool
	list []string
}

func (f *failures) add(err error) {
	if err == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := err.Error()
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if !f.seen[msg] {
		f.seen[msg] = true
		f.list = append(f.list, msg)
	}
}

func (f *failures) handle(err *metakey.ParseError) {
	f.add(err)
}

func (f *failures) sorted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := slices.Clone(f.list)
	slices.Sort(out)
	return out
}

// put stores a three-outcome accessor result under name.
func put[T any](view map[string]any, errs *failures, name string, v T, ok bool, err error) {
	if err != nil {
		errs.add(err)
		return
	}
	if ok {
		view[name] = v
	}
}

// render decodes r as kind with the typed-record decoder decode.
// onFailure, when set, also sees every parse failure.
func render(kind string, r metastore.Reader, decode decoder.Func, logger zerolog.Logger, onFailure partymeta.FailureHandler) Report {
	errs := &failures{}
	handler := errs.handle
	if onFailure != nil {
		handler = func(err *metakey.ParseError) {
			errs.handle(err)
			onFailure(err)
		}
	}
	opts := []partymeta.Option{
		partymeta.WithLogger(logger),
		partymeta.WithFailureHandler(handler),
		partymeta.WithDecoder(decode),
	}

	view := map[string]any{}
	if kind == kindParty {
		renderParty(view, errs, partymeta.NewPartyMeta(r, opts...))
	} else {
		renderMember(view, errs, partymeta.NewMemberMeta(r, opts...))
	}
	return Report{Kind: kind, View: view, Errors: errs.sorted()}
}

func renderParty(view map[string]any, errs *failures, p *partymeta.PartyMeta) {
	island, ok, err := p.Island()
	put(view, errs, "island", island, ok, err)

	region, ok := p.RegionID()
	put(view, errs, "regionId", region, ok, nil)
	key, ok := p.CustomMatchmakingKey()
	put(view, errs, "customMatchmakingKey", key, ok, nil)
	view["squadFill"] = p.SquadFill()
	state, ok := p.PartyState()
	put(view, errs, "partyState", state, ok, nil)

	zone, ok, err := p.ZoneInstanceID()
	put(view, errs, "zoneInstanceId", zone, ok, err)
	if ok {
		theme, themeOK := zone.ZoneTheme()
		put(view, errs, "zoneTheme", theme, themeOK, nil)
	}

	campaign, ok, err := p.CampaignInfo()
	put(view, errs, "campaignInfo", campaign, ok, err)
}

func renderMember(view map[string]any, errs *failures, m *partymeta.MemberMeta) {
	cosmetics := []struct {
		name string
		get  func() (string, bool, error)
	}{
		{"outfit", m.Outfit},
		{"backpack", m.Backpack},
		{"pickaxe", m.Pickaxe},
		{"contrail", m.Contrail},
		{"emote", m.Emote},
		{"input", m.Input},
		{"platform", m.Platform},
	}
	for _, c := range cosmetics {
		v, ok, err := c.get()
		put(view, errs, c.name, v, ok, err)
	}

	ready, err := m.IsReady()
	put(view, errs, "ready", ready, true, err)
	variants, err := m.Variants()
	put(view, errs, "variants", variants, len(variants) > 0, err)
	custom, err := m.CustomDataStore()
	put(view, errs, "customDataStore", custom, len(custom) > 0, err)

	banner, ok, err := m.Banner()
	put(view, errs, "banner", banner, ok, err)
	pass, ok, err := m.BattlePass()
	put(view, errs, "battlePass", pass, ok, err)
	crossplay, ok := m.CrossplayPreference()
	put(view, errs, "crossplayPreference", crossplay, ok, nil)

	view["match"] = m.Match()

	marker, err := m.MarkerLocation()
	put(view, errs, "markerLocation", marker, marker != partymeta.NoMarker, err)

	challenge, ok, err := m.AssistedChallenge()
	put(view, errs, "assistedChallenge", challenge, ok, err)
	packed, ok, err := m.PackedState()
	put(view, errs, "packedState", packed, ok, err)
	purchased, err := m.HasPurchasedSTW()
	put(view, errs, "hasPurchasedSTW", purchased, true, err)
	tutorial, err := m.HasCompletedSTWTutorial()
	put(view, errs, "hasCompletedSTWTutorial", tutorial, true, err)
	view["platformSupportsSTW"] = m.PlatformSupportsSTW()

	campaign, ok, err := m.CampaignInfo()
	put(view, errs, "campaignInfo", campaign, ok, err)
	zone, ok, err := m.ZoneInstanceID()
	put(view, errs, "zoneInstanceId", zone, ok, err)
	if ok {
		theme, themeOK := zone.ZoneTheme()
		put(view, errs, "zoneTheme", theme, themeOK, nil)
	}
}

func writeReport(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
