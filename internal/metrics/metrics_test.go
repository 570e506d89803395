package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yacchi/partymeta/codec"
	"github.com/yacchi/partymeta/metakey"
	"github.com/yacchi/partymeta/metastore"
)

func TestObserveFailure(t *testing.T) {
	m := New()

	m.ObserveFailure(&metakey.ParseError{Key: "Default:LobbyState_j", Tag: codec.TagJSON})
	m.ObserveFailure(&metakey.ParseError{Key: "Default:LobbyState_j", Tag: codec.TagJSON})
	m.ObserveFailure(&metakey.ParseError{Key: "Default:NumAthenaPlayersLeft_U"})
	m.ObserveFailure(nil)

	if got := testutil.ToFloat64(m.DecodeFailuresTotal.WithLabelValues("Default:LobbyState_j", "json")); got != 2 {
		t.Errorf("failures{LobbyState_j} = %v, want 2", got)
	}
	// Tag falls back to the key suffix.
	if got := testutil.ToFloat64(m.DecodeFailuresTotal.WithLabelValues("Default:NumAthenaPlayersLeft_U", "uint")); got != 1 {
		t.Errorf("failures{NumAthenaPlayersLeft_U} = %v, want 1", got)
	}
}

func TestObserveChange(t *testing.T) {
	m := New()
	s := metastore.New()
	unsubscribe := s.Subscribe(m.ObserveChange)
	defer unsubscribe()

	s.Merge(metastore.Patch{"Default:RegionId_s": "EU", "Default:PartyState_s": "BattleRoyaleView"})
	s.Merge(metastore.Patch{"Default:RegionId_s": "EU"})
	s.Remove("Default:PartyState_s")

	if got := testutil.ToFloat64(m.MergesTotal); got != 2 {
		t.Errorf("merges = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.KeysChangedTotal); got != 3 {
		t.Errorf("keys changed = %v, want 3", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.MergesTotal.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if body := rec.Body.String(); !strings.Contains(body, "partymeta_merges_total 1") {
		t.Errorf("metrics body missing merges counter:\n%s", body)
	}
}

func TestRegistryIsolated(t *testing.T) {
	a, b := New(), New()
	a.MergesTotal.Inc()
	if got := testutil.ToFloat64(b.MergesTotal); got != 0 {
		t.Errorf("second registry merges = %v, want 0", got)
	}
	if n, err := testutil.GatherAndCount(a.Registry(), "partymeta_merges_total"); err != nil || n != 1 {
		t.Errorf("GatherAndCount() = %d, %v", n, err)
	}
}
