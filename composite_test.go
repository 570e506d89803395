package partymeta

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/yacchi/partymeta/codec"
	"github.com/yacchi/partymeta/metakey"
)

func TestNormalizeVariants(t *testing.T) {
	in := map[string]any{"particle": "X", "material": "Y"}
	got := NormalizeVariants(in)
	want := VariantMap{"Particle": "X", "Material": "Y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeVariants() = %v, want %v", got, want)
	}

	again := NormalizeVariants(got)
	if !reflect.DeepEqual(again, got) {
		t.Errorf("NormalizeVariants() not idempotent: %v", again)
	}

	if _, ok := in["Particle"]; ok {
		t.Error("NormalizeVariants() modified its input")
	}

	edge := NormalizeVariants(map[string]any{"": 1, "élan": 2, "9lives": 3})
	if want := (VariantMap{"": 1, "Élan": 2, "9lives": 3}); !reflect.DeepEqual(edge, want) {
		t.Errorf("NormalizeVariants(edge) = %v, want %v", edge, want)
	}

	for range 50 {
		got := NormalizeVariants(map[string]any{"particle": "lower", "Particle": "upper", "material": "Y"})
		if want := (VariantMap{"Particle": "upper", "Material": "Y"}); !reflect.DeepEqual(got, want) {
			t.Fatalf("NormalizeVariants(collision) = %v, want %v", got, want)
		}
	}
}

func TestParseMatchTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-01T18:30:00Z", time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)},
		{"2024-03-01T18:30:00.250Z", time.Date(2024, 3, 1, 18, 30, 0, 250e6, time.UTC)},
		{"2024-03-01T20:30:00+02:00", time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)},
		{"2024-03-01T18:30:00", time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseMatchTime(tt.in)
		if err != nil {
			t.Errorf("parseMatchTime(%q) error = %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseMatchTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := parseMatchTime("0001-01-01T00:00:00.000Z broken"); !errors.Is(err, codec.ErrSyntax) {
		t.Errorf("parseMatchTime(bad) error = %v, want ErrSyntax", err)
	}
}

func TestDecodeZoneInstance(t *testing.T) {
	const key = metakey.Name("Default:CampaignInfo_j")

	t.Run("object payload", func(t *testing.T) {
		z, ok, err := decodeZoneInstance(key, codec.TagJSON, "/CampaignInfo/zoneInstanceId", map[string]any{
			"theaterId": "33A2311D",
		})
		if err != nil || !ok || z.TheaterID != "33A2311D" {
			t.Errorf("decodeZoneInstance() = %+v, %v, %v", z, ok, err)
		}
	})

	t.Run("absent payloads", func(t *testing.T) {
		for _, payload := range []any{nil, "", "null", float64(4)} {
			if _, ok, err := decodeZoneInstance(key, codec.TagJSON, "", payload); ok || err != nil {
				t.Errorf("decodeZoneInstance(%#v) = _, %v, %v, want absent", payload, ok, err)
			}
		}
	})

	t.Run("inner text that is not an object", func(t *testing.T) {
		for _, payload := range []string{"{", "[1,2]", `"text"`} {
			_, _, err := decodeZoneInstance(key, codec.TagJSON, "/p", payload)
			var pe *metakey.ParseError
			if !errors.As(err, &pe) || pe.Raw != payload {
				t.Errorf("decodeZoneInstance(%q) error = %v, want *ParseError", payload, err)
			}
		}
	})

	t.Run("wrong field types are empty", func(t *testing.T) {
		z, ok, err := decodeZoneInstance(key, codec.TagJSON, "", `{"theaterId":12,"theaterMissionId":"m"}`)
		if err != nil || !ok || z.TheaterID != "" || z.TheaterMissionID != "m" {
			t.Errorf("decodeZoneInstance() = %+v, %v, %v", z, ok, err)
		}
	})
}

func TestMarkerFrom(t *testing.T) {
	got, ok := markerFrom(map[string]any{"x": float64(5), "y": float64(9)})
	if !ok || got != (MarkerLocation{9, 5}) {
		t.Errorf("markerFrom() = %v, %v", got, ok)
	}
	got, ok = markerFrom(map[string]any{})
	if ok || got != NoMarker {
		t.Errorf("markerFrom(empty) = %v, %v", got, ok)
	}
}
