package partymeta

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/yacchi/partymeta/codec"
	"github.com/yacchi/partymeta/jsonptr"
	"github.com/yacchi/partymeta/metakey"
)

// Inner fields of a zone instance payload.
var (
	ptrTheaterMissionID      = jsonptr.New("theaterMissionId")
	ptrTheaterMissionAlertID = jsonptr.New("theaterMissionAlertId")
	ptrZoneThemeClass        = jsonptr.New("zoneThemeClass")
	ptrTheaterID             = jsonptr.New("theaterId")
)

// decodeZoneInstance decodes a zone instance payload that was found under key
// at path. The payload is normally JSON text embedded in another value, so it
// is decoded a second time; an already decoded object is accepted as is.
//
// An empty string or null is absent. Text that is not a JSON object is a
// *metakey.ParseError.
func decodeZoneInstance(key metakey.Name, tag codec.Tag, path string, payload any) (ZoneInstanceID, bool, error) {
	var obj map[string]any
	switch p := payload.(type) {
	case nil:
		return ZoneInstanceID{}, false, nil
	case string:
		if p == "" {
			return ZoneInstanceID{}, false, nil
		}
		decoded, err := codec.DecodeString[map[string]any](p)
		if err != nil {
			return ZoneInstanceID{}, false, &metakey.ParseError{Key: key, Tag: tag, Path: path, Raw: p, Err: err}
		}
		if decoded == nil {
			return ZoneInstanceID{}, false, nil
		}
		obj = decoded
	case map[string]any:
		obj = p
	default:
		return ZoneInstanceID{}, false, nil
	}

	return ZoneInstanceID{
		TheaterMissionID:      jsonptr.GetOr(obj, ptrTheaterMissionID, ""),
		TheaterMissionAlertID: jsonptr.GetOr(obj, ptrTheaterMissionAlertID, ""),
		ZoneThemeClass:        jsonptr.GetOr(obj, ptrZoneThemeClass, ""),
		TheaterID:             jsonptr.GetOr(obj, ptrTheaterID, ""),
	}, true, nil
}

// matchTimeLayouts are tried in order when parsing a match start time.
var matchTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseMatchTime parses an ISO-8601 timestamp.
func parseMatchTime(s string) (time.Time, error) {
	for _, layout := range matchTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not an ISO-8601 time", codec.ErrSyntax, s)
}

// NormalizeVariants returns a copy of variants with the first letter of each
// key uppercased ("athenaCharacter" -> "AthenaCharacter"). Values are shared.
// Already capitalized keys are unchanged, so normalizing twice is a no-op.
// When both "particle" and "Particle" are present, the value of "Particle" is
// kept.
func NormalizeVariants(variants map[string]any) VariantMap {
	out := make(VariantMap, len(variants))
	for k, v := range variants {
		if capitalize(k) == k {
			out[k] = v
		}
	}
	for k, v := range variants {
		ck := capitalize(k)
		if _, taken := out[ck]; !taken {
			out[ck] = v
		}
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// markerFrom converts a decoded {x, y} marker object.
func markerFrom(obj map[string]any) (MarkerLocation, bool) {
	x, okX := jsonptr.Number[float64](obj, jsonptr.New("x"))
	y, okY := jsonptr.Number[float64](obj, jsonptr.New("y"))
	if !okX && !okY {
		return NoMarker, false
	}
	return MarkerLocation{y, x}, true
}
