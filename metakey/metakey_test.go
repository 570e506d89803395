package metakey

import (
	"errors"
	"strings"
	"testing"

	"github.com/yacchi/partymeta/codec"
)

func TestParse(t *testing.T) {
	t.Run("valid names", func(t *testing.T) {
		tests := []struct {
			name string
			want Parts
		}{
			{"Default:LobbyState_j", Parts{"Default", "LobbyState", codec.TagJSON, "j"}},
			{"Default:NumAthenaPlayersLeft_U", Parts{"Default", "NumAthenaPlayersLeft", codec.TagUint, "U"}},
			{"Default:Foo_Bar_b", Parts{"Default", "Foo_Bar", codec.TagBool, "b"}},
			{"urn:epic:cfg:party-type-id_s", Parts{"urn", "epic:cfg:party-type-id", codec.TagString, "s"}},
			{"Default:Legacy_x", Parts{"Default", "Legacy", codec.TagUnknown, "x"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := Parse(tt.name)
				if err != nil {
					t.Fatalf("Parse() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("Parse() = %+v, want %+v", got, tt.want)
				}
			})
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, name := range []string{"", "NoCategory_s", ":Field_s", "Default:NoTag", "Default:Trailing_", "Default:_s"} {
			if _, err := Parse(name); err == nil {
				t.Errorf("Parse(%q) expected error, got nil", name)
			}
		}
	})
}

func TestName(t *testing.T) {
	n := Build("Default", "RegionId", codec.TagString)
	if n != "Default:RegionId_s" {
		t.Fatalf("Build() = %q", n)
	}
	if n.Tag() != codec.TagString {
		t.Errorf("Tag() = %q, want %q", n.Tag(), codec.TagString)
	}
	if n.Field() != "RegionId" {
		t.Errorf("Field() = %q, want %q", n.Field(), "RegionId")
	}
	if Name("garbage").Tag() != codec.TagUnknown {
		t.Errorf("Tag() of malformed name should be unknown")
	}
}

func TestDefine(t *testing.T) {
	t.Run("matching tag", func(t *testing.T) {
		k := Define("Default:NumAthenaPlayersLeft_U", codec.Uint)
		if k.Name() != "Default:NumAthenaPlayersLeft_U" {
			t.Errorf("Name() = %q", k.Name())
		}
		if k.Field() != "NumAthenaPlayersLeft" {
			t.Errorf("Field() = %q", k.Field())
		}
		if k.Tag() != codec.TagUint {
			t.Errorf("Tag() = %q", k.Tag())
		}
	})

	t.Run("mismatched tag panics", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("Define() expected panic, got none")
			}
			if !strings.Contains(r.(string), "codec expects") {
				t.Errorf("panic = %v", r)
			}
		}()
		Define("Default:RegionId_s", codec.Bool)
	})

	t.Run("malformed name panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("Define() expected panic, got none")
			}
		}()
		Define("RegionId", codec.String)
	})
}

func TestKeyDecode(t *testing.T) {
	k := Define("Default:NumAthenaPlayersLeft_U", codec.Uint)

	got, err := k.Decode("42")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != 42 {
		t.Errorf("Decode() = %d, want 42", got)
	}

	_, err = k.Decode("many")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Decode() error = %T, want *ParseError", err)
	}
	if pe.Key != k.Name() || pe.Raw != "many" || pe.Tag != codec.TagUint {
		t.Errorf("ParseError = %+v", pe)
	}
	if !errors.Is(err, codec.ErrSyntax) {
		t.Errorf("errors.Is(err, ErrSyntax) = false")
	}
	if !strings.Contains(err.Error(), "Default:NumAthenaPlayersLeft_U") {
		t.Errorf("Error() = %q, want key name", err.Error())
	}
}

func TestKeyEncode(t *testing.T) {
	k := Define("Default:AthenaSquadFill_b", codec.Bool)
	raw, err := k.Encode(true)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if raw != "true" {
		t.Errorf("Encode(true) = %q", raw)
	}
	back, err := k.Decode(raw)
	if err != nil || !back {
		t.Errorf("Decode(Encode(true)) = %v, %v", back, err)
	}
}

func TestParseErrorPath(t *testing.T) {
	err := &ParseError{Key: "Default:CampaignInfo_j", Path: "/CampaignInfo/zoneInstanceId", Err: codec.ErrSyntax}
	want := "metakey: Default:CampaignInfo_j/CampaignInfo/zoneInstanceId: codec: invalid syntax"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
