package jsonptr

import (
	"reflect"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", "simple"},
		{"~", "~0"},
		{"/", "~1"},
		{"~/", "~0~1"},
		{"~foo/bar", "~0foo~1bar"},
		{"", ""},
	}

	for _, tt := range tests {
		got := Escape(tt.input)
		if got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if back := Unescape(got); back != tt.input {
			t.Errorf("Unescape(%q) = %q, want %q", got, back, tt.input)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		pointer string
		want    []string
		wantErr bool
	}{
		{name: "whole document", pointer: "", want: nil},
		{name: "nested", pointer: "/LobbyState/gameReadiness", want: []string{"LobbyState", "gameReadiness"}},
		{name: "empty key", pointer: "/", want: []string{""}},
		{name: "escaped", pointer: "/a~1b/c~0d", want: []string{"a/b", "c~d"}},
		{name: "array index", pointer: "/list/0", want: []string{"list", "0"}},
		{name: "missing slash", pointer: "LobbyState", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.pointer)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got nil", tt.pointer)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.pointer, err)
			}
			if got := p.Keys(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keys() = %#v, want %#v", got, tt.want)
			}
			if p.String() != tt.pointer {
				t.Errorf("String() = %q, want %q", p.String(), tt.pointer)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse() expected panic")
		}
	}()
	MustParse("bad")
}

func TestNewAndAppend(t *testing.T) {
	p := New("FrontEndMapMarker", "markerLocation")
	if p.String() != "/FrontEndMapMarker/markerLocation" {
		t.Errorf("String() = %q", p.String())
	}
	q := p.Append("x")
	if q.String() != "/FrontEndMapMarker/markerLocation/x" {
		t.Errorf("Append().String() = %q", q.String())
	}
	if p.String() != "/FrontEndMapMarker/markerLocation" {
		t.Errorf("Append modified receiver: %q", p.String())
	}
	if New("a/b").String() != "/a~1b" {
		t.Errorf("New(a/b) = %q", New("a/b").String())
	}
	if New().String() != "" {
		t.Errorf("New() = %q, want empty", New().String())
	}
}

func testDoc() map[string]any {
	return map[string]any{
		"LobbyState": map[string]any{
			"gameReadiness":      "Ready",
			"hasPreloadedAthena": true,
			"count":              float64(4),
			"nothing":            nil,
		},
		"list": []any{"a", map[string]any{"b": "c"}},
	}
}

func TestLookup(t *testing.T) {
	doc := testDoc()

	tests := []struct {
		pointer string
		want    any
		ok      bool
	}{
		{"/LobbyState/gameReadiness", "Ready", true},
		{"/list/1/b", "c", true},
		{"/list/2", nil, false},
		{"/list/-1", nil, false},
		{"/list/x", nil, false},
		{"/LobbyState/missing", nil, false},
		{"/LobbyState/gameReadiness/deeper", nil, false},
		{"/LobbyState/nothing", nil, true},
	}
	for _, tt := range tests {
		got, ok := MustParse(tt.pointer).Lookup(doc)
		if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lookup(%q) = %v, %v, want %v, %v", tt.pointer, got, ok, tt.want, tt.ok)
		}
	}

	whole, ok := Pointer{}.Lookup(doc)
	if !ok || !reflect.DeepEqual(whole, doc) {
		t.Errorf("zero Pointer Lookup() = %v, %v", whole, ok)
	}

	if _, ok := MustParse("/a").Lookup(nil); ok {
		t.Error("Lookup on nil doc ok = true")
	}
}

func TestTypedGetters(t *testing.T) {
	doc := testDoc()

	t.Run("get string", func(t *testing.T) {
		got, ok := Get[string](doc, MustParse("/LobbyState/gameReadiness"))
		if !ok || got != "Ready" {
			t.Errorf("Get[string]() = %q, %v", got, ok)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		if _, ok := Get[string](doc, MustParse("/LobbyState/count")); ok {
			t.Error("Get[string](number) ok = true")
		}
	})

	t.Run("null is absent", func(t *testing.T) {
		if _, ok := Get[string](doc, MustParse("/LobbyState/nothing")); ok {
			t.Error("Get[string](null) ok = true")
		}
	})

	t.Run("get or default", func(t *testing.T) {
		if got := GetOr(doc, MustParse("/LobbyState/missing"), "fallback"); got != "fallback" {
			t.Errorf("GetOr() = %q", got)
		}
	})

	t.Run("number", func(t *testing.T) {
		got, ok := Number[uint64](doc, MustParse("/LobbyState/count"))
		if !ok || got != 4 {
			t.Errorf("Number() = %d, %v", got, ok)
		}
	})

	t.Run("truthy", func(t *testing.T) {
		if !Truthy(doc, MustParse("/LobbyState/hasPreloadedAthena")) {
			t.Error("Truthy(true) = false")
		}
		if Truthy(doc, MustParse("/LobbyState/gameReadiness")) {
			t.Error("Truthy(string) = true")
		}
		if Truthy(doc, MustParse("/missing")) {
			t.Error("Truthy(missing) = true")
		}
	})

	t.Run("object", func(t *testing.T) {
		obj, ok := Object(doc, MustParse("/LobbyState"))
		if !ok || obj["gameReadiness"] != "Ready" {
			t.Errorf("Object() = %v, %v", obj, ok)
		}
	})
}
