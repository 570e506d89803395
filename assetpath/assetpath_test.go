package assetpath

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "character with class prefix",
			in:   "AthenaCharacterItemDefinition'/Game/Athena/Items/Cosmetics/Characters/CID_028_Athena_Commando_F.CID_028_Athena_Commando_F'",
			want: "CID_028_Athena_Commando_F",
			ok:   true,
		},
		{
			name: "default character",
			in:   "Prefix'/Game/X/CID_001_Athena_Commando_F_Default.CID_001_Athena_Commando_F_Default'",
			want: "CID_001_Athena_Commando_F_Default",
			ok:   true,
		},
		{
			name: "pickaxe plugin path",
			in:   "/BRCosmetics/Athena/Items/Cosmetics/Pickaxes/DefaultPickaxe.DefaultPickaxe",
			want: "DefaultPickaxe",
			ok:   true,
		},
		{
			name: "pickaxe with class prefix",
			in:   "AthenaPickaxeItemDefinition'/Game/Athena/Items/Cosmetics/Pickaxes/Pickaxe_ID_029_Assassin.Pickaxe_ID_029_Assassin'",
			want: "Pickaxe_ID_029_Assassin",
			ok:   true,
		},
		{
			name: "backpack",
			in:   "AthenaBackpackItemDefinition'/Game/Athena/Items/Cosmetics/Backpacks/BID_001_BlueSquire.BID_001_BlueSquire'",
			want: "BID_001_BlueSquire",
			ok:   true,
		},
		{
			name: "emote",
			in:   "AthenaDanceItemDefinition'/BRCosmetics/Athena/Items/Cosmetics/Dances/EID_Floss.EID_Floss'",
			want: "EID_Floss",
			ok:   true,
		},
		{
			name: "zone theme class",
			in:   "/Game/World/ZoneThemes/Outposts/BP_ZT_TheOutpost_PvE_01.BP_ZT_TheOutpost_PvE_01_C",
			want: "BP_ZT_TheOutpost_PvE_01_C",
			ok:   true,
		},
		{
			name: "bare package.object",
			in:   "CID_A.CID_A",
			want: "CID_A",
			ok:   true,
		},
		{
			name: "stops at first non-word character",
			in:   "/Game/A.B-C",
			want: "B",
			ok:   true,
		},
		{name: "empty", in: "", ok: false},
		{name: "none token", in: "None", ok: false},
		{name: "no dot", in: "/Game/Athena/Items/CID_001", ok: false},
		{name: "trailing dot", in: "/Game/Athena/CID_001.", ok: false},
		{name: "non-word after last dot", in: "Class'/Game/A.A.'", ok: false},
		{name: "quote after dot", in: "Class'/Game/A.'", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Extract(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractPtr(t *testing.T) {
	if _, ok := ExtractPtr(nil); ok {
		t.Error("ExtractPtr(nil) ok = true, want false")
	}
	none := None
	if _, ok := ExtractPtr(&none); ok {
		t.Error("ExtractPtr(None) ok = true, want false")
	}
	path := "/Game/A/EID_Floss.EID_Floss"
	if got, ok := ExtractPtr(&path); !ok || got != "EID_Floss" {
		t.Errorf("ExtractPtr() = %q, %v", got, ok)
	}
}

func TestParse(t *testing.T) {
	p, ok := Parse("AthenaCharacterItemDefinition'/Game/Athena/Items/Cosmetics/Characters/CID_028.CID_028'")
	if !ok {
		t.Fatal("Parse() ok = false")
	}
	want := Path{
		Class:   "AthenaCharacterItemDefinition",
		Package: "/Game/Athena/Items/Cosmetics/Characters/CID_028",
		Object:  "CID_028",
	}
	if p != want {
		t.Errorf("Parse() = %+v, want %+v", p, want)
	}

	p, ok = Parse("/BRCosmetics/Pickaxes/DefaultPickaxe.DefaultPickaxe")
	if !ok || p.Class != "" || p.Package != "/BRCosmetics/Pickaxes/DefaultPickaxe" {
		t.Errorf("Parse() = %+v, %v", p, ok)
	}
}
