// Package assetpath extracts short item identifiers from engine asset paths.
//
// Cosmetic loadouts reference items by object path:
//
//	AthenaCharacterItemDefinition'/Game/Athena/Items/Cosmetics/Characters/CID_028_Athena_Commando_F.CID_028_Athena_Commando_F'
//	/BRCosmetics/Athena/Items/Cosmetics/Pickaxes/DefaultPickaxe.DefaultPickaxe
//
// The short identifier is the object name: the run of word characters
// directly after the last '.'.
package assetpath

import "strings"

// None is the token used by the protocol for "nothing equipped".
const None = "None"

// Path is a decomposed object path.
type Path struct {
	// Class is the optional class prefix before the opening quote.
	Class string
	// Package is the package path, e.g. "/Game/Athena/Items/Cosmetics/Characters/CID_028".
	Package string
	// Object is the short identifier.
	Object string
}

// Extract returns the short identifier of path.
// It reports false for an empty path, the None token, and any text that has
// no word character right after its last '.'.
func Extract(path string) (string, bool) {
	p, ok := Parse(path)
	if !ok {
		return "", false
	}
	return p.Object, true
}

// ExtractPtr is Extract for an optional input.
func ExtractPtr(path *string) (string, bool) {
	if path == nil {
		return "", false
	}
	return Extract(*path)
}

// Parse splits an object path into its parts.
func Parse(path string) (Path, bool) {
	if path == "" || path == None {
		return Path{}, false
	}

	dot := strings.LastIndexByte(path, '.')
	if dot < 0 {
		return Path{}, false
	}

	end := dot + 1
	for end < len(path) && isWord(path[end]) {
		end++
	}
	if end == dot+1 {
		return Path{}, false
	}

	var p Path
	p.Object = path[dot+1 : end]

	head := path[:dot]
	if q := strings.IndexByte(head, '\''); q >= 0 {
		p.Class = head[:q]
		head = head[q+1:]
	}
	p.Package = head
	return p, true
}

// isWord matches the regexp class \w.
func isWord(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
