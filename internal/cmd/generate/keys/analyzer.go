package keys

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"

	"github.com/yacchi/partymeta/codec"
	"github.com/yacchi/partymeta/metakey"
)

const metaTagName = "meta"

// KeyInfo describes one generated key declaration.
type KeyInfo struct {
	// VarName is the generated variable, e.g. "PartyKeyRegionID".
	VarName string
	// Name is the full meta key, e.g. "Default:RegionId_s".
	Name string
	// Codec is the codec expression, e.g. "codec.String".
	Codec string
	// FieldName is the original Go field name.
	FieldName string
}

// AnalysisResult holds every key discovered on a schema struct.
type AnalysisResult struct {
	Keys []KeyInfo
	// Imports lists extra packages referenced by codec expressions.
	Imports []string
}

// scalarCodecs maps basic Go types to the codec serving them.
var scalarCodecs = map[types.BasicKind]struct {
	tag  codec.Tag
	expr string
}{
	types.String:  {codec.TagString, "codec.String"},
	types.Bool:    {codec.TagBool, "codec.Bool"},
	types.Uint64:  {codec.TagUint, "codec.Uint"},
	types.Int64:   {codec.TagInt, "codec.Int"},
	types.Float64: {codec.TagFloat, "codec.Float"},
}

// analyzeStruct collects the meta-tagged fields of structType.
// pkg is the package the output is generated into; types from other
// packages are qualified and recorded in Imports.
func analyzeStruct(structType *types.Struct, pkg *types.Package, varPrefix string) (*AnalysisResult, error) {
	result := &AnalysisResult{Keys: make([]KeyInfo, 0, structType.NumFields())}
	imports := map[string]bool{}
	seen := map[string]string{}

	for i := 0; i < structType.NumFields(); i++ {
		field := structType.Field(i)
		if !field.Exported() {
			continue
		}

		name, ok := reflect.StructTag(structType.Tag(i)).Lookup(metaTagName)
		if !ok || name == "-" {
			continue
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("field %s: key %q already declared by %s", field.Name(), name, prev)
		}
		seen[name] = field.Name()

		parts, err := metakey.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name(), err)
		}
		if parts.Tag == codec.TagUnknown {
			return nil, fmt.Errorf("field %s: key %q has unknown tag suffix %q", field.Name(), name, parts.Suffix)
		}

		expr, err := codecFor(field.Type(), parts.Tag, pkg, imports)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name(), err)
		}

		result.Keys = append(result.Keys, KeyInfo{
			VarName:   varPrefix + field.Name(),
			Name:      name,
			Codec:     expr,
			FieldName: field.Name(),
		})
	}

	for path := range imports {
		result.Imports = append(result.Imports, path)
	}
	return result, nil
}

// codecFor returns the codec expression for a field of type t under tag.
func codecFor(t types.Type, tag codec.Tag, pkg *types.Package, imports map[string]bool) (string, error) {
	if basic, ok := types.Unalias(t).(*types.Basic); ok {
		sc, known := scalarCodecs[basic.Kind()]
		if !known {
			return "", fmt.Errorf("unsupported field type %s", t)
		}
		if sc.tag != tag {
			return "", fmt.Errorf("field type %s needs tag %q, key has %q", t, sc.tag, tag)
		}
		return sc.expr, nil
	}

	if tag != codec.TagJSON {
		return "", fmt.Errorf("field type %s is only allowed for %q keys", t, codec.TagJSON)
	}
	if isObject(t) {
		return "codec.Object", nil
	}

	qualifier := func(other *types.Package) string {
		if pkg != nil && other.Path() == pkg.Path() {
			return ""
		}
		imports[other.Path()] = true
		return other.Name()
	}
	return "codec.JSON[" + types.TypeString(t, qualifier) + "]()", nil
}

// objectType is map[string]any, the value type of codec.Object.
var objectType = types.NewMap(types.Typ[types.String], types.NewInterfaceType(nil, nil).Complete())

// isObject reports whether t is map[string]any. Aliases such as any are
// resolved; named key or element types are not the same type.
func isObject(t types.Type) bool {
	return types.Identical(t, objectType)
}

// defaultVarPrefix derives the variable prefix from the schema type name:
// "PartySchema" becomes "PartyKey".
func defaultVarPrefix(typeName string) string {
	return strings.TrimSuffix(typeName, "Schema") + "Key"
}
