package keys

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"slices"
)

const (
	codecImport   = "github.com/yacchi/partymeta/codec"
	metakeyImport = "github.com/yacchi/partymeta/metakey"
)

// GeneratorConfig holds the settings for one generated file.
type GeneratorConfig struct {
	PackageName string
	TypeName    string
	SourceFile  string
}

// generateCode renders the key declarations as gofmt'd Go source.
func generateCode(analysis *AnalysisResult, cfg GeneratorConfig) ([]byte, error) {
	if len(analysis.Keys) == 0 {
		return nil, fmt.Errorf("%s has no fields tagged %q", cfg.TypeName, metaTagName)
	}

	var buf bytes.Buffer

	buf.WriteString("// Code generated by partymeta generate keys; DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "// Source: %s\n\n", filepath.Base(cfg.SourceFile))
	fmt.Fprintf(&buf, "package %s\n\n", cfg.PackageName)

	imports := append([]string{codecImport, metakeyImport}, analysis.Imports...)
	slices.Sort(imports)
	imports = slices.Compact(imports)

	buf.WriteString("import (\n")
	for _, path := range imports {
		fmt.Fprintf(&buf, "\t%q\n", path)
	}
	buf.WriteString(")\n\n")

	fmt.Fprintf(&buf, "// Meta keys of %s.\n", cfg.TypeName)
	buf.WriteString("var (\n")
	for _, k := range analysis.Keys {
		fmt.Fprintf(&buf, "\t%s = metakey.Define(%q, %s)\n", k.VarName, k.Name, k.Codec)
	}
	buf.WriteString(")\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
