// Package keys provides the "generate keys" subcommand.
//
// It reads a schema struct whose fields carry meta tags
//
//	type PartySchema struct {
//		RegionID string `meta:"Default:RegionId_s"`
//	}
//
// and writes one metakey.Define declaration per field. The Go field type
// selects the codec and must agree with the key's tag suffix.
package keys

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Options holds the command-line options for the keys generator.
type Options struct {
	TypeName    string
	VarPrefix   string
	Output      string
	PackageName string
}

// Run executes the keys generation command.
func Run(args []string) error {
	fs := flag.NewFlagSet("generate keys", flag.ExitOnError)

	var opts Options
	fs.StringVar(&opts.TypeName, "type", "", "target struct type name (required)")
	fs.StringVar(&opts.VarPrefix, "var-prefix", "", "prefix of generated variables (default: type name without Schema, plus Key)")
	fs.StringVar(&opts.Output, "output", "", "output file path (default: <source>_keys.go)")
	fs.StringVar(&opts.PackageName, "package", "", "output package name (default: same as input)")

	fs.Usage = func() {
		printHelp()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.TypeName == "" {
		printHelp()
		return fmt.Errorf("-type flag is required")
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		printHelp()
		return fmt.Errorf("exactly one source file is required")
	}

	return runGenerate(remaining[0], opts)
}

func runGenerate(sourceFile string, opts Options) error {
	pkg, structType, err := parseSourceFile(sourceFile, opts.TypeName)
	if err != nil {
		return fmt.Errorf("failed to parse source file: %w", err)
	}

	pkgName := opts.PackageName
	if pkgName == "" {
		pkgName = pkg.Name
	}

	varPrefix := opts.VarPrefix
	if varPrefix == "" {
		varPrefix = defaultVarPrefix(opts.TypeName)
	}

	outputFile := opts.Output
	if outputFile == "" {
		outputFile = defaultOutputFile(sourceFile)
	} else if !filepath.IsAbs(outputFile) {
		// go:generate runs in the source directory; keep -output relative to it.
		outputFile = filepath.Join(filepath.Dir(sourceFile), outputFile)
	}

	analysis, err := analyzeStruct(structType, pkg.Types, varPrefix)
	if err != nil {
		return fmt.Errorf("failed to analyze struct: %w", err)
	}

	code, err := generateCode(analysis, GeneratorConfig{
		PackageName: pkgName,
		TypeName:    opts.TypeName,
		SourceFile:  sourceFile,
	})
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	if err := os.WriteFile(outputFile, code, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "generated %s (%d keys)\n", outputFile, len(analysis.Keys))

	return nil
}

// defaultOutputFile returns the default output file name based on the source file.
// e.g., "schema.go" -> "schema_keys.go"
func defaultOutputFile(sourceFile string) string {
	dir := filepath.Dir(sourceFile)
	base := filepath.Base(sourceFile)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, name+"_keys"+ext)
}

func printHelp() {
	fmt.Fprintln(os.Stderr, `partymeta generate keys - Generate typed meta key declarations

Usage:
  go tool partymeta generate keys [options] <source-file>

Options:
  -type string         Target struct type name (required)
  -var-prefix string   Prefix of generated variables (default: <Type minus "Schema">Key)
  -output string       Output file path (default: <source>_keys.go)
  -package string      Output package name (default: same as input)

Field types and tags:
  string          _s
  bool            _b
  uint64          _U
  int64           _I
  float64         _d
  map[string]any  _j   (codec.Object)
  any other type  _j   (codec.JSON[T]())

Examples:
  go tool partymeta generate keys -type PartySchema schema.go
  go tool partymeta generate keys -type MemberSchema -var-prefix MemberKey -output member_keys.go schema.go

For use with go:generate:
  //go:generate go tool partymeta generate keys -type PartySchema -output party_keys.go schema.go`)
}
