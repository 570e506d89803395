// Package generate holds the partymeta code generators. Each one reads
// schema structs whose fields carry meta:"<Category>:<Field>_<Tag>" tags and
// writes Go source that the root package compiles with.
package generate

import (
	"fmt"
	"io"
	"os"

	"github.com/yacchi/partymeta/internal/cmd/generate/keys"
)

type generator struct {
	name    string
	summary string
	run     func(args []string) error
}

var generators = []generator{
	{
		name:    "keys",
		summary: "Write metakey.Define declarations for every tagged field of a schema struct",
		run:     keys.Run,
	},
}

func lookup(name string) (generator, bool) {
	for _, g := range generators {
		if g.name == name {
			return g, true
		}
	}
	return generator{}, false
}

// Run executes the generator named by args[0] with the remaining arguments.
func Run(args []string) error {
	if len(args) < 1 {
		PrintHelp()
		return fmt.Errorf("missing generator name")
	}

	switch name := args[0]; name {
	case "help", "-h", "--help":
		PrintHelp()
		return nil
	default:
		g, ok := lookup(name)
		if !ok {
			PrintHelp()
			return fmt.Errorf("unknown generator %q", name)
		}
		return g.run(args[1:])
	}
}

// PrintHelp prints help for the generate command to stderr.
func PrintHelp() {
	writeHelp(os.Stderr)
}

func writeHelp(w io.Writer) {
	fmt.Fprint(w, `partymeta generate - Generate typed meta key catalogues

Schema structs list the meta keys a party or member advertises. Each field is
tagged with its full key name; the suffix after the last underscore picks the
codec (s string, b bool, U uint, I int, d float, j JSON).

    type PartySchema struct {
        RegionID string `+"`"+`meta:"Default:RegionId_s"`+"`"+`
    }

Usage:
  go tool partymeta generate <generator> [arguments]

Generators:
`)
	for _, g := range generators {
		fmt.Fprintf(w, "  %-10s  %s\n", g.name, g.summary)
	}
	fmt.Fprint(w, `
From a go:generate directive next to the schema:
  //go:generate go tool partymeta generate keys -type PartySchema -var-prefix PartyKey -output party_keys.go schema.go

Use "go tool partymeta generate <generator> -h" for generator flags.
`)
}
