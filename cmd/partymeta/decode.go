package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/yacchi/partymeta/decoder"
	"github.com/yacchi/partymeta/internal/config"
	"github.com/yacchi/partymeta/internal/logging"
	"github.com/yacchi/partymeta/internal/snapshot"
	"github.com/yacchi/partymeta/metastore"
)

// commonOptions are the flags shared by decode and watch.
type commonOptions struct {
	Kind      string
	Decoder   string
	LogLevel  string
	LogPretty bool
}

func (o *commonOptions) register(fs *flag.FlagSet, cfg config.Config) {
	fs.StringVar(&o.Kind, "kind", kindMember, "snapshot kind: party or member")
	fs.StringVar(&o.Decoder, "decoder", "json", "typed record decoder: json or mapstructure")
	fs.StringVar(&o.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&o.LogPretty, "log-pretty", cfg.LogPretty, "console log output instead of JSON")
}

func (o *commonOptions) validate() (decoder.Func, error) {
	if err := validKind(o.Kind); err != nil {
		return nil, err
	}
	return decoder.ByName(o.Decoder)
}

func (o *commonOptions) logger() zerolog.Logger {
	return logging.New(logging.Config{Level: o.LogLevel, Pretty: o.LogPretty})
}

func runDecode(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	var opts commonOptions
	opts.register(fs, cfg)
	fs.Usage = printDecodeHelp

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		printDecodeHelp()
		return fmt.Errorf("exactly one snapshot file is required")
	}
	decode, err := opts.validate()
	if err != nil {
		return err
	}

	return decodeFile(fs.Arg(0), opts.Kind, decode, opts.logger(), out)
}

func decodeFile(path, kind string, decode decoder.Func, logger zerolog.Logger, out io.Writer) error {
	p, err := snapshot.Load(path)
	if err != nil {
		return err
	}
	store := metastore.New(metastore.WithInitial(p), metastore.WithLogger(logger))
	return writeReport(out, render(kind, store, decode, logger, nil))
}

func printDecodeHelp() {
	fmt.Fprintln(os.Stderr, `partymeta decode - Decode a meta snapshot file

Usage:
  go tool partymeta decode [options] <snapshot.json>

The snapshot is a JSON object mapping meta keys to their raw string values.
The decoded view is printed as JSON; values that failed to decode are listed
under "errors".

Options:
  -kind string        Snapshot kind: party or member (default "member")
  -decoder string     Typed record decoder: json or mapstructure (default "json")
  -log-level string   Log level (default $PARTYMETA_LOG_LEVEL or "info")
  -log-pretty         Console log output (default $PARTYMETA_LOG_PRETTY)`)
}
