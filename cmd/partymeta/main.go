// Package main provides the partymeta CLI tool.
//
// Usage:
//
//	go tool partymeta <command> [arguments]
//
// Commands:
//
//	decode      Decode a meta snapshot file into a typed view
//	watch       Re-decode a meta snapshot file whenever it changes
//	generate    Generate typed meta key catalogues from schema structs
//	help        Show help for a command
//	version     Show version information
package main

import (
	"fmt"
	"os"

	"github.com/yacchi/partymeta/internal/cmd/generate"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "decode":
		err = runDecode(args, os.Stdout)
	case "watch":
		err = runWatch(args, os.Stdout)
	case "generate":
		err = generate.Run(args)
	case "help":
		if len(args) > 0 {
			printCommandHelp(args[0])
		} else {
			printUsage()
		}
	case "version", "-v", "--version":
		fmt.Printf("partymeta version %s\n", version)
	case "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`partymeta - Party and party member meta decoder

Usage:
  go tool partymeta <command> [arguments]

Commands:
  decode      Decode a meta snapshot file into a typed view
  watch       Re-decode a meta snapshot file whenever it changes
  generate    Generate typed meta key catalogues from schema structs
  help        Show help for a command
  version     Show version information

Environment:
  PARTYMETA_LOG_LEVEL      debug, info, warn or error (default "info")
  PARTYMETA_LOG_PRETTY     console log output instead of JSON (default false)
  PARTYMETA_METRICS_ADDR   listen address for /metrics in watch mode

Use "go tool partymeta help <command>" for more information about a command.`)
}

func printCommandHelp(cmd string) {
	switch cmd {
	case "decode":
		printDecodeHelp()
	case "watch":
		printWatchHelp()
	case "generate":
		generate.PrintHelp()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		os.Exit(1)
	}
}
