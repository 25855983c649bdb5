package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - seed:    Load the admin account and demo catalogue into empty collections
// - dump:    Write every stored key to a JSON snapshot
// - restore: Load a JSON snapshot back into the store

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	dumpCmd := flag.NewFlagSet("dump", flag.ExitOnError)
	restoreCmd := flag.NewFlagSet("restore", flag.ExitOnError)

	// dump parameters
	dumpOutput := dumpCmd.String("output", "-", "Snapshot file, - for stdout")
	dumpPrefix := dumpCmd.String("prefix", "", "Only dump keys starting with this prefix")

	// restore parameters
	restoreInput := restoreCmd.String("input", "", "Snapshot file to restore")
	restoreReplace := restoreCmd.Bool("replace", false, "Remove keys under the snapshot prefix that the snapshot does not hold")
	restoreVerify := restoreCmd.Bool("verify", true, "Refuse snapshots whose checksum does not match")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := storeFlags{
		Seed: seedFlags{
			cmd: seedCmd,
		},
		Dump: dumpFlags{
			cmd:    dumpCmd,
			output: dumpOutput,
			prefix: dumpPrefix,
		},
		Restore: restoreFlags{
			cmd:     restoreCmd,
			input:   restoreInput,
			replace: restoreReplace,
			verify:  restoreVerify,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type storeFlags struct {
	Seed    seedFlags
	Dump    dumpFlags
	Restore restoreFlags
}

type seedFlags struct {
	cmd *flag.FlagSet
}

type dumpFlags struct {
	cmd    *flag.FlagSet
	output *string
	prefix *string
}

type restoreFlags struct {
	cmd     *flag.FlagSet
	input   *string
	replace *bool
	verify  *bool
}

func runSubcommand(ctx context.Context, flags *storeFlags) error {
	switch os.Args[1] {
	case "seed":
		if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse seed flags")
		}

		return runSeed(ctx)
	case "dump":
		if err := flags.Dump.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse dump flags")
		}

		return runDump(ctx, *flags.Dump.output, *flags.Dump.prefix)
	case "restore":
		if err := flags.Restore.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse restore flags")
		}
		if *flags.Restore.input == "" {
			return errors.New("-input is required")
		}

		return runRestore(ctx, *flags.Restore.input, *flags.Restore.replace, *flags.Restore.verify)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println(`Usage: storectl <command> [options]

Commands:
  seed      Create the configured admin and demo data in empty collections
  dump      Write the store to a JSON snapshot
  restore   Load a JSON snapshot into the store

The storage backend is read from the same config as the server (config/config.yaml).

Examples:
  storectl seed
  storectl dump -output backup.json
  storectl dump -prefix userData_ -output users.json
  storectl restore -input backup.json -replace`)
}
