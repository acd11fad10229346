package cli

import (
	"flag"
	"fmt"
	"io"
)

type snapshotFlags struct {
	season  string
	version string
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (s *snapshotFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&s.season, "season", "", "season identifier, e.g. 2023_2024")
	fs.StringVar(&s.version, "version", "", "start, summer_end, winter_end or end (default: latest on disk)")
}

func parseFlags(fs *flag.FlagSet, args []string, snap *snapshotFlags) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %v", ErrUsage, fs.Name(), fs.Args())
	}
	if snap != nil && snap.season == "" {
		return fmt.Errorf("%w: %s: -season is required", ErrUsage, fs.Name())
	}
	return nil
}

// flagSet reports whether name was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
