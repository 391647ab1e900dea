package main

import (
	"errors"
	"flag"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woozymasta/ulz"
)

const version = "1.0.0"

var errOutputMulti = errors.New("--output needs exactly one input file")

// config holds command line settings shared by all processed files.
type config struct {
	decompress bool
	force      bool
	output     string
	verbose    int
	search     int
	limit      int
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "ulz [flags] file...",
		Short: "Compress or decompress files with uLZ",
		Long: "Compress files to <name>.ulz, or decompress <name>.ulz back to <name>.\n" +
			"The direction is detected by extension unless --decompress is given.",
		Version:      version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cfg.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.output != "" && len(args) > 1 {
				return errOutputMulti
			}
			if cfg.search < 0 {
				return ulz.ErrInvalidSearchLimit
			}

			for _, name := range args {
				if err := processFile(cfg, name, cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	bindFlags(cmd.Flags(), cfg)

	return cmd
}

func bindFlags(flags *pflag.FlagSet, cfg *config) {
	flags.BoolVarP(&cfg.decompress, "decompress", "d", false, "Force decompress (normally detected by extension)")
	flags.BoolVarP(&cfg.force, "force", "f", false, "Force overwrite output file")
	flags.StringVarP(&cfg.output, "output", "o", "", "Set alternative output file name")
	flags.CountVarP(&cfg.verbose, "verbose", "v", "Increase verbosity level")
	flags.IntVar(&cfg.search, "search", ulz.WindowSize, "Match search window in bytes (0 = literals only)")
	flags.IntVar(&cfg.limit, "limit", 0, "Refuse to decompress files larger than this many bytes (0 = no limit)")
}

// setupLogging routes glog to stderr with verbosity taken from -v.
func setupLogging(verbose int) error {
	if !flag.Parsed() {
		if err := flag.CommandLine.Parse(nil); err != nil {
			return err
		}
	}
	if err := flag.Set("logtostderr", "true"); err != nil {
		return err
	}

	return flag.Set("v", strconv.Itoa(verbose))
}
