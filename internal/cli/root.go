package cli

import (
	"github.com/spf13/cobra"

	"github.com/procfsd/procfsd/internal/options"
	"github.com/procfsd/procfsd/internal/procs"
)

// runConfig holds everything the startup sequence needs besides the
// option store itself.
type runConfig struct {
	Verbose    bool
	AllowOther bool
	ProcRoot   string

	// Table overrides the process-table source (for tests). When nil a
	// table is opened at ProcRoot.
	Table *procs.Table

	// SkipServe stops the sequence after root assembly (for tests).
	SkipServe bool
}

// NewRootCommand creates the procfsd command.
func NewRootCommand() *cobra.Command {
	opts := options.Defaults()
	cfg := &runConfig{}

	cmd := &cobra.Command{
		Use:   "procfsd [flags] MOUNTPOINT",
		Short: "A virtual filesystem emulating the Linux procfs",
		Long: `procfsd is a synthetic filesystem translator. It publishes a
Linux-style process-information namespace at MOUNTPOINT: one numeric
directory per live process plus the global informational files.

Nothing is stored anywhere; every file is rendered from the process
table on read. Configuration is supplied on the command line and is
fixed for the life of the mount.

Example:
  procfsd /proc
  procfsd --compatible --anonymous-owner=nobody /proc`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslator(&opts, cfg, args)
		},
	}

	cmd.Flags().AddFlagSet(options.NewFlagSet(&opts, nil))
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVar(&cfg.AllowOther, "allow-other", false, "allow other users to access the mount")
	cmd.Flags().StringVar(&cfg.ProcRoot, "proc-root", procs.DefaultRoot, "process-table root to read facts from")

	// Claim the help flag without a shorthand: -h belongs to --clk-tck.
	cmd.Flags().Bool("help", false, "help for procfsd")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return newStartupError(StageParse, "could not parse command line", err)
	})

	return cmd
}
