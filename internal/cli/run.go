package cli

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/procfsd/procfsd/internal/dircat"
	"github.com/procfsd/procfsd/internal/fsnode"
	"github.com/procfsd/procfsd/internal/fusefs"
	"github.com/procfsd/procfsd/internal/options"
	"github.com/procfsd/procfsd/internal/proclist"
	"github.com/procfsd/procfsd/internal/procs"
	"github.com/procfsd/procfsd/internal/rootdir"
)

// runTranslator drives the startup sequence. The stages run strictly in
// order with no retries; a failure at any point aborts before a single
// request is served.
func runTranslator(opts *options.Options, cfg *runConfig, args []string) error {
	logLevel := slog.LevelInfo
	if cfg.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))

	// Unconfigured -> Parsed happened during the flag pass. From here on
	// the option store is read-only; every component below receives a
	// copy and no writer remains.
	slog.Debug("options parsed", "args", opts.Args())

	// Parsed -> ContextReady
	table := cfg.Table
	if table == nil {
		var err error
		table, err = procs.NewTable(cfg.ProcRoot)
		if err != nil {
			return newStartupError(StageContext, "could not create the process-table context", err)
		}
	}
	slog.Debug("process-table context ready", "root", table.Root())

	// ContextReady -> BootstrapAcquired. The mountpoint argument is the
	// translator's bootstrap handle; without one this process was not
	// started in the translator role.
	if len(args) != 1 || args[0] == "" {
		return newStartupError(StageBootstrap, "must be started as a translator", nil)
	}
	mountpoint := args[0]

	// BootstrapAcquired -> RootReady. The contributor order here is the
	// lookup precedence for the life of the mount: process directories
	// first, then the static informational files.
	alloc := fsnode.NewAllocator()
	root, err := dircat.New(
		dircat.Contributor{Name: "proclist", Dir: proclist.New(table, *opts, alloc)},
		dircat.Contributor{Name: "rootdir", Dir: rootdir.New(table, *opts, alloc)},
	)
	if err != nil {
		return newStartupError(StageRoot, "could not create the root node", err)
	}

	if cfg.SkipServe {
		return nil
	}

	mcfg := fusefs.MountConfig{AllowOther: cfg.AllowOther}
	conn, err := fusefs.Mount(mountpoint, mcfg)
	if err != nil {
		return newStartupError(StageBootstrap, "could not attach to the mountpoint", err)
	}
	defer conn.Close()

	slog.Info("serving",
		"mountpoint", mountpoint,
		"instance", uuid.NewString(),
		"options", fusefs.AppendArgs(*opts, mcfg))

	// RootReady -> Serving. The dispatch loop runs until the process is
	// killed; control coming back here means the mount was torn down
	// underneath us, which is not a state this translator recovers from.
	if err := fusefs.Serve(conn, root); err != nil {
		return newStartupError(StageServe, "request-dispatch loop failed", err)
	}
	return newStartupError(StageServe, "request-dispatch loop returned", nil)
}
