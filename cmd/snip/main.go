package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	runpkg "github.com/rzbill/snip/internal/cmd/run"
	cfgpkg "github.com/rzbill/snip/internal/config"
	"github.com/rzbill/snip/internal/opts"
	"github.com/rzbill/snip/internal/trim"
	logpkg "github.com/rzbill/snip/pkg/log"
	"github.com/rzbill/snip/pkg/version"
)

const defaultCount = 10

func main() {
	args, err := opts.RewriteObsolete(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "snip: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try 'snip --help' for more information.")
		os.Exit(1)
	}

	// Respect SNIP_LOG_LEVEL for startup output; config/flags refine later.
	parsed, err := logpkg.ParseLevel(os.Getenv("SNIP_LOG_LEVEL"))
	if err != nil {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	rootCmd := newRootCommand(logger, args)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		if err != runpkg.ErrPartialFailure {
			fmt.Fprintf(os.Stderr, "snip: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand(logger logpkg.Logger, rawArgs []string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "snip [flags] [file]...",
		Short: "Print the first part of files",
		Long: "Print the first 10 lines of each file to standard output.\n" +
			"With more than one file, precede each with a header giving the file name.\n" +
			"With no file, or when file is -, read standard input.\n\n" +
			"Counts may carry a multiplier suffix: b 512, k 1024, m 1024*1024.\n" +
			"A count written -N prints everything except the last N units instead.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, files []string) error {
			return runRoot(cmd, files, logger, rawArgs)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP("lines", "n", "", "print the first N lines instead of the first 10; -N elides the last N lines")
	flags.StringP("bytes", "c", "", "print the first N bytes; -N elides the last N bytes")
	flags.BoolP("quiet", "q", false, "never print headers giving file names")
	flags.Bool("silent", false, "same as --quiet")
	flags.BoolP("verbose", "v", false, "always print headers giving file names")
	flags.Bool("presume-input-pipe", false, "")
	flags.String("config", "", "config file (default: auto-detected)")
	flags.String("log-level", "", "log level: debug|info|warn|error")
	flags.String("log-format", "", "log format: text|json")
	_ = flags.MarkHidden("silent")
	_ = flags.MarkHidden("presume-input-pipe")

	return rootCmd
}

func runRoot(cmd *cobra.Command, files []string, logger logpkg.Logger, rawArgs []string) error {
	flags := cmd.Flags()

	cfgPath, _ := flags.GetString("config")
	if cfgPath == "" {
		cfgPath = cfgpkg.DefaultConfigPath()
	}
	cfg, err := cfgpkg.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfgpkg.FromEnv(&cfg)
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if level, err := logpkg.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if cfg.LogFormat == "json" {
		logger = logpkg.NewLogger(
			logpkg.WithLevel(logger.GetLevel()),
			logpkg.WithFormatter(&logpkg.JSONFormatter{}),
			logpkg.WithOutput(logpkg.NewConsoleOutput()),
		)
	}

	request, err := resolveRequest(flags, rawArgs)
	if err != nil {
		return err
	}

	headers := runpkg.HeaderMultiple
	if quiet, _ := flags.GetBool("quiet"); quiet {
		headers = runpkg.HeaderNever
	} else if silent, _ := flags.GetBool("silent"); silent {
		headers = runpkg.HeaderNever
	} else if verbose, _ := flags.GetBool("verbose"); verbose {
		headers = runpkg.HeaderAlways
	}

	forceStreaming, _ := flags.GetBool("presume-input-pipe")

	return runpkg.Run(runpkg.Options{
		Files:          files,
		Request:        request,
		Headers:        headers,
		ForceStreaming: forceStreaming,
		Config:         cfg,
		Logger:         logger,
	})
}

// resolveRequest turns the -n/-c flags into one trimming request. When both
// appear, the one later on the command line wins, which is why the raw
// argument order is consulted.
func resolveRequest(flags *pflag.FlagSet, rawArgs []string) (trim.Request, error) {
	linesArg, _ := flags.GetString("lines")
	bytesArg, _ := flags.GetString("bytes")

	useBytes := false
	switch {
	case linesArg != "" && bytesArg != "":
		useBytes, _ = opts.UnitFromArgs(rawArgs)
	case bytesArg != "":
		useBytes = true
	}

	if useBytes {
		count, elide, err := opts.ParseCount(bytesArg, false)
		if err != nil {
			return trim.Request{}, err
		}
		return trim.Request{Unit: trim.Bytes, Count: count, Elide: elide}, nil
	}
	if linesArg == "" {
		return trim.Request{Unit: trim.Lines, Count: defaultCount}, nil
	}
	count, elide, err := opts.ParseCount(linesArg, true)
	if err != nil {
		return trim.Request{}, err
	}
	return trim.Request{Unit: trim.Lines, Count: count, Elide: elide}, nil
}
