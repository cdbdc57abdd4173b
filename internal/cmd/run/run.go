package run

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	cfgpkg "github.com/rzbill/snip/internal/config"
	"github.com/rzbill/snip/internal/trim"
	logpkg "github.com/rzbill/snip/pkg/log"
)

// HeaderMode controls when per-file "==> name <==" banners are printed.
type HeaderMode int

// Header modes
const (
	HeaderMultiple HeaderMode = iota // only when more than one input (default)
	HeaderAlways
	HeaderNever
)

// Options configures one invocation.
type Options struct {
	// Files are the input operands in order; empty means standard input.
	// The operand "-" names standard input explicitly.
	Files []string
	// Request is the resolved trimming request applied to every input.
	Request trim.Request
	Headers HeaderMode
	// ForceStreaming bypasses the engine's seekability probe.
	ForceStreaming bool

	Config cfgpkg.Config
	Logger logpkg.Logger

	// Stdout, Stdin and FS exist as seams for tests; they default to the
	// real process streams and the OS filesystem.
	Stdout io.Writer
	Stdin  io.Reader
	FS     afero.Fs
}

// ErrPartialFailure reports that at least one input could not be processed.
var ErrPartialFailure = errors.New("some inputs could not be processed")

// Run processes every input sequentially and returns ErrPartialFailure if
// any of them failed. Per-input diagnostics go through the logger.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = logpkg.NewNullLogger()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if len(opts.Files) == 0 {
		opts.Files = []string{"-"}
	}
	logger := opts.Logger.WithComponent("run")

	// An elision count that no file offset can represent cannot succeed on
	// any input; refuse it before touching the first one.
	if opts.Request.Elide && opts.Request.Unit == trim.Bytes && opts.Request.Count > math.MaxInt64 {
		return fmt.Errorf("%d: number of bytes is too large", opts.Request.Count)
	}

	engine := trim.New(trim.Options{
		BlockSize:       int(opts.Config.BlockSize),
		StreamThreshold: int(opts.Config.StreamThreshold),
		ForceStreaming:  opts.ForceStreaming,
		Logger:          opts.Logger,
	})
	logger.Debug("engine configured",
		logpkg.Str("block_size", humanize.IBytes(uint64(opts.Config.BlockSize))),
		logpkg.Str("stream_threshold", humanize.IBytes(uint64(opts.Config.StreamThreshold))),
		logpkg.Str("unit", opts.Request.Unit.String()),
		logpkg.Uint64("count", opts.Request.Count),
		logpkg.Bool("elide", opts.Request.Elide))

	printHeaders := opts.Headers == HeaderAlways ||
		(opts.Headers == HeaderMultiple && len(opts.Files) > 1)

	failed := false
	firstFile := true
	for _, name := range opts.Files {
		if err := processOne(engine, &opts, name, printHeaders, &firstFile); err != nil {
			logger.Error("input failed", logpkg.Str("file", name), logpkg.Err(err))
			failed = true
		}
	}
	if failed {
		return ErrPartialFailure
	}
	return nil
}

func processOne(engine *trim.Engine, opts *Options, name string, printHeaders bool, firstFile *bool) error {
	var src io.Reader
	display := name
	if name == "-" {
		src = opts.Stdin
		display = "standard input"
	} else {
		f, err := opts.FS.Open(name)
		if err != nil {
			return fmt.Errorf("cannot open %q for reading: %w", name, err)
		}
		defer f.Close()
		src = f
	}

	if printHeaders {
		writeHeader(opts.Stdout, display, firstFile)
	}
	return engine.Process(opts.Stdout, src, display, opts.Request)
}

// writeHeader prints the "==> name <==" banner, blank-line separated from
// the previous file's output.
func writeHeader(w io.Writer, name string, firstFile *bool) {
	sep := "\n"
	if *firstFile {
		sep = ""
	}
	fmt.Fprintf(w, "%s==> %s <==\n", sep, name)
	*firstFile = false
}
