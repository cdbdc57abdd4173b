package trim

import (
	"io"
	"os"

	"github.com/rzbill/snip/pkg/log"
)

// Unit selects what the engine counts.
type Unit int

// Counting units
const (
	Bytes Unit = iota
	Lines
)

// String returns the unit's name.
func (u Unit) String() string {
	if u == Lines {
		return "lines"
	}
	return "bytes"
}

// Request is one resolved trimming request: print the first Count units,
// or with Elide set, everything except the last Count units.
type Request struct {
	Unit  Unit
	Count uint64
	Elide bool
}

// Defaults for Options.
const (
	DefaultBlockSize       = 8 << 10  // one read/write I/O block
	DefaultStreamThreshold = 1 << 20  // switch point between the two streaming byte strategies
)

// Options configures an Engine. Zero values pick the defaults above.
type Options struct {
	// BlockSize is the I/O chunk size used by every variant.
	BlockSize int
	// StreamThreshold selects the streaming byte strategy: elision counts at
	// or below it use the double-buffer, larger counts use the block ring.
	StreamThreshold int
	// ForceStreaming bypasses the seekability probe so seekable sources are
	// processed by the streaming variants. Used to test those paths against
	// regular files.
	ForceStreaming bool
	// Logger receives strategy-selection and fallback diagnostics at debug
	// level. Defaults to a null logger.
	Logger log.Logger
}

// Engine trims streams per Request. An Engine is stateless between calls and
// cheap to construct; each call owns its buffers exclusively.
type Engine struct {
	blockSize   int
	threshold   int
	forceStream bool
	logger      log.Logger
}

// New constructs an Engine.
func New(opts Options) *Engine {
	if opts.BlockSize <= 0 {
		opts.BlockSize = DefaultBlockSize
	}
	if opts.StreamThreshold <= 0 {
		opts.StreamThreshold = DefaultStreamThreshold
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNullLogger()
	}
	return &Engine{
		blockSize:   opts.BlockSize,
		threshold:   opts.StreamThreshold,
		forceStream: opts.ForceStreaming,
		logger:      opts.Logger.WithComponent("trim"),
	}
}

// Process emits the requested prefix of src to w. name is the source's
// display name for diagnostics. The source is read from its current
// position; partial output written before a failure is not rolled back.
func (e *Engine) Process(w io.Writer, src io.Reader, name string, req Request) error {
	if req.Elide {
		if req.Unit == Lines {
			return e.elideLines(w, src, name, req.Count)
		}
		return e.elideBytes(w, src, name, req.Count)
	}
	if req.Unit == Lines {
		return e.headLines(w, src, name, req.Count)
	}
	return e.headBytes(w, src, name, req.Count)
}

// statter is the optional Stat capability of files (os.File, afero.File).
type statter interface {
	Stat() (os.FileInfo, error)
}

// seekableSource reports whether src supports random access. Sources with a
// Stat capability must additionally be regular files: pipes and character
// devices implement Seek but lie about it.
func (e *Engine) seekableSource(src io.Reader) (io.ReadSeeker, bool) {
	if e.forceStream {
		return nil, false
	}
	rs, ok := src.(io.ReadSeeker)
	if !ok {
		return nil, false
	}
	if st, ok := src.(statter); ok {
		info, err := st.Stat()
		if err != nil || !info.Mode().IsRegular() {
			return nil, false
		}
	}
	return rs, true
}

// probe returns the source's current offset and end-of-stream offset.
func probe(rs io.ReadSeeker) (cur, end int64, err error) {
	if cur, err = rs.Seek(0, io.SeekCurrent); err != nil {
		return 0, 0, err
	}
	end, err = rs.Seek(0, io.SeekEnd)
	return cur, end, err
}

// elideBytes emits everything except the last n bytes of src.
func (e *Engine) elideBytes(w io.Writer, src io.Reader, name string, n uint64) error {
	if rs, ok := e.seekableSource(src); ok {
		cur, end, err := probe(rs)
		if err == nil {
			e.logger.Debug("eliding bytes via seek",
				log.Str("file", name), log.Uint64("count", n), log.Int64("end", end))
			return e.elideBytesSeekable(w, rs, name, n, cur, end)
		}
		// Claimed seekable but the length probe failed; treat this one
		// source as a stream.
		e.logger.Debug("length probe failed, using streaming variant",
			log.Str("file", name), log.Err(err))
	}
	return e.elideBytesStream(w, src, name, n)
}

// elideLines emits everything except the last n lines of src.
func (e *Engine) elideLines(w io.Writer, src io.Reader, name string, n uint64) error {
	if rs, ok := e.seekableSource(src); ok {
		cur, end, err := probe(rs)
		if err == nil && 0 <= cur && cur < end {
			e.logger.Debug("eliding lines via backward scan",
				log.Str("file", name), log.Uint64("count", n), log.Int64("end", end))
			return e.elideLinesSeekable(w, rs, name, n, cur, end)
		}
		if err == nil {
			// Empty remainder: the read cursor is already at or past EOF.
			return nil
		}
		e.logger.Debug("length probe failed, using streaming variant",
			log.Str("file", name), log.Err(err))
	}
	return e.elideLinesStream(w, src, name, n)
}
