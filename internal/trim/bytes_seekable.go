package trim

import "io"

// elideBytesSeekable emits everything except the last nElide bytes of a
// measured source. cur and end come from a successful length probe, with the
// source now positioned at end. Nothing is buffered beyond one copy block.
func (e *Engine) elideBytesSeekable(w io.Writer, src io.ReadSeeker, name string, nElide uint64, cur, end int64) error {
	// The current position may be beyond end-of-file.
	var remaining uint64
	if end > cur {
		remaining = uint64(end - cur)
	}
	if remaining <= nElide {
		return nil
	}

	// Restore the read cursor before copying. Failing here is fatal for this
	// source: data has not been consumed, but the position is lost.
	if _, err := src.Seek(cur, io.SeekStart); err != nil {
		return seekErr(name, err)
	}
	return copyExact(w, src, name, int64(remaining-nElide), e.blockSize)
}
