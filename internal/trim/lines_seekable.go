package trim

import (
	"bytes"
	"io"
)

// elideLinesSeekable emits everything except the last nElide lines of a
// measured source by scanning backward from EOF in block-aligned chunks,
// counting newlines until it finds the cut point, then forward-copying the
// retained prefix. cur and end come from a successful length probe; memory
// is one block regardless of nElide.
func (e *Engine) elideLinesSeekable(w io.Writer, src io.ReadSeeker, name string, nElide uint64, cur, end int64) error {
	if nElide == 0 {
		// Nothing to elide; stream the remainder as-is.
		if _, err := src.Seek(cur, io.SeekStart); err != nil {
			return seekErr(name, err)
		}
		return copyExact(w, src, name, end-cur, e.blockSize)
	}

	blockSize := int64(e.blockSize)
	buf := make([]byte, blockSize)
	n := nElide

	// Size the first chunk so every later read lands on a block boundary.
	pos := end
	chunk := (pos - cur) % blockSize
	if chunk == 0 {
		chunk = blockSize
	}
	pos -= chunk
	if _, err := src.Seek(pos, io.SeekStart); err != nil {
		return seekErr(name, err)
	}
	nr, err := readFull(src, buf[:chunk])
	if err != nil {
		return readErr(name, err)
	}

	// A missing trailing newline means the partial final line is itself one
	// of the elided lines.
	if nr > 0 && buf[nr-1] != '\n' {
		n--
	}

	for {
		// Scan backward through this chunk.
		k := nr
		for k > 0 {
			nl := bytes.LastIndexByte(buf[:k], '\n')
			if nl < 0 {
				break
			}
			k = nl
			if n == 0 {
				// Cut point found: emit cur..pos from the file, then the
				// in-memory prefix through this newline.
				if cur < pos {
					if _, err := src.Seek(cur, io.SeekStart); err != nil {
						return seekErr(name, err)
					}
					if err := copyExact(w, src, name, pos-cur, e.blockSize); err != nil {
						return err
					}
				}
				if _, werr := w.Write(buf[:nl+1]); werr != nil {
					return writeErr(name, werr)
				}
				return nil
			}
			n--
		}

		if pos == cur {
			// Fewer lines in the file than requested; nothing to emit.
			return nil
		}
		pos -= blockSize
		if _, err := src.Seek(pos, io.SeekStart); err != nil {
			return seekErr(name, err)
		}
		nr, err = readFull(src, buf)
		if err != nil {
			return readErr(name, err)
		}
		if nr == 0 {
			return nil
		}
	}
}
