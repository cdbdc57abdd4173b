package trim

import (
	"bytes"
	"io"
)

// lineBlock is one node of the FIFO block queue: a fixed-capacity byte
// buffer plus the number of newlines it holds.
type lineBlock struct {
	buf    []byte
	nbytes int
	nlines int
	next   *lineBlock
}

// elideLinesStream emits everything except the last nElide lines of a
// forward-only source. Blocks are appended at the tail and flushed from the
// head as soon as the remaining queue still covers nElide lines, so memory
// stays close to O(nElide) line bytes.
func (e *Engine) elideLinesStream(w io.Writer, src io.Reader, name string, nElide uint64) error {
	blockSize := e.blockSize
	newBlock := func() *lineBlock { return &lineBlock{buf: make([]byte, blockSize)} }

	first := newBlock()
	last := first
	tmp := newBlock()
	var totalLines uint64 // newlines across all queued blocks

	for {
		nr, err := src.Read(tmp.buf)
		if nr > 0 {
			tmp.nbytes = nr
			tmp.nlines = bytes.Count(tmp.buf[:nr], []byte{'\n'})
			tmp.next = nil
			totalLines += uint64(tmp.nlines)

			if tmp.nbytes+last.nbytes < blockSize {
				// Pipe reads are often tiny; fold them into the tail block
				// instead of burning a block per read.
				copy(last.buf[last.nbytes:], tmp.buf[:tmp.nbytes])
				last.nbytes += tmp.nbytes
				last.nlines += tmp.nlines
			} else {
				last.next = tmp
				last = tmp
				if nElide < totalLines-uint64(first.nlines) {
					// The head block is no longer needed to cover the last
					// nElide lines: flush it and reuse it as the next
					// scratch block.
					if _, werr := w.Write(first.buf[:first.nbytes]); werr != nil {
						return writeErr(name, werr)
					}
					totalLines -= uint64(first.nlines)
					tmp = first
					first = first.next
				} else {
					tmp = newBlock()
				}
			}
		}
		if err == io.EOF || (err == nil && nr == 0) {
			break
		}
		if err != nil {
			return readErr(name, err)
		}
	}

	// A final byte that is not a newline still ends a (partial) logical line.
	if last.nbytes > 0 && last.buf[last.nbytes-1] != '\n' {
		last.nlines++
		totalLines++
	}

	b := first
	for ; nElide < totalLines-uint64(b.nlines); b = b.next {
		if _, err := w.Write(b.buf[:b.nbytes]); err != nil {
			return writeErr(name, err)
		}
		totalLines -= uint64(b.nlines)
	}

	if nElide < totalLines {
		// Emit the leading totalLines-nElide lines of the final block.
		n := totalLines - nElide
		p := 0
		for n > 0 {
			idx := bytes.IndexByte(b.buf[p:b.nbytes], '\n')
			if idx < 0 {
				// Remaining demand is the unterminated final line.
				p = b.nbytes
				break
			}
			p += idx + 1
			n--
		}
		if _, err := w.Write(b.buf[:p]); err != nil {
			return writeErr(name, err)
		}
	}
	return nil
}
