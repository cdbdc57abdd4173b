package trim

import (
	"io"
	"math"
)

// elideBytesStream emits everything except the last nElide bytes of a
// forward-only source. The elided tail must be buffered since its start is
// unknowable until end-of-stream; memory stays O(nElide) either way, the
// threshold only trades allocation size against copy traffic.
func (e *Engine) elideBytesStream(w io.Writer, src io.Reader, name string, nElide uint64) error {
	if nElide > uint64(math.MaxInt-e.blockSize) {
		return overflowErr(name)
	}
	if n := int(nElide); n <= e.threshold {
		return e.elideBytesDouble(w, src, name, n)
	}
	return e.elideBytesRing(w, src, name, int(nElide))
}

// elideBytesDouble is the small-count strategy: two buffers of
// blockSize+nElide bytes, filled alternately. Once a round has been read, the
// previous round's trailing nElide bytes are known not to be part of the
// final tail and become safe to emit.
func (e *Engine) elideBytesDouble(w io.Writer, src io.Reader, name string, nElide int) error {
	readSize := e.blockSize + nElide
	b := [2][]byte{make([]byte, readSize), make([]byte, readSize)}

	first := true
	for i := 0; ; i = 1 - i {
		nr, err := readFull(src, b[i])
		if err != nil {
			return readErr(name, err)
		}
		eof := nr < readSize
		// On the end-of-stream round, only nElide-delta bytes of the
		// previous round's withheld region sit before the true tail.
		delta := 0
		if eof && nr <= nElide {
			if first {
				// The whole input fits inside the elision count.
				return nil
			}
			delta = nElide - nr
		}

		if !first {
			if _, werr := w.Write(b[1-i][e.blockSize : e.blockSize+nElide-delta]); werr != nil {
				return writeErr(name, werr)
			}
		}
		first = false

		if nElide < nr {
			if _, werr := w.Write(b[i][:nr-nElide]); werr != nil {
				return writeErr(name, werr)
			}
		}
		if eof {
			return nil
		}
	}
}

// elideBytesRing is the large-count strategy: a ring of
// ceil(nElide/blockSize)+1 lazily allocated blocks. Once the ring has cycled,
// each fresh read releases the block exactly one ring behind it, keeping the
// unwritten tail at least as large as the rounded-up elision count.
func (e *Engine) elideBytesRing(w io.Writer, src io.Reader, name string, nElide int) error {
	blockSize := e.blockSize
	// Round nElide up to a multiple of the block size; rem is in [1, blockSize].
	rem := blockSize - nElide%blockSize
	nBufs := (nElide+rem)/blockSize + 1
	bufs := make([][]byte, nBufs)

	buffered := false // ring has cycled through every slot once
	eof := false
	var nr int
	i, iNext := 0, 1
	for !eof {
		if bufs[i] == nil {
			bufs[i] = make([]byte, blockSize)
		}
		var err error
		nr, err = readFull(src, bufs[i])
		if err != nil {
			return readErr(name, err)
		}
		if nr < blockSize {
			eof = true
		}
		if i+1 == nBufs {
			buffered = true
		}
		if buffered {
			if _, werr := w.Write(bufs[iNext][:nr]); werr != nil {
				return writeErr(name, werr)
			}
		}
		i, iNext = iNext, (iNext+1)%nBufs
	}

	// The loop withheld nElide+rem bytes; rem of them are not part of the
	// tail and still need emitting. After the final rotation bufs[i] is the
	// oldest partially written block.
	if buffered {
		left := blockSize - nr
		if rem < left {
			if _, err := w.Write(bufs[i][nr : nr+rem]); err != nil {
				return writeErr(name, err)
			}
			return nil
		}
		if _, err := w.Write(bufs[i][nr:blockSize]); err != nil {
			return writeErr(name, err)
		}
		if _, err := w.Write(bufs[iNext][:rem-left]); err != nil {
			return writeErr(name, err)
		}
		return nil
	}
	if i+1 == nBufs {
		// The input ended after nElide but before the rounded-up count; the
		// writable prefix sits at the front of the first block.
		if x := nr - (blockSize - rem); x > 0 {
			if _, err := w.Write(bufs[iNext][:x]); err != nil {
				return writeErr(name, err)
			}
		}
	}
	return nil
}
