package trim

import "io"

// readFull reads until buf is full or the source reports end-of-stream.
// A count shorter than len(buf) with a nil error means end-of-stream;
// a non-nil error is always a genuine read failure.
func readFull(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}

// copyExact copies exactly n bytes from src to w in blockSize chunks.
// Callers have already measured the source, so running out of input before
// n bytes is a shrink failure, not a normal EOF.
func copyExact(w io.Writer, src io.Reader, name string, n int64, blockSize int) error {
	buf := make([]byte, blockSize)
	for n > 0 {
		chunk := buf
		if n < int64(blockSize) {
			chunk = buf[:n]
		}
		nr, err := readFull(src, chunk)
		if nr > 0 {
			if _, werr := w.Write(chunk[:nr]); werr != nil {
				return writeErr(name, werr)
			}
			n -= int64(nr)
		}
		if err != nil {
			return readErr(name, err)
		}
		if nr < len(chunk) {
			return shrinkErr(name)
		}
	}
	return nil
}
