package trim

import (
	"bytes"
	"io"

	"github.com/rzbill/snip/pkg/log"
)

// headBytes copies the first n bytes of src to w. Plain forward streaming;
// a short input just ends early.
func (e *Engine) headBytes(w io.Writer, src io.Reader, name string, n uint64) error {
	buf := make([]byte, e.blockSize)
	for n > 0 {
		chunk := buf
		if n < uint64(len(buf)) {
			chunk = buf[:n]
		}
		nr, err := src.Read(chunk)
		if nr > 0 {
			if _, werr := w.Write(chunk[:nr]); werr != nil {
				return writeErr(name, werr)
			}
			n -= uint64(nr)
		}
		if err == io.EOF || (err == nil && nr == 0) {
			break
		}
		if err != nil {
			return readErr(name, err)
		}
	}
	return nil
}

// headLines copies the first n lines of src to w. Bytes read past the nth
// newline are pushed back with a relative seek when the source supports it,
// so a following reader resumes exactly after the emitted prefix.
func (e *Engine) headLines(w io.Writer, src io.Reader, name string, n uint64) error {
	if n == 0 {
		return nil
	}
	buf := make([]byte, e.blockSize)
	for {
		nr, err := src.Read(buf)
		if nr > 0 {
			toWrite := 0
			for toWrite < nr && n > 0 {
				idx := bytes.IndexByte(buf[toWrite:nr], '\n')
				if idx < 0 {
					toWrite = nr
					break
				}
				toWrite += idx + 1
				n--
			}
			if n == 0 {
				if past := nr - toWrite; past > 0 {
					e.seekBack(src, name, int64(past))
				}
			}
			if _, werr := w.Write(buf[:toWrite]); werr != nil {
				return writeErr(name, werr)
			}
			if n == 0 {
				return nil
			}
		}
		if err == io.EOF || (err == nil && nr == 0) {
			return nil
		}
		if err != nil {
			return readErr(name, err)
		}
	}
}

// seekBack rewinds src by back bytes, best effort. Non-seekable sources
// simply lose the overread, same as any forward-only consumer.
func (e *Engine) seekBack(src io.Reader, name string, back int64) {
	s, ok := src.(io.Seeker)
	if !ok {
		return
	}
	if _, err := s.Seek(-back, io.SeekCurrent); err != nil {
		e.logger.Debug("cannot reposition file pointer",
			log.Str("file", name), log.Err(err))
	}
}
