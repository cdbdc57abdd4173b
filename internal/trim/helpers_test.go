package trim

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
)

// chunkReader is a forward-only source that returns at most chunk bytes per
// read, mimicking pipe behavior.
type chunkReader struct {
	data  []byte
	pos   int
	chunk int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}
	n := c.chunk
	if n > len(p) {
		n = len(p)
	}
	if n > len(c.data)-c.pos {
		n = len(c.data) - c.pos
	}
	copy(p, c.data[c.pos:c.pos+n])
	c.pos += n
	return n, nil
}

// brokenSeeker claims seekability but every seek fails.
type brokenSeeker struct {
	r io.Reader
}

func (b *brokenSeeker) Read(p []byte) (int, error) { return b.r.Read(p) }
func (b *brokenSeeker) Seek(int64, int) (int64, error) {
	return 0, errors.New("seek not supported")
}

// shrinkSource reports a longer length than it can deliver.
type shrinkSource struct {
	r   *bytes.Reader
	lie int64
}

func (s *shrinkSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *shrinkSource) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekEnd && offset == 0 {
		if _, err := s.r.Seek(0, io.SeekEnd); err != nil {
			return 0, err
		}
		return s.lie, nil
	}
	return s.r.Seek(offset, whence)
}

// failWriter fails after accepting limit bytes.
type failWriter struct {
	limit int
	wrote int
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.wrote+len(p) > f.limit {
		n := f.limit - f.wrote
		f.wrote = f.limit
		return n, errors.New("sink full")
	}
	f.wrote += len(p)
	return len(p), nil
}

// errReader fails after its data is exhausted instead of reporting EOF.
type errReader struct {
	data []byte
	pos  int
}

func (e *errReader) Read(p []byte) (int, error) {
	if e.pos >= len(e.data) {
		return 0, errors.New("device gone")
	}
	n := copy(p, e.data[e.pos:])
	e.pos += n
	return n, nil
}

func randomData(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, n)
	for i := range data {
		// mostly text with a sprinkling of newlines
		if rng.Intn(10) == 0 {
			data[i] = '\n'
		} else {
			data[i] = byte('a' + rng.Intn(26))
		}
	}
	return data
}

func wantBytePrefix(data []byte, n uint64) []byte {
	if uint64(len(data)) <= n {
		return nil
	}
	return data[:uint64(len(data))-n]
}

func wantLinePrefix(data []byte, n uint64) []byte {
	if n == 0 {
		return data
	}
	newlines := 0
	for _, b := range data {
		if b == '\n' {
			newlines++
		}
	}
	total := uint64(newlines)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		total++
	}
	if total <= n {
		return nil
	}
	keep := total - n
	cut := 0
	for i, b := range data {
		if b == '\n' {
			keep--
			if keep == 0 {
				cut = i + 1
				break
			}
		}
	}
	return data[:cut]
}
