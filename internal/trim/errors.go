package trim

import "fmt"

// Kind classifies engine failures.
type Kind int

// Failure kinds
const (
	KindRead     Kind = iota // reading the source failed
	KindWrite                // writing the sink failed or wrote short
	KindSeek                 // seek/tell on a claimed-seekable source failed
	KindShrink               // source produced fewer bytes than it measured
	KindOverflow             // elision count cannot be buffered in memory
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindSeek:
		return "seek"
	case KindShrink:
		return "shrink"
	case KindOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Error is a classified engine failure tied to one source.
type Error struct {
	Kind Kind
	Name string // source display name
	Err  error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindRead:
		return fmt.Sprintf("error reading %q: %v", e.Name, e.Err)
	case KindWrite:
		if e.Err != nil {
			return fmt.Sprintf("%q: write error: %v", e.Name, e.Err)
		}
		return fmt.Sprintf("%q: write error", e.Name)
	case KindSeek:
		return fmt.Sprintf("cannot seek %q: %v", e.Name, e.Err)
	case KindShrink:
		return fmt.Sprintf("%q: file has shrunk too much", e.Name)
	case KindOverflow:
		return fmt.Sprintf("%q: number of bytes is too large", e.Name)
	default:
		return fmt.Sprintf("%q: %v", e.Name, e.Err)
	}
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

func readErr(name string, err error) error  { return &Error{Kind: KindRead, Name: name, Err: err} }
func writeErr(name string, err error) error { return &Error{Kind: KindWrite, Name: name, Err: err} }
func seekErr(name string, err error) error  { return &Error{Kind: KindSeek, Name: name, Err: err} }
func shrinkErr(name string) error           { return &Error{Kind: KindShrink, Name: name} }
func overflowErr(name string) error         { return &Error{Kind: KindOverflow, Name: name} }
