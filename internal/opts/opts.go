package opts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Multiplier suffixes accepted after a count.
const (
	blockMultiplier = 512
	kibiMultiplier  = 1024
	mebiMultiplier  = 1024 * 1024
)

// ParseCount converts a count argument into a value and an elide flag.
// A leading '-' means "all but the last N units". lines picks the
// diagnostic wording.
func ParseCount(s string, lines bool) (n uint64, elide bool, err error) {
	unit := "number of bytes"
	if lines {
		unit = "number of lines"
	}

	if strings.HasPrefix(s, "-") {
		elide = true
		s = s[1:]
	}
	if s == "" {
		return 0, false, fmt.Errorf("%s: invalid %s", s, unit)
	}

	mult := uint64(1)
	switch s[len(s)-1] {
	case 'b':
		mult = blockMultiplier
		s = s[:len(s)-1]
	case 'k':
		mult = kibiMultiplier
		s = s[:len(s)-1]
	case 'm':
		mult = mebiMultiplier
		s = s[:len(s)-1]
	}

	n, perr := strconv.ParseUint(s, 10, 64)
	if perr != nil {
		if errIsRange(perr) {
			return 0, false, fmt.Errorf("%s: %s is so large that it is not representable", s, unit)
		}
		return 0, false, fmt.Errorf("%s: invalid %s", s, unit)
	}
	if mult != 1 && n > math.MaxUint64/mult {
		return 0, false, fmt.Errorf("%s: %s is so large that it is not representable", s, unit)
	}
	return n * mult, elide, nil
}

func errIsRange(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// UnitFromArgs reports which of the byte/line count flags appears last on
// the command line; when both -n and -c are given, the later one wins. ok is
// false when neither appears.
func UnitFromArgs(args []string) (isBytes, ok bool) {
	for _, a := range args {
		if a == "--" {
			break
		}
		switch {
		case strings.HasPrefix(a, "--lines"):
			isBytes, ok = false, true
		case strings.HasPrefix(a, "--bytes"):
			isBytes, ok = true, true
		case strings.HasPrefix(a, "-") && !strings.HasPrefix(a, "--"):
			// Shorthand group: n or c consumes the rest of the group as its
			// value, so the first of the two in a group is the real flag.
			for _, ch := range a[1:] {
				if ch == 'n' {
					isBytes, ok = false, true
					break
				}
				if ch == 'c' {
					isBytes, ok = true, true
					break
				}
				if ch != 'q' && ch != 'v' {
					break // start of some other flag's value
				}
			}
		}
	}
	return isBytes, ok
}
