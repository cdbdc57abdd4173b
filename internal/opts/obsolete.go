package opts

import (
	"fmt"
	"strings"
)

// RewriteObsolete converts the historical first-argument syntax — a dash,
// digits, and trailing option letters ("-10", "-5ck", "-20lqv") — into the
// modern flag form. args excludes the program name. When the first argument
// is not in the obsolete form, args is returned unchanged.
func RewriteObsolete(args []string) ([]string, error) {
	if len(args) == 0 {
		return args, nil
	}
	a := args[0]
	if len(a) < 2 || a[0] != '-' || !isDigit(a[1]) {
		return args, nil
	}

	i := 1
	for i < len(a) && isDigit(a[i]) {
		i++
	}
	digits := a[1:i]

	lines := true
	var multiplier byte
	quiet, verbose := false, false
	for ; i < len(a); i++ {
		switch a[i] {
		case 'c':
			lines = false
			multiplier = 0
		case 'b', 'k', 'm':
			lines = false
			multiplier = a[i]
		case 'l':
			lines = true
		case 'q':
			quiet = true
		case 'v':
			verbose = true
		default:
			return nil, fmt.Errorf("unrecognized option `-%c'", a[i])
		}
	}

	var b strings.Builder
	b.WriteString(digits)
	if multiplier != 0 {
		b.WriteByte(multiplier)
	}
	flag := "-n"
	if !lines {
		flag = "-c"
	}

	out := []string{flag, b.String()}
	if quiet {
		out = append(out, "-q")
	}
	if verbose {
		out = append(out, "-v")
	}
	return append(out, args[1:]...), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
