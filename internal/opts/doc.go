// Package opts implements snip's count grammar and legacy option handling.
//
// Counts are decimal digits with an optional single multiplier suffix:
// b (512), k (1024), m (1048576). A leading '-' selects elide-from-end mode.
// The package also rewrites the obsolete combined syntax ("snip -10cqv file")
// into modern flags before the flag parser sees the arguments.
package opts
