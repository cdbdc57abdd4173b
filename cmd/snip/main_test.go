package main

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/rzbill/snip/internal/trim"
)

func countFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("snip", pflag.ContinueOnError)
	flags.StringP("lines", "n", "", "")
	flags.StringP("bytes", "c", "", "")
	if err := flags.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return flags
}

func TestResolveRequest(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want trim.Request
	}{
		{"default", nil, trim.Request{Unit: trim.Lines, Count: 10}},
		{"lines", []string{"-n", "3"}, trim.Request{Unit: trim.Lines, Count: 3}},
		{"bytes", []string{"-c", "8"}, trim.Request{Unit: trim.Bytes, Count: 8}},
		{"elide lines", []string{"-n", "-3"}, trim.Request{Unit: trim.Lines, Count: 3, Elide: true}},
		{"elide bytes", []string{"-c", "-8"}, trim.Request{Unit: trim.Bytes, Count: 8, Elide: true}},
		{"suffix", []string{"-c", "2k"}, trim.Request{Unit: trim.Bytes, Count: 2048}},
		{"bytes win when later", []string{"-n", "3", "-c", "8"}, trim.Request{Unit: trim.Bytes, Count: 8}},
		{"lines win when later", []string{"-c", "8", "-n", "3"}, trim.Request{Unit: trim.Lines, Count: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveRequest(countFlags(t, tt.args...), tt.args)
			if err != nil {
				t.Fatalf("resolveRequest: %v", err)
			}
			if got != tt.want {
				t.Fatalf("resolveRequest(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestResolveRequestInvalidCount(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "abc"},
		{"-c", "12parsecs"},
	} {
		if _, err := resolveRequest(countFlags(t, args...), args); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}
