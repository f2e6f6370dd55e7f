package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSizes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []int
	}{
		{"1,2,3", []int{1, 2, 3}},
		{"1-5", []int{1, 2, 3, 4, 5}},
		{"2, 3 ,5", []int{2, 3, 5}},
		{"1-3,120,128", []int{1, 2, 3, 120, 128}},
		{"7", []int{7}},
		{"", []int{}},
	}

	for _, tc := range cases {
		got, err := parseSizes(tc.in)
		if err != nil {
			t.Errorf("parseSizes(%q) error: %v", tc.in, err)
			continue
		}

		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("parseSizes(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseSizesRejectsBadInput(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"abc", "0", "-3", "5-2", "1-", "-", "1..4", "3,x"} {
		if got, err := parseSizes(in); err == nil {
			t.Errorf("parseSizes(%q) = %v, want error", in, got)
		}
	}
}
