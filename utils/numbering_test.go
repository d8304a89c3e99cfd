package utils

import "testing"

func TestNextNumber(t *testing.T) {
	cases := []struct {
		prefix string
		last   string
		want   string
	}{
		{"JC-", "", "JC-0001"},         // no prior record
		{"JC-", "JC-0001", "JC-0002"},  // simple increment
		{"JC-", "JC-0042", "JC-0043"},  // keeps padding
		{"JC-", "JC-0999", "JC-1000"},  // rolls through padding boundary
		{"JC-", "JC-9999", "JC-10000"}, // grows past 4 digits
		{"QT-", "QT-0007", "QT-0008"},  // other prefixes share the scheme
		{"INV-", "INV-0123", "INV-0124"},
		{"JC-", "garbage", "JC-0001"},  // unparseable -> restart
		{"JC-", "JC-", "JC-0001"},      // prefix only, no suffix
		{"JC-", "MIXED-17", "JC-0018"}, // only the trailing digits matter
	}

	for _, tc := range cases {
		if got := NextNumber(tc.prefix, tc.last); got != tc.want {
			t.Errorf("NextNumber(%q, %q) = %q, want %q", tc.prefix, tc.last, got, tc.want)
		}
	}
}
