package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

var numberSuffix = regexp.MustCompile(`(\d+)$`)

// NextNumber derives the next human-readable document number for a prefix
// ("JC-", "QT-", "INV-") from the most recently issued number. The trailing
// numeric suffix is parsed, incremented and re-zero-padded to 4 digits;
// with no prior number (or an unparseable one) the sequence starts at 0001.
// Sequences past 9999 simply grow to 5+ digits.
func NextNumber(prefix, last string) string {
	seq := 0
	if m := numberSuffix.FindStringSubmatch(last); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			seq = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1)
}
