package rfc9111

import (
	"fmt"
	"strconv"
)

// §  1.2.  Syntax Notation
// §
// §     This specification uses the Augmented Backus-Naur Form (ABNF)
// §     notation of [RFC5234], extended with the notation for case-
// §     sensitivity in strings defined in [RFC7405].

// §  1.2.2. Delta Seconds
// §
// §  The delta-seconds rule specifies a non-negative integer, representing time
// §  in seconds.
// §
// §      delta-seconds  = 1*DIGIT
// §
// §  A recipient parsing a delta-seconds value and converting it to binary form
// §  ought to use an arithmetic type of at least 31 bits of non-negative integer
// §  range. If a cache receives a delta-seconds value greater than the greatest
// §  integer it can represent, or if any of its subsequent calculations overflows,
// §  the cache MUST consider the value to be 2147483648 (231) or the greatest
// §  positive integer it can conveniently represent.
//
// ParseDeltaSeconds parses a delta-seconds value to be sent.
// Anything but digits is an error, as is a value that does not fit in 64 bits.
func ParseDeltaSeconds(secondsStr string) (uint64, error) {
	if secondsStr == "" {
		return 0, fmt.Errorf("delta-seconds is empty")
	}
	seconds, err := strconv.ParseUint(secondsStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid delta-seconds %q: %w", secondsStr, err)
	}
	return seconds, nil
}

func toDeltaSeconds(seconds uint64) string {
	return strconv.FormatUint(seconds, 10)
}
