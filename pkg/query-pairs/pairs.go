package querypairs

import (
	"fmt"
	"net/url"
	"strings"
)

// Pair is one key=value pair of a query string.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered list of query pairs; unlike url.Values it keeps
// the order the pairs were sent in.
type Pairs []Pair

// Parse splits a raw query string in application/x-www-form-urlencoded form.
// Empty segments are skipped, and a segment without "=" is a key with an empty value.
// Any pair whose key or value cannot be unescaped fails the whole query.
func Parse(rawQuery string) (Pairs, error) {
	pairs := make(Pairs, 0)
	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		pair, err := unescapePair(key, value)
		if err != nil {
			return nil, fmt.Errorf("invalid query pair %q: %w", segment, err)
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// ParseLenient is like Parse, but skips segments without "=" and
// segments that cannot be unescaped instead of failing.
func ParseLenient(rawQuery string) Pairs {
	pairs := make(Pairs, 0)
	for _, segment := range strings.Split(rawQuery, "&") {
		key, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		if pair, err := unescapePair(key, value); err == nil {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

func unescapePair(key, value string) (Pair, error) {
	k, err := url.QueryUnescape(key)
	if err != nil {
		return Pair{}, err
	}
	v, err := url.QueryUnescape(value)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Key: k, Value: v}, nil
}
