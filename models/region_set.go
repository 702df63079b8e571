// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DefaultRegions is the region whitelist used when no configuration source
// provides one.
const DefaultRegions = "N,S,E,O"

var (
	// ErrEmptyRegionSet is returned when a region list contains no entries.
	ErrEmptyRegionSet = errors.New("region set is empty")
	// ErrInvalidRegion is returned when a region entry is not exactly one
	// non-space character.
	ErrInvalidRegion = errors.New("region must be a single character")
)

// RegionSet is the immutable whitelist of single-character region codes
// that may prefix a branch code.
//
// A RegionSet is built once at startup and shared read-only afterwards, so
// it is safe for concurrent use. The zero value is an empty set that
// contains nothing.
type RegionSet struct {
	letters []rune
}

// DefaultRegionSet returns the whitelist parsed from DefaultRegions.
func DefaultRegionSet() RegionSet {
	s, err := ParseRegionSet(DefaultRegions)
	if err != nil {
		panic(err)
	}
	return s
}

// NewRegionSet builds a RegionSet from the given letters, keeping the first
// occurrence order and dropping duplicates.
func NewRegionSet(letters ...rune) (RegionSet, error) {
	if len(letters) == 0 {
		return RegionSet{}, ErrEmptyRegionSet
	}

	unique := make([]rune, 0, len(letters))
	seen := make(map[rune]struct{}, len(letters))
	for _, l := range letters {
		if unicode.IsSpace(l) || l == ',' || l == unicode.ReplacementChar {
			return RegionSet{}, fmt.Errorf("%w: %q", ErrInvalidRegion, l)
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		unique = append(unique, l)
	}

	return RegionSet{letters: unique}, nil
}

// ParseRegionSet parses a comma-separated region list such as "N,S,E,O".
// Whitespace around entries is ignored; every entry must be exactly one
// character.
func ParseRegionSet(raw string) (RegionSet, error) {
	if strings.TrimSpace(raw) == "" {
		return RegionSet{}, ErrEmptyRegionSet
	}

	parts := strings.Split(raw, ",")
	letters := make([]rune, 0, len(parts))
	for _, part := range parts {
		entry := []rune(strings.TrimSpace(part))
		if len(entry) != 1 {
			return RegionSet{}, fmt.Errorf("%w: %q", ErrInvalidRegion, part)
		}
		letters = append(letters, entry[0])
	}

	return NewRegionSet(letters...)
}

// Contains reports whether r is an allowed region code. Matching is
// case-sensitive.
func (s RegionSet) Contains(r rune) bool {
	for _, l := range s.letters {
		if l == r {
			return true
		}
	}
	return false
}

// Len returns the number of regions in the set.
func (s RegionSet) Len() int {
	return len(s.letters)
}

// String returns the comma-joined region list, e.g. "N,S,E,O".
func (s RegionSet) String() string {
	parts := make([]string, len(s.letters))
	for i, l := range s.letters {
		parts[i] = string(l)
	}
	return strings.Join(parts, ",")
}

// MarshalJSON encodes the set as an array of one-character strings.
func (s RegionSet) MarshalJSON() ([]byte, error) {
	parts := make([]string, len(s.letters))
	for i, l := range s.letters {
		parts[i] = string(l)
	}
	return json.Marshal(parts)
}

// UnmarshalJSON decodes an array of one-character strings.
func (s *RegionSet) UnmarshalJSON(b []byte) error {
	var parts []string
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}

	parsed, err := ParseRegionSet(strings.Join(parts, ","))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
