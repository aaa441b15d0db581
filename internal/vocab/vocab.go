// Package vocab classifies free-text facility tokens into the controlled
// amenity vocabularies.
package vocab

import (
	"strings"
	"unicode"
)

var general = setOf(
	"outdoor pool", "indoor pool", "business center", "childcare",
	"wifi", "dry cleaning", "breakfast",
)

var room = setOf(
	"aircon", "tv", "coffee machine", "kettle", "hair dryer", "iron", "bathtub",
)

func setOf(vals ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// SplitCompound normalizes a compound-word token ("DryCleaning") by inserting
// a word boundary before each non-leading capital and lowercasing.
func SplitCompound(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// FoldCase normalizes an already space-delimited token.
func FoldCase(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Classify tests a normalized token against both vocabularies independently.
// The sets are disjoint today, but a token landing in both is reported in
// both rather than masked.
func Classify(token string) (isGeneral, isRoom bool) {
	_, isGeneral = general[token]
	_, isRoom = room[token]
	return
}

// Bucket runs each token through normalize and appends vocabulary matches to
// the general and room sets, preserving first-seen order and dropping
// duplicates. Tokens matching neither vocabulary are dropped silently.
func Bucket(tokens []string, normalize func(string) string) (generalOut, roomOut []string) {
	generalOut, roomOut = []string{}, []string{}
	seenG, seenR := map[string]struct{}{}, map[string]struct{}{}
	for _, t := range tokens {
		n := normalize(t)
		g, r := Classify(n)
		if g {
			if _, dup := seenG[n]; !dup {
				seenG[n] = struct{}{}
				generalOut = append(generalOut, n)
			}
		}
		if r {
			if _, dup := seenR[n]; !dup {
				seenR[n] = struct{}{}
				roomOut = append(roomOut, n)
			}
		}
	}
	return generalOut, roomOut
}
