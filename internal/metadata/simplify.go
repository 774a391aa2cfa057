package metadata

import (
	"regexp"
	"strings"
)

// Matches from the first whitespace-prefixed "(" or "[" to the last ")" or "]".
// "f(x)" is left alone because nothing separates the opener from the word.
var qualifierPattern = regexp.MustCompile(`\s[\(\[].*[\)\]]`)

// Simplify strips parenthesized or bracketed qualifiers such as "(Single)"
// or "[Remastered]" and trims the result. Applying it to its own output
// returns the same string.
func Simplify(s string) string {
	return strings.TrimSpace(qualifierPattern.ReplaceAllString(s, ""))
}

// simplifyRecord returns a copy of rec with simplified title and artist and
// reports whether either of them changed.
func simplifyRecord(rec Record) (Record, bool) {
	title := deref(rec.Title)
	artist := deref(rec.Artist)

	simpleTitle := Simplify(title)
	simpleArtist := Simplify(artist)

	if simpleTitle == title && simpleArtist == artist {
		return rec, false
	}

	out := rec
	out.Title = Ptr(simpleTitle)
	out.Artist = Ptr(simpleArtist)
	return out, true
}
