// Package classify sorts bone names into named groups.
// Membership is inferred from substrings in the bone name (JIGGLE, DRIVER,
// AIM, SOCKET, ...), so the result depends only on the names themselves.
package classify

import "strings"

// Markers removed before side/index suffixes
var baseMarkers = []string{"_JIGGLE", "_ROOT"}

// Side and index suffixes. Removal is sequential substring replacement, so
// "_L" goes before "_LW" gets a chance and digits vanish anywhere in the name.
var sideSuffixes = []string{"_L", "_R", "_LW", "_RW", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// family maps a substring to the canonical base name for a garment or hair chain
type family struct {
	Contains string
	Base     string
}

// Checked in order, first match wins
var families = []family{
	{Contains: "SHIRT", Base: "SHIRT"},
	{Contains: "PANT", Base: "PANTS"},
	{Contains: "SKIRT", Base: "SKIRT"},
	{Contains: "HAIR", Base: "HAIR"},
	{Contains: "CAPE", Base: "CAPE"},
}

// Normalize reduces a bone name to the base name used for jigglebone and
// driver groups. "SHIRT_JIGGLE_L1" and "SHIRT_JIGGLE_R3" both become "SHIRT".
//
// Normalize is not idempotent in general: removing one marker can splice
// the neighbouring characters into another ("A__LL" becomes "A_L", which
// becomes "A" on a second pass).
func Normalize(name string) string {
	name = strings.ToUpper(name)

	for _, marker := range baseMarkers {
		name = strings.ReplaceAll(name, marker, "")
	}
	for _, suffix := range sideSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}

	for _, f := range families {
		if strings.Contains(name, f.Contains) {
			return f.Base
		}
	}

	return strings.Trim(name, "_")
}
