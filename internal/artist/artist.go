// Package artist normalizes free-text artist strings into ordered
// lists of individual names.
package artist

import "strings"

// Separator is the primary separator between names in raw text.
const Separator = ","

// JoinSeparator is the delimiter used for the joined display form.
const JoinSeparator = " / "

// alternates folds the alternate separator characters into the primary
// one before splitting. Legacy tags frequently hold "A/B" or "A; B" as
// a single entry.
var alternates = strings.NewReplacer(";", Separator, "/", Separator)

// Normalize splits each raw value on comma, semicolon and slash, trims
// whitespace and drops empty pieces. Survivors keep first-seen order
// across all inputs. Repeated names are preserved.
func Normalize(values []string) []string {
	var names []string
	for _, raw := range values {
		for _, piece := range strings.Split(alternates.Replace(raw), Separator) {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			names = append(names, piece)
		}
	}
	return names
}

// Join renders names as a single display string.
func Join(names []string) string {
	return strings.Join(names, JoinSeparator)
}
