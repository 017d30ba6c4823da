package maincmd

import "strconv"

// formatNumberLiteral renders a scanned NUMBER token's decoded value in its
// shortest round-tripping form, used by the tokenize subcommand's LITERAL
// column.
func formatNumberLiteral(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
