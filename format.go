package aether

import "strconv"

// FormatNumber renders an evaluation result the way the REPL prints it: the
// shortest decimal that round-trips, so 5.0 prints as "5" and non-finite
// results print as "+Inf", "-Inf" or "NaN".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
