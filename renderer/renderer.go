// Package renderer turns fixedincome report structs into markdown strings.
// Rendering is presentation only: entry order comes from the engine and is
// preserved as the table row order.
package renderer

import (
	"fmt"
	"strconv"
)

func formatOptional(v *float64, unit string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%s", *v, unit)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
