// Package model defines the records that flow through the facility lookup:
// employees, facilities, provider distances, rankings and report rows.
package model

import "strings"

// Employee is one row of the employee source.
type Employee struct {
	Name string `json:"name"`
	Zip  string `json:"zip"`
	Row  int    `json:"row"` // 1-based row in the source file, header included
}

// NormalizeZip trims a postal code and strips any fractional suffix left
// behind by spreadsheet tools ("10001.0" becomes "10001"). Leading zeros are
// kept; the value is never treated as a number.
func NormalizeZip(raw string) string {
	z := strings.TrimSpace(raw)
	if i := strings.IndexByte(z, '.'); i >= 0 {
		z = z[:i]
	}
	return z
}
