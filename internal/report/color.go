// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/fatih/color"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// ColorStatus colors a domain.Status string (OK/ERROR/IGNORE/PENDING).
func ColorStatus(val string) string {
	switch val {
	case "ERROR":
		return colorRed.Sprint(val)
	case "IGNORE", "PENDING":
		return colorYellow.Sprint(val)
	case "OK":
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// colorCount colors a device or error count: 0 is green, >0 is yellow.
func colorCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return colorGreen.Sprint(s)
	}
	return colorYellow.Sprint(s)
}
