// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"sort"
)

// FormatErrorReport renders one driver run's per-device error messages
// (spec.md §4.6's "error report grouped by device") as a colored table:
// one row per (device, message) pair, sorted for reproducibility.
func FormatErrorReport(w io.Writer, errs map[string]map[string]bool) error {
	if _, err := fmt.Fprintln(w, SectionTitle("Errors")); err != nil {
		return err
	}
	if len(errs) == 0 {
		_, err := fmt.Fprintln(w, "  none")
		return err
	}

	devices := make([]string, 0, len(errs))
	for d := range errs {
		devices = append(devices, d)
	}
	sort.Strings(devices)

	table := NewTable(
		Column{Header: "DEVICE"},
		Column{Header: "STATUS", Color: ColorStatus},
		Column{Header: "MESSAGE"},
	)
	for _, device := range devices {
		msgs := make([]string, 0, len(errs[device]))
		for m := range errs[device] {
			msgs = append(msgs, m)
		}
		sort.Strings(msgs)
		for _, m := range msgs {
			table.AddRow(device, "ERROR", m)
		}
	}
	return table.Render(w)
}
