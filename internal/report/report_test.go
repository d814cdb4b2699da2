// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Render_AlignsColumnsByWidth(t *testing.T) {
	tbl := NewTable(
		Column{Header: "DEVICE"},
		Column{Header: "STATUS"},
	)
	tbl.AddRow("router-a", "OK")
	tbl.AddRow("router-with-a-long-name", "ERROR")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "DEVICE")
	assert.Contains(t, out, "router-a")
	assert.Contains(t, out, "router-with-a-long-name")
}

func TestTable_Render_EmptyColumnsIsNoOp(t *testing.T) {
	tbl := NewTable()
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Empty(t, buf.String())
}

func TestTable_AddRow_PadsMissingValuesAndIgnoresExtras(t *testing.T) {
	tbl := NewTable(Column{Header: "A"}, Column{Header: "B"})
	tbl.AddRow("only-a")
	tbl.AddRow("a", "b", "extra-ignored")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "only-a")
	assert.NotContains(t, buf.String(), "extra-ignored")
}

func TestColorStatus_KnownStatuses(t *testing.T) {
	assert.Contains(t, ColorStatus("ERROR"), "ERROR")
	assert.Contains(t, ColorStatus("OK"), "OK")
	assert.Contains(t, ColorStatus("IGNORE"), "IGNORE")
	assert.Equal(t, "UNKNOWN", ColorStatus("UNKNOWN"))
}

func TestFormatErrorReport_NoErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatErrorReport(&buf, nil))
	assert.Contains(t, buf.String(), "none")
}

func TestFormatErrorReport_SortsDevicesAndMessages(t *testing.T) {
	errs := map[string]map[string]bool{
		"router-b": {"timeout": true},
		"router-a": {"refused": true, "timeout": true},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatErrorReport(&buf, errs))

	out := buf.String()
	aIdx := strings.Index(out, "router-a")
	bIdx := strings.Index(out, "router-b")
	require.NotEqual(t, -1, aIdx)
	require.NotEqual(t, -1, bIdx)
	assert.Less(t, aIdx, bIdx, "router-a should be listed before router-b")
}
