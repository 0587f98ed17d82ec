package sazgar

import (
	"bytes"
	"strings"
	"testing"

	jsonx "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelerator/Sazgar/pkg/table"
)

func sampleResult() *Result {
	return &Result{
		Columns: []table.Column{
			{Name: "name", Type: table.TypeVarchar},
			{Name: "total", Type: table.TypeFloat64},
			{Name: "count", Type: table.TypeInt32},
		},
		Rows: []table.Row{
			{"sda", 500.5, int32(3)},
			{"sdb", 0.25, int32(0)},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "json", "csv"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,total,count", lines[0])
	assert.Equal(t, "sda,500.5,3", lines[1])
	assert.Equal(t, "sdb,0.25,0", lines[2])
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), FormatJSON))

	var decoded []map[string]any
	require.NoError(t, jsonx.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "sda", decoded[0]["name"])
	assert.Equal(t, 500.5, decoded[0]["total"])
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), FormatTable))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[0], "total")
	assert.Contains(t, lines[1], "sda")
	assert.Contains(t, lines[1], "500.5")
}

func TestRenderEmptyResult(t *testing.T) {
	empty := &Result{Columns: sampleResult().Columns}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, empty, FormatJSON))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))

	buf.Reset()
	require.NoError(t, Render(&buf, empty, FormatCSV))
	assert.Equal(t, "name,total,count", strings.TrimSpace(buf.String()))
}
