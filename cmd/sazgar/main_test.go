package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelerator/Sazgar/pkg/sazgar"
	"github.com/Angelerator/Sazgar/pkg/table"
)

func TestListFunctions(t *testing.T) {
	runner, err := sazgar.New(context.Background(), sazgar.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	listFunctions(&buf, runner)

	out := buf.String()
	assert.Contains(t, out, "sazgar_memory (args: unit)")
	assert.Contains(t, out, "sazgar_processes (args: unit, pid)")
	assert.Contains(t, out, "sazgar_version\n")
	assert.Contains(t, out, "    total_memory DOUBLE")
}

func TestParseArgs(t *testing.T) {
	args, err := parseArgs([]string{"unit=GiB", "pid=42"})
	require.NoError(t, err)
	assert.Equal(t, table.Args{"unit": "GiB", "pid": "42"}, args)

	args, err = parseArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, args)

	_, err = parseArgs([]string{"unit"})
	assert.ErrorContains(t, err, "not a key=value pair")

	_, err = parseArgs([]string{"=GiB"})
	assert.ErrorContains(t, err, "not a key=value pair")
}
