package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelerator/Sazgar/pkg/sizeunit"
)

func TestArgsValidate(t *testing.T) {
	accepted := []string{"unit", "pid"}
	assert.NoError(t, Args{}.Validate(accepted))
	assert.NoError(t, Args{"unit": "MB", "pid": "1"}.Validate(accepted))

	err := Args{"units": "MB"}.Validate(accepted)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = Args{"filter": "tcp"}.Validate(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArgsUnit(t *testing.T) {
	u, err := Args{}.Unit("unit", sizeunit.GB)
	require.NoError(t, err)
	assert.Equal(t, sizeunit.GB, u)

	u, err = Args{"unit": "kib"}.Unit("unit", sizeunit.GB)
	require.NoError(t, err)
	assert.Equal(t, sizeunit.KiB, u)

	_, err = Args{"unit": "XB"}.Unit("unit", sizeunit.GB)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArgsInt32(t *testing.T) {
	v, err := Args{}.Int32("pid", 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)

	v, err = Args{"pid": "1234"}.Int32("pid", 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1234), v)

	_, err = Args{"pid": "abc"}.Int32("pid", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Args{"pid": "-7"}.Int32("pid", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArgsString(t *testing.T) {
	assert.Equal(t, "", Args{}.String("filter"))
	assert.Equal(t, "tcp", Args{"filter": "tcp"}.String("filter"))
}
