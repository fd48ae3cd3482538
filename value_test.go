// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package bigjson_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bigjson "github.com/jsy-0526/big-json-handler"
)

func TestStringText(t *testing.T) {
	r := bigjson.NewReader([]byte(`"a\nb"`))
	v := r.Scan()
	require.Equal(t, bigjson.String, v.Kind)

	s, err := r.StringText(v)
	require.NoError(t, err)
	assert.Equal(t, `a\nb`, s) // escapes preserved verbatim, quotes stripped
}

func TestFloat64(t *testing.T) {
	r := bigjson.NewReader([]byte(`1.23e-4`))
	v := r.Scan()
	require.Equal(t, bigjson.Number, v.Kind)

	f, err := r.Float64(v)
	require.NoError(t, err)
	assert.Equal(t, 1.23e-4, f)
}

func TestFloat64Malformed(t *testing.T) {
	r := bigjson.NewReader([]byte(`1.2.3`))
	v := r.Scan()
	require.Equal(t, bigjson.Number, v.Kind)
	assert.Equal(t, "1.2.3", string(r.Text(v)))

	// A run the scanner accepted but ParseFloat rejects projects as NaN,
	// not as an error.
	f, err := r.Float64(v)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f))
	assert.NoError(t, r.Err())
}

func TestBool(t *testing.T) {
	r := bigjson.NewReader([]byte(`[true, false]`))
	r.Scan()

	b, err := r.Bool(r.Scan())
	require.NoError(t, err)
	assert.True(t, b)

	b, err = r.Bool(r.Scan())
	require.NoError(t, err)
	assert.False(t, b)
}

func TestIsNull(t *testing.T) {
	r := bigjson.NewReader([]byte(`[null, 0, "null"]`))
	r.Scan()
	assert.True(t, bigjson.IsNull(r.Scan()))
	assert.False(t, bigjson.IsNull(r.Scan()))
	assert.False(t, bigjson.IsNull(r.Scan()))
}

func TestTypeMismatch(t *testing.T) {
	r := bigjson.NewReader([]byte(`["text", 5]`))
	r.Scan()
	v := r.Scan()
	require.Equal(t, bigjson.String, v.Kind)

	_, err := r.Float64(v)
	require.Error(t, err)
	var derr *bigjson.DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, bigjson.ErrTypeMismatch, derr.Code)

	_, err = r.Bool(v)
	require.Error(t, err)

	// A mismatch is not sticky: the Reader keeps scanning normally.
	assert.NoError(t, r.Err())
	n := r.Scan()
	require.Equal(t, bigjson.Number, n.Kind)
	f, err := r.Float64(n)
	require.NoError(t, err)
	assert.Equal(t, 5.0, f)

	_, err = r.StringText(n)
	require.Error(t, err)
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, bigjson.ErrTypeMismatch, derr.Code)
}
