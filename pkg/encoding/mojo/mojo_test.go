package mojo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXCHToMojo(t *testing.T) {
	// Integers and maximal precision parse exactly.
	values := map[string]uint64{
		"0":              0,
		"1":              1000000000000,
		"0.5":            500000000000,
		"0.000000000001": 1,
		"2.05":           2050000000000,
		"100000":         100000000000000000,
	}
	for in, expected := range values {
		n, err := XCHToMojo(in)
		assert.NoError(t, err)
		assert.Equal(t, expected, n)
	}

	// Trailing zeros beyond the precision are harmless.
	n, err := XCHToMojo("0.0000000000010000")
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)

	// A 13th significant fractional digit is an error.
	_, err = XCHToMojo("0.0000000000001")
	require.ErrorIs(t, err, ErrPrecision)

	// Malformed and negative input.
	for _, in := range []string{"90n1", "-1", "", "1.2.3"} {
		_, err = XCHToMojo(in)
		require.Error(t, err, in)
	}
}

func TestCATToMojo(t *testing.T) {
	n, err := CATToMojo("205")
	require.NoError(t, err)
	require.Equal(t, uint64(205000), n)

	n, err = CATToMojo("0.001")
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)

	_, err = CATToMojo("1.0001")
	require.ErrorIs(t, err, ErrPrecision)
}

func TestRoundTrip(t *testing.T) {
	// Mojo -> string -> mojo is an identity at both precisions.
	for _, m := range []uint64{0, 1, 999, 1000, 123456789, 1000000000000, 31415926535897} {
		n, err := XCHToMojo(MojoToXCH(m))
		require.NoError(t, err)
		require.Equal(t, m, n)

		n, err = CATToMojo(MojoToCAT(m))
		require.NoError(t, err)
		require.Equal(t, m, n)
	}
}

func TestMojoToXCH(t *testing.T) {
	assert.Equal(t, "1", MojoToXCH(1000000000000))
	assert.Equal(t, "0.000000000001", MojoToXCH(1))
	assert.Equal(t, "1.5", MojoToXCH(1500000000000))
	assert.Equal(t, "0", MojoToXCH(0))
	assert.Equal(t, "205.205", MojoToCAT(205205))
}
