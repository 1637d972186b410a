package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumber_Format_Integer(t *testing.T) {
	require.Equal(t, "0", NewNumber(0).Format())
	require.Equal(t, "5", NewNumber(5).Format())
	require.Equal(t, "-3", NewNumber(-3).Format())
}

func TestNumber_Format_Fraction(t *testing.T) {
	require.Equal(t, "1.5", NewNumber(1.5).Format())
	require.Equal(t, "0.3333333333", NewNumber(1.0/3.0).Format())
}

func TestNumber_Format_TrailingZerosStripped(t *testing.T) {
	require.Equal(t, "1.1", NewNumber(1.1).Format())
}

func TestNumber_Format_CustomPrecision(t *testing.T) {
	n := NewNumberWithPrecision(1.005, 2)
	require.Equal(t, "1", NewNumberWithPrecision(1.0, 2).Format())
	require.Contains(t, n.Format(), ".")
}

func TestNumber_MarshalJSON_NotQuoted(t *testing.T) {
	b, err := NewNumber(2.5).MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "2.5", string(b))

	b, err = NewNumber(4).MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "4", string(b))
}
