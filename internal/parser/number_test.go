package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNumber_SpacesAndDot(t *testing.T) {
	d, err := NormalizeNumber("1 250.50")
	require.NoError(t, err)
	assert.Equal(t, "1250.50", d.StringFixed(2))
}

func TestNormalizeNumber_SpacesAndComma(t *testing.T) {
	d, err := NormalizeNumber("3 500,00")
	require.NoError(t, err)
	assert.Equal(t, "3500.00", d.StringFixed(2))
}

func TestNormalizeNumber_CommaDecimal(t *testing.T) {
	d, err := NormalizeNumber("1250,50")
	require.NoError(t, err)
	assert.Equal(t, "1250.50", d.StringFixed(2))
}

func TestNormalizeNumber_PlainInteger(t *testing.T) {
	d, err := NormalizeNumber("1000")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", d.StringFixed(2))
}

func TestNormalizeNumber_Invalid(t *testing.T) {
	_, err := NormalizeNumber("12.34.56")
	require.Error(t, err)

	var nfe *NumberFormatError
	require.True(t, errors.As(err, &nfe))
	assert.Equal(t, "12.34.56", nfe.Token)
	assert.Contains(t, err.Error(), "12.34.56")
}
