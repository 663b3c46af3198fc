package thredds

import (
	"math"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeInBytes(t *testing.T) {
	tests := []struct {
		magnitude float64
		unit      string
		want      uint64
	}{
		{magnitude: 512, unit: "bytes", want: 512},
		{magnitude: 1.5, unit: "Kbytes", want: 1536},
		{magnitude: 10, unit: "Mbytes", want: 10 * 1048576},
		{magnitude: 2, unit: "Gbytes", want: 2 << 30},
		{magnitude: 1, unit: "Tbytes", want: 1 << 40},
		{magnitude: 10, unit: "mbytes", want: 10 * 1048576},
		{magnitude: 3, unit: "KB", want: 3072},
		{magnitude: 0, unit: "Mbytes", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, err := SizeInBytes(tt.magnitude, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeInBytes_Errors(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		unit      string
	}{
		{name: "unknown unit", magnitude: 1, unit: "furlongs"},
		{name: "missing unit", magnitude: 1, unit: ""},
		{name: "negative", magnitude: -1, unit: "bytes"},
		{name: "not a number", magnitude: math.NaN(), unit: "bytes"},
		{name: "overflow", magnitude: 1e30, unit: "Tbytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SizeInBytes(tt.magnitude, tt.unit)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}
