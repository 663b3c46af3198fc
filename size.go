package thredds

import (
	"math"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/jmgilman/go/errors"
)

// Multipliers for the units used by dataSize elements. Units are binary, as
// they are for bytefmt. Lookups are case-insensitive.
var sizeUnits = map[string]float64{
	"bytes":  bytefmt.BYTE,
	"kbytes": bytefmt.KILOBYTE,
	"mbytes": bytefmt.MEGABYTE,
	"gbytes": bytefmt.GIGABYTE,
	"tbytes": bytefmt.TERABYTE,

	// bytefmt spellings
	"b":  bytefmt.BYTE,
	"k":  bytefmt.KILOBYTE,
	"kb": bytefmt.KILOBYTE,
	"m":  bytefmt.MEGABYTE,
	"mb": bytefmt.MEGABYTE,
	"g":  bytefmt.GIGABYTE,
	"gb": bytefmt.GIGABYTE,
	"t":  bytefmt.TERABYTE,
	"tb": bytefmt.TERABYTE,
}

// SizeInBytes converts a size given as a magnitude and a unit, as found in a
// catalog's dataSize element, to a number of bytes.
func SizeInBytes(magnitude float64, unit string) (uint64, error) {
	multiplier, ok := sizeUnits[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, errors.Newf(errors.CodeInvalidInput, "unknown size unit %q", unit)
	}
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) || magnitude < 0 {
		return 0, errors.Newf(errors.CodeInvalidInput, "invalid size %v", magnitude)
	}

	bytes := magnitude * multiplier
	if bytes >= math.MaxUint64 {
		return 0, errors.Newf(errors.CodeInvalidInput, "size %v %v overflows", magnitude, unit)
	}
	return uint64(bytes), nil
}
