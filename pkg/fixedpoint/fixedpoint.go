// Package fixedpoint implements the point/asset conversion arithmetic on
// 128-bit fixed-point rates. All operations are overflow-checked; conversions
// saturate at MaxUint64 instead of wrapping.
package fixedpoint

import (
	"errors"
	"math"

	"github.com/holiman/uint256"
)

// MaxDecimals bounds the fixed-point scale so 10^decimals stays well inside
// the 128-bit range used for rates.
const MaxDecimals = 18

var (
	ErrInvalidRate     = errors.New("rate must be greater than zero")
	ErrInvalidDecimals = errors.New("decimals exceed supported precision")
)

func maxUint128() *uint256.Int {
	max := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	return max.Sub(max, uint256.NewInt(1))
}

// Pow10 computes 10^n, checking at every step that the running product stays
// within 128 bits.
func Pow10(n uint8) (*uint256.Int, error) {
	if n > MaxDecimals {
		return nil, ErrInvalidDecimals
	}
	limit := maxUint128()
	result := uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for i := uint8(0); i < n; i++ {
		result.Mul(result, ten)
		if result.Cmp(limit) > 0 {
			return nil, ErrInvalidDecimals
		}
	}
	return result, nil
}

// PointsToAsset converts a point amount into backing-asset units:
// points * rate / 10^decimals. Returns 0 for zero points and saturates at
// MaxUint64 when the true result does not fit.
func PointsToAsset(points uint64, rate *uint256.Int, decimals uint8) (uint64, error) {
	if points == 0 {
		return 0, nil
	}
	scale, err := Pow10(decimals)
	if err != nil {
		return 0, err
	}
	result := new(uint256.Int).Mul(uint256.NewInt(points), rate)
	result.Div(result, scale)
	return saturate(result), nil
}

// AssetToPoints converts backing-asset units into points:
// asset * 10^decimals / rate. The rate must be positive since it is the
// divisor. Returns 0 for zero asset and saturates at MaxUint64.
func AssetToPoints(asset uint64, rate *uint256.Int, decimals uint8) (uint64, error) {
	if rate == nil || rate.IsZero() {
		return 0, ErrInvalidRate
	}
	if asset == 0 {
		return 0, nil
	}
	scale, err := Pow10(decimals)
	if err != nil {
		return 0, err
	}
	result := new(uint256.Int).Mul(uint256.NewInt(asset), scale)
	result.Div(result, rate)
	return saturate(result), nil
}

// ParseRate parses the decimal rate representation stored in the database and
// validates it fits the 128-bit fixed-point range.
func ParseRate(s string) (*uint256.Int, error) {
	rate, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, ErrInvalidRate
	}
	if rate.IsZero() || rate.Cmp(maxUint128()) > 0 {
		return nil, ErrInvalidRate
	}
	return rate, nil
}

func saturate(v *uint256.Int) uint64 {
	if !v.IsUint64() {
		return math.MaxUint64
	}
	return v.Uint64()
}
