package ledgerservice

import (
	"math"

	"github.com/holiman/uint256"
)

// Point accrual formula:
//
//	points = principal * durationDays * basisPointsPerDay * factor / (10_000 * 100)
//
// where basisPointsPerDay is the daily earn rate in basis points and factor is
// the participation multiplier in percent. The intermediate product is
// computed in 256-bit space and the result saturates at MaxUint64.
const basisPointsPerDay = 27

const (
	participationScale = 100
	basisPointScale    = 10_000
)

// participationFactor maps a participation level to its percent multiplier.
// Levels beyond the highest tier clamp to the top factor, keeping the result
// monotonically non-decreasing in the level.
func participationFactor(level uint8) uint64 {
	switch {
	case level == 0:
		return 100
	case level == 1:
		return 110
	case level == 2:
		return 125
	default:
		return 150
	}
}

// CalculatePointsToEarn is the pure accrual preview: zero principal or zero
// duration earns zero points, everything else follows the formula above.
func CalculatePointsToEarn(principal uint64, durationDays uint64, participationLevel uint8) uint64 {
	if principal == 0 || durationDays == 0 {
		return 0
	}

	result := new(uint256.Int).Mul(uint256.NewInt(principal), uint256.NewInt(durationDays))
	result.Mul(result, uint256.NewInt(basisPointsPerDay))
	result.Mul(result, uint256.NewInt(participationFactor(participationLevel)))
	result.Div(result, uint256.NewInt(basisPointScale*participationScale))

	if !result.IsUint64() {
		return math.MaxUint64
	}
	return result.Uint64()
}
