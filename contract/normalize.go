package main

import (
	"math"
	"math/bits"

	"presale/sdk"
)

// pow10 returns 10^d as int64, d capped at MaxTokenDecimals.
func pow10(d uint8) int64 {
	if d > MaxTokenDecimals {
		sdk.Abort("unsupported precision")
	}
	v := int64(1)
	for i := uint8(0); i < d; i++ {
		v *= 10
	}
	return v
}

// normalizeAmount converts a non-negative amount between fractional precisions.
// Rounding direction is floor on the downscaling path; every caller shares this
// truncation policy so cap and tolerance math never drift apart.
func normalizeAmount(amount int64, fromDecimals, toDecimals uint8) int64 {
	if amount < 0 {
		sdk.Abort("negative amount")
	}
	if fromDecimals == toDecimals {
		return amount
	}
	if toDecimals > fromDecimals {
		scale := pow10(toDecimals - fromDecimals)
		if amount > math.MaxInt64/scale {
			sdk.Abort("amount overflow")
		}
		return amount * scale
	}
	return amount / pow10(fromDecimals-toDecimals)
}

// mulDiv computes floor(a*b/den) over the full 128-bit intermediate so pricing
// and split math cannot silently wrap.
func mulDiv(a, b, den int64) int64 {
	if a < 0 || b < 0 || den <= 0 {
		sdk.Abort("invalid arithmetic input")
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(den) {
		sdk.Abort("amount overflow")
	}
	quo, _ := bits.Div64(hi, lo, uint64(den))
	if quo > math.MaxInt64 {
		sdk.Abort("amount overflow")
	}
	return int64(quo)
}
