package rewards

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MonetaryAmount is an amount of money in cents.
type MonetaryAmount int64

// Percentage is a ratio in basis points, 100 basis points make 1%.
type Percentage int64

const (
	centsPerUnit     = 100
	basisPointsWhole = 10000

	// PercentageWhole is 100%.
	PercentageWhole Percentage = basisPointsWhole

	// MaxMonetaryAmount is the largest amount, in either sign, that Percent can take a share of without overflowing.
	MaxMonetaryAmount MonetaryAmount = (math.MaxInt64 - basisPointsWhole/2) / basisPointsWhole
)

// ParseMonetaryAmount parses decimal strings such as "100", "8.5" or "100.00".
func ParseMonetaryAmount(s string) (MonetaryAmount, error) {
	v, err := parseFixed(strings.TrimSpace(s), 2)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	a := MonetaryAmount(v)
	if a > MaxMonetaryAmount || a < -MaxMonetaryAmount {
		return 0, ErrInvalidAmount
	}

	return a, nil
}

// Percent returns p of the amount, rounded half away from zero to the nearest cent.
// The amount must be within MaxMonetaryAmount and p within 0..PercentageWhole.
func (a MonetaryAmount) Percent(p Percentage) MonetaryAmount {
	v := int64(a) * int64(p)
	if v < 0 {
		return MonetaryAmount((v - basisPointsWhole/2) / basisPointsWhole)
	}

	return MonetaryAmount((v + basisPointsWhole/2) / basisPointsWhole)
}

func (a MonetaryAmount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/centsPerUnit, v%centsPerUnit)
}

// ParsePercentage parses either a percent form ("8%", "12.5%") or a decimal fraction ("0.08").
func ParsePercentage(s string) (Percentage, error) {
	s = strings.TrimSpace(s)

	var (
		v   int64
		err error
	)
	if strings.HasSuffix(s, "%") {
		v, err = parseFixed(strings.TrimSuffix(s, "%"), 2)
	} else {
		v, err = parseFixed(s, 4)
	}
	if err != nil || v < 0 || v > basisPointsWhole {
		return 0, ErrInvalidPercentage
	}

	return Percentage(v), nil
}

func (p Percentage) String() string {
	whole, frac := int64(p)/100, int64(p)%100
	if frac == 0 {
		return fmt.Sprintf("%d%%", whole)
	}

	return strings.TrimRight(fmt.Sprintf("%d.%02d", whole, frac), "0") + "%"
}

// parseFixed parses a decimal string into an integer scaled by 10^scale.
// More fractional digits than scale is an error.
func parseFixed(s string, scale int) (int64, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || len(frac) > scale || strings.ContainsAny(whole+frac, "+-") {
		return 0, strconv.ErrSyntax
	}

	frac += strings.Repeat("0", scale-len(frac))

	v, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, err
	}

	if negative {
		v = -v
	}

	return v, nil
}
