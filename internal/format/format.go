package format

import (
	"math"
	"strconv"
	"strings"
)

// Damage renders a non-negative damage or shield count the way the web client
// displays it: "500", "2k", "1500", "12,35k", "2,5M".
//
// Values between 1000 and 9999 are only abbreviated when they are exact
// thousands; anything else in that range reads better as the literal number.
// From 10000 upward the value is always abbreviated.
func Damage(n int64) string {
	switch {
	case n < 1000:
		return strconv.FormatInt(n, 10)
	case n < 10000:
		if n%1000 == 0 {
			return strconv.FormatInt(n/1000, 10) + "k"
		}
		return strconv.FormatInt(n, 10)
	case n < 1000000:
		return abbreviate(float64(n)/1000) + "k"
	default:
		return abbreviate(float64(n)/1000000) + "M"
	}
}

// abbreviate rounds to two decimal places (half away from zero), uses a comma
// as the decimal separator, and strips trailing zeros along with a
// then-dangling comma.
func abbreviate(v float64) string {
	rounded := math.Round(v*100) / 100
	s := strconv.FormatFloat(rounded, 'f', 2, 64)
	s = strings.Replace(s, ".", ",", 1)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ",")
}
