// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package money parses the free-text price strings stored on garments.

Prices are entered by hand ("99", "¥2,400", "12.50 USD", "120元") and are never
validated on write. Parsing is therefore loose: currency symbols, spaces and
grouping separators are stripped, the leading number is read, and anything
without one counts as zero.
*/
package money

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Parse converts a loosely formatted price into a decimal.
// It returns [decimal.Zero] for empty or non-numeric input.
func Parse(raw string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == ',' || r == '_' || unicode.IsSpace(r):
			return -1
		case unicode.Is(unicode.Sc, r):
			// Currency symbols ($, ¥, €, £...)
			return -1
		}
		return r
	}, raw)

	number := leadingNumber(cleaned)
	if number == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Zero
	}

	return value
}

// Sum adds the parsed value of every raw price.
func Sum(raws ...string) decimal.Decimal {
	total := decimal.Zero
	for _, raw := range raws {
		total = total.Add(Parse(raw))
	}
	return total
}

// leadingNumber returns the longest prefix of s shaped like [-+]digits[.digits].
func leadingNumber(s string) string {
	end, digits := 0, 0
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		end = 1
	}

	seenPoint := false
	for ; end < len(s); end++ {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !seenPoint:
			seenPoint = true
		default:
			return trimNumber(s[:end], digits)
		}
	}
	return trimNumber(s[:end], digits)
}

// trimNumber drops a dangling decimal point and rejects prefixes without digits.
func trimNumber(prefix string, digits int) string {
	if digits == 0 {
		return ""
	}
	return strings.TrimSuffix(prefix, ".")
}
