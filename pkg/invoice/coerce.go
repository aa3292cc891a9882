// Package invoice re-derives, edits and renders driver and PA invoices.
//
// Fares arrive from several surfaces with unknown quality, so every
// summation goes through Coerce: anything that is not a finite number counts
// as zero.
package invoice

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coerce converts a loosely typed fare to a decimal. Missing, empty,
// non-numeric and non-finite values become zero; booleans count as 1 and 0.
func Coerce(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero
		}
		return *n
	case float64:
		return fromFloat(n)
	case float32:
		return fromFloat(float64(n))
	case int:
		return decimal.NewFromInt(int64(n))
	case int8:
		return decimal.NewFromInt(int64(n))
	case int16:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case uint:
		return decimal.NewFromInt(int64(n))
	case uint8:
		return decimal.NewFromInt(int64(n))
	case uint16:
		return decimal.NewFromInt(int64(n))
	case uint32:
		return decimal.NewFromInt(int64(n))
	case uint64:
		return fromString(strconv.FormatUint(n, 10))
	case bool:
		if n {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	case string:
		return fromString(n)
	case *string:
		if n == nil {
			return decimal.Zero
		}
		return fromString(*n)
	case json.Number:
		return fromString(string(n))
	case primitive.Decimal128:
		return fromString(n.String())
	}
	return decimal.Zero
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func fromString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatMoney renders an amount in pounds with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return "£" + d.StringFixed(2)
}
