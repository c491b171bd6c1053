package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, raw)
	return t
}

func decimalToString(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// stringToDecimal treats an empty or unparsable value as absent.
func stringToDecimal(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &v
}
