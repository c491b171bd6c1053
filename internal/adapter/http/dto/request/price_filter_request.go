package request

import (
	"bytes"
	"encoding/json"
)

// PriceFilterRequest carries the min/max inputs as sent by the page. Each
// may be a JSON string or number; any other value, or a missing field,
// means "no bound".
type PriceFilterRequest struct {
	MinPrice json.RawMessage `json:"min_price" swaggertype:"string" example:"100"`
	MaxPrice json.RawMessage `json:"max_price" swaggertype:"string" example:"300"`
}

// RawMin returns the min input as text for bound parsing.
func (r PriceFilterRequest) RawMin() string {
	return rawBound(r.MinPrice)
}

// RawMax returns the max input as text for bound parsing.
func (r PriceFilterRequest) RawMax() string {
	return rawBound(r.MaxPrice)
}

func rawBound(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return ""
	}
	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(v, &n); err != nil {
			return ""
		}
		return n.String()
	default:
		return ""
	}
}
