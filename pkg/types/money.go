package types

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

var ErrInvalidMoney = errors.New("invalid money")

type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency,omitempty"`
}

func (m Money) String() string {
	value := strconv.FormatFloat(m.Value, 'f', 2, 64)
	if m.Currency == "" {
		return value
	}
	return value + " " + m.Currency
}

// UnmarshalJSON accepts a bare number, a {value, currency} object or the
// catalog price shape {minimalPrice|regularPrice: {amount: {value, currency}}}.
func (m *Money) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed json", ErrInvalidMoney)
	}
	res := gjson.ParseBytes(data)
	switch res.Type {
	case gjson.Number:
		*m = Money{Value: res.Float()}
		return nil
	case gjson.String:
		f, err := strconv.ParseFloat(res.Str, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidMoney, res.Str)
		}
		*m = Money{Value: f}
		return nil
	}
	if !res.IsObject() {
		return fmt.Errorf("%w: unexpected %s", ErrInvalidMoney, res.Type)
	}
	for _, amount := range []gjson.Result{res, res.Get("minimalPrice.amount"), res.Get("regularPrice.amount")} {
		value := amount.Get("value")
		if value.Type != gjson.Number {
			continue
		}
		*m = Money{
			Value:    value.Float(),
			Currency: amount.Get("currency").String(),
		}
		return nil
	}
	return fmt.Errorf("%w: no value in %s", ErrInvalidMoney, res.Raw)
}
