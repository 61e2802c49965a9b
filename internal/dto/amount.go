package dto

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Amount is a price in whole currency units. It decodes any JSON number with no
// fractional part, so 1899 and 1899.0 are the same amount.
type Amount int

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if n, err := strconv.ParseInt(string(data), 10, 0); err == nil {
		*a = Amount(n)
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("amount %s is not a number", data)
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("amount %s is not a whole number", data)
	}
	*a = Amount(f)
	return nil
}
