package ledger

import (
	"strconv"
	"strings"
)

// Number is a lenient float field: malformed text decodes to 0 instead of
// failing the row.
type Number float64

func (n *Number) UnmarshalCSV(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(n), 'f', -1, 64), nil
}

// Count is a lenient integer field with the same decode policy as Number.
type Count int

func (c *Count) UnmarshalCSV(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Qty columns sometimes arrive as "1.0".
		f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if ferr != nil {
			*c = 0
			return nil
		}
		*c = Count(int(f))
		return nil
	}
	*c = Count(v)
	return nil
}

func (c Count) MarshalCSV() (string, error) {
	return strconv.Itoa(int(c)), nil
}
