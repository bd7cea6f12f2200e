package types

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal is a fixed-point value with exactly two decimal places, stored
// as an integer count of hundredths. It is used for project hours and
// material costs, where "3.5" and "3.50" are the same value and must
// round-trip through the database as "3.50".
type Decimal int64

// ParseDecimal parses a decimal string with at most two fractional
// digits. More than two fractional digits is an error rather than a
// silent rounding: the caller typed a value this type cannot represent.
// Returns a wrapped ErrInvalidNumber on any malformed input.
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}

	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	// ParseInt would accept a second sign here, turning "--5" or "3.-5"
	// into a number; only digits are valid past the leading sign.
	if !isDigits(intPart) || !isDigits(fracPart) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("%q has more than two decimal places: %w", s, ErrInvalidNumber)
	}

	whole := int64(0)
	if intPart != "" {
		var err error
		whole, err = strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
		}
	}

	hundredths := int64(0)
	if fracPart != "" {
		// Pad "5" to "50" so that "3.5" means 3.50.
		for len(fracPart) < 2 {
			fracPart += "0"
		}
		var err error
		hundredths, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
		}
	}

	v := whole*100 + hundredths
	if neg {
		v = -v
	}
	return Decimal(v), nil
}

// isDigits reports whether s contains only ASCII digits. The empty
// string counts: a missing part was already handled by the caller.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String formats the value with exactly two decimal places, e.g. "3.50".
func (d Decimal) String() string {
	v := int64(d)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders the canonical two-decimal string, quoted.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts the quoted canonical form produced by MarshalJSON.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling decimal: %w", ErrInvalidNumber)
	}
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. Decimals are persisted as their
// canonical two-decimal string so the stored form is already normalized.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. Accepts the canonical string form as well
// as integer and float column values from pre-existing databases.
func (d *Decimal) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = 0
		return nil
	case string:
		parsed, err := ParseDecimal(v)
		if err != nil {
			return fmt.Errorf("scanning decimal: %w", err)
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDecimal(string(v))
		if err != nil {
			return fmt.Errorf("scanning decimal: %w", err)
		}
		*d = parsed
		return nil
	case int64:
		*d = Decimal(v * 100)
		return nil
	case float64:
		*d = Decimal(math.Round(v * 100))
		return nil
	default:
		return fmt.Errorf("scanning decimal: unsupported type %T", src)
	}
}
