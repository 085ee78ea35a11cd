package table

import (
	"fmt"
	"strings"
	"time"
)

// ColumnType tags the semantic type a column should be normalized to.
type ColumnType string

const (
	TypeDecimal    ColumnType = "decimal"
	TypeInt        ColumnType = "int"
	TypeDate       ColumnType = "date"
	TypeCurrency   ColumnType = "currency"
	TypeAccounting ColumnType = "accounting"
)

// Conversion pairs a column with the semantic type to normalize it to.
type Conversion struct {
	Column string
	Type   ColumnType
}

// ZeroDate is what an empty date cell normalizes to.
const ZeroDate = "0001-01-01"

// ConvertTypes normalizes cells in place, row by row, applying the
// conversions in slice order within each row. Date columns are parsed
// with the first of fromDateFormats (Go time layouts) that succeeds and
// re-rendered in toDateFormat. Unrecognized type tags are skipped
// silently. No rollback on failure: rows already visited stay
// converted.
func (t *Table) ConvertTypes(convs []Conversion, fromDateFormats []string, toDateFormat string) error {
	for _, cv := range convs {
		if err := t.requireColumn(cv.Column); err != nil {
			return err
		}
	}
	for i := range t.rows {
		for _, cv := range convs {
			current, _ := t.rows[i].Get(cv.Column)
			var converted string
			switch cv.Type {
			case TypeDecimal:
				converted = NormalizeDecimal(current)
			case TypeInt:
				converted = NormalizeInt(current)
			case TypeDate:
				d, err := ConvertDate(current, fromDateFormats, toDateFormat)
				if err != nil {
					return fmt.Errorf("column %q row %d: %w", cv.Column, i, err)
				}
				converted = d
			case TypeCurrency:
				converted = FormatCurrency(current)
			case TypeAccounting:
				converted = FormatAccounting(current)
			default:
				continue
			}
			t.rows[i] = t.rows[i].Set(cv.Column, converted)
		}
	}
	return nil
}

// stripAmount removes currency symbols, thousands separators and spaces.
var stripAmount = strings.NewReplacer("$", "", ",", "", " ", "")

// leadingMinus moves an accounting-style trailing minus ("5.00-") to
// the front.
func leadingMinus(v string) string {
	if strings.HasSuffix(v, "-") {
		return "-" + strings.TrimSuffix(v, "-")
	}
	return v
}

// NormalizeDecimal reduces a numeric string to plain decimal form:
// currency symbols, grouping commas and spaces stripped, a bare leading
// dot padded with a zero, trailing minus moved to the front, and the
// empty/zero spellings collapsed to "0.00". Idempotent on already
// normalized input.
func NormalizeDecimal(s string) string {
	v := leadingMinus(stripAmount.Replace(s))
	if strings.HasPrefix(v, ".") {
		v = "0" + v
	} else if strings.HasPrefix(v, "-.") {
		v = "-0" + strings.TrimPrefix(v, "-")
	}
	if v == "" || v == "0" || v == "-0.00" {
		return "0.00"
	}
	return v
}

// NormalizeInt reduces an integer string: grouping commas stripped,
// trailing minus moved to the front, empty input collapsed to "0".
func NormalizeInt(s string) string {
	v := leadingMinus(strings.ReplaceAll(s, ",", ""))
	if v == "" {
		return "0"
	}
	return v
}

// ConvertDate parses value with the first layout in fromLayouts that
// succeeds and renders it in toLayout. Empty values normalize to
// ZeroDate. When every layout fails the error names the value and the
// last layout tried.
func ConvertDate(value string, fromLayouts []string, toLayout string) (string, error) {
	if value == "" {
		return ZeroDate, nil
	}
	var last string
	for _, layout := range fromLayouts {
		last = layout
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.Format(toLayout), nil
		}
	}
	return "", fmt.Errorf("%w: value %q does not match layout %q", ErrDateParse, value, last)
}

// splitAmount decomposes a raw amount into sign, integer digits and
// fractional digits, applying the defaulting rules shared by currency
// and accounting rendering: a missing or empty fractional part becomes
// "00", a missing, empty or bare "-" integer part becomes "0".
func splitAmount(s string) (negative bool, intPart, fracPart string) {
	v := leadingMinus(stripAmount.Replace(s))
	if v == "-" {
		// A bare sign carries no amount; it defaults to zero, not
		// negative zero.
		return false, "0", "00"
	}
	if strings.HasPrefix(v, "-") {
		negative = true
		v = strings.TrimPrefix(v, "-")
	}
	intPart, fracPart, ok := strings.Cut(v, ".")
	if intPart == "" {
		intPart = "0"
	}
	if !ok || fracPart == "" {
		fracPart = "00"
	}
	return negative, groupThousands(intPart), fracPart
}

// groupThousands inserts comma separators every three digits from the
// right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatCurrency renders an amount as dollars with thousands grouping,
// negative values with a leading minus: "-1234" becomes "-$1,234.00".
func FormatCurrency(s string) string {
	negative, intPart, fracPart := splitAmount(s)
	if negative {
		return fmt.Sprintf("-$%s.%s", intPart, fracPart)
	}
	return fmt.Sprintf("$%s.%s", intPart, fracPart)
}

// FormatAccounting renders like FormatCurrency but parenthesizes
// negative values instead: "-1234" becomes "$(1,234.00)".
func FormatAccounting(s string) string {
	negative, intPart, fracPart := splitAmount(s)
	if negative {
		return fmt.Sprintf("$(%s.%s)", intPart, fracPart)
	}
	return fmt.Sprintf("$%s.%s", intPart, fracPart)
}
