// File: formatspec.go
// Title: Format Specification Mini-Language
// Description: Parses and applies format specs of the form
//              [[fill]align][sign][z][#][0][width][grouping][.precision][type]
//              to strings, integers and floats, including sign-aware zero
//              padding, digit grouping and the general float presentation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of the format spec language

package stringx

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	mterrors "github.com/msto63/mtext/core/errors"
)

// formatSpec is a parsed format specification. Unset numeric fields are -1,
// unset rune fields are 0.
type formatSpec struct {
	fill       rune
	align      rune
	sign       rune
	coerceZero bool
	alternate  bool
	zeroPad    bool
	width      int
	grouping   rune
	precision  int
	verb       rune
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '=' || r == '^'
}

func parseSpec(spec string, typeName string) (formatSpec, error) {
	fs := formatSpec{width: -1, precision: -1}
	r := []rune(spec)
	pos := 0

	switch {
	case len(r) >= 2 && isAlign(r[1]):
		fs.fill, fs.align = r[0], r[1]
		pos = 2
	case len(r) >= 1 && isAlign(r[0]):
		fs.align = r[0]
		pos = 1
	}

	if pos < len(r) && (r[pos] == '+' || r[pos] == '-' || r[pos] == ' ') {
		fs.sign = r[pos]
		pos++
	}
	if pos < len(r) && r[pos] == 'z' {
		fs.coerceZero = true
		pos++
	}
	if pos < len(r) && r[pos] == '#' {
		fs.alternate = true
		pos++
	}
	if fs.fill == 0 && pos < len(r) && r[pos] == '0' {
		fs.zeroPad = true
		pos++
	}

	width, next, err := parseDigits(r, pos)
	if err != nil {
		return fs, err
	}
	if next > pos {
		fs.width = width
	}
	pos = next

	if pos < len(r) && (r[pos] == ',' || r[pos] == '_') {
		fs.grouping = r[pos]
		pos++
		if pos < len(r) && (r[pos] == ',' || r[pos] == '_') {
			return fs, formatError("Cannot specify both ',' and '_'.")
		}
	}

	if pos < len(r) && r[pos] == '.' {
		pos++
		precision, next, err := parseDigits(r, pos)
		if err != nil {
			return fs, err
		}
		if next == pos {
			return fs, formatError("Format specifier missing precision")
		}
		fs.precision = precision
		pos = next
	}

	switch len(r) - pos {
	case 0:
	case 1:
		fs.verb = r[pos]
	default:
		return fs, formatError(fmt.Sprintf("Invalid format specifier '%s' for object of type '%s'", spec, typeName))
	}
	return fs, nil
}

func parseDigits(r []rune, pos int) (int, int, error) {
	start := pos
	for pos < len(r) && r[pos] >= '0' && r[pos] <= '9' {
		pos++
	}
	if pos == start {
		return 0, pos, nil
	}
	n, err := strconv.Atoi(string(r[start:pos]))
	if err != nil || n > math.MaxInt32 {
		return 0, pos, formatError("Too many decimal digits in format string")
	}
	return n, pos, nil
}

// FormatValue renders a single value under a format spec. An empty spec gives
// Str(value). Strings, integers (and booleans) and floats accept the spec
// language; other values accept only the empty spec.
func FormatValue(value any, spec string) (string, error) {
	if spec == "" {
		return Str(value), nil
	}

	typeName := pyTypeName(value)
	fs, err := parseSpec(spec, typeName)
	if err != nil {
		return "", err
	}

	if b, ok := value.(bool); ok {
		if b {
			return fs.formatInt(false, 1)
		}
		return fs.formatInt(false, 0)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return fs.formatString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return fs.formatInt(true, uint64(-(n+1))+1)
		}
		return fs.formatInt(false, uint64(n))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fs.formatInt(false, rv.Uint())
	case reflect.Float32:
		return fs.formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return fs.formatFloat(rv.Float(), 64)
	case reflect.Bool:
		if rv.Bool() {
			return fs.formatInt(false, 1)
		}
		return fs.formatInt(false, 0)
	}

	return "", mterrors.TypeMismatchf(mterrors.ModuleStringx, "format",
		"unsupported format string passed to %s.__format__", typeName)
}

func (fs formatSpec) formatString(s string) (string, error) {
	if fs.verb != 0 && fs.verb != 's' {
		return "", formatError(fmt.Sprintf("Unknown format code '%c' for object of type 'str'", fs.verb))
	}
	if fs.sign != 0 {
		return "", formatError("Sign not allowed in string format specifier")
	}
	if fs.alternate {
		return "", formatError("Alternate form (#) not allowed in string format specifier")
	}
	if fs.align == '=' {
		return "", formatError("'=' alignment not allowed in string format specifier")
	}
	if fs.grouping != 0 {
		return "", formatError(fmt.Sprintf("Cannot specify '%c' with 's'.", fs.grouping))
	}

	if fs.precision >= 0 && utf8.RuneCountInString(s) > fs.precision {
		s = string([]rune(s)[:fs.precision])
	}

	fill, align := fs.fill, fs.align
	if fill == 0 {
		fill = ' '
		if fs.zeroPad {
			fill = '0'
		}
	}
	if align == 0 {
		align = '<'
	}
	return padAligned("", s, fs.width, fill, align), nil
}

func (fs formatSpec) formatInt(negative bool, magnitude uint64) (string, error) {
	switch fs.verb {
	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		f := float64(magnitude)
		if negative {
			f = -f
		}
		return fs.formatFloat(f, 64)
	case 0, 'd', 'n', 'b', 'o', 'x', 'X', 'c':
	default:
		return "", formatError(fmt.Sprintf("Unknown format code '%c' for object of type 'int'", fs.verb))
	}

	if fs.precision >= 0 {
		return "", formatError("Precision not allowed in integer format specifier")
	}
	if fs.grouping != 0 {
		switch {
		case fs.verb == 'n' || fs.verb == 'c':
			return "", formatError(fmt.Sprintf("Cannot specify '%c' with '%c'.", fs.grouping, fs.verb))
		case fs.grouping == ',' && fs.verb != 0 && fs.verb != 'd':
			return "", formatError(fmt.Sprintf("Cannot specify ',' with '%c'.", fs.verb))
		}
	}

	var digits, prefix string
	group := 3
	switch fs.verb {
	case 'c':
		if fs.sign != 0 {
			return "", formatError("Sign not allowed with integer format specifier 'c'")
		}
		if fs.alternate {
			return "", formatError("Alternate form (#) not allowed with integer format specifier 'c'")
		}
		if negative || magnitude > unicode.MaxRune {
			return "", formatError("%c arg not in range(0x110000)")
		}
		digits = string(rune(magnitude))
	case 'b':
		digits, prefix, group = strconv.FormatUint(magnitude, 2), "0b", 4
	case 'o':
		digits, prefix, group = strconv.FormatUint(magnitude, 8), "0o", 4
	case 'x':
		digits, prefix, group = strconv.FormatUint(magnitude, 16), "0x", 4
	case 'X':
		digits, prefix, group = strings.ToUpper(strconv.FormatUint(magnitude, 16)), "0X", 4
	default:
		digits = strconv.FormatUint(magnitude, 10)
	}
	if !fs.alternate {
		prefix = ""
	}

	lead := fs.signFor(negative) + prefix
	if fs.verb == 'c' {
		return fs.alignText(lead, digits, "", 0, 0), nil
	}
	return fs.alignText(lead, digits, "", fs.grouping, group), nil
}

func (fs formatSpec) formatFloat(f float64, bitSize int) (string, error) {
	verb := fs.verb
	switch verb {
	case 0, 'e', 'E', 'f', 'F', 'g', 'G', 'n', '%':
	default:
		return "", formatError(fmt.Sprintf("Unknown format code '%c' for object of type 'float'", verb))
	}
	if verb == 'n' {
		if fs.grouping != 0 {
			return "", formatError(fmt.Sprintf("Cannot specify '%c' with 'n'.", fs.grouping))
		}
		verb = 'g'
	}

	negative := math.Signbit(f) && !math.IsNaN(f)
	abs := math.Abs(f)
	precision := fs.precision
	if precision < 0 && verb != 0 {
		precision = 6
	}

	var body string
	switch {
	case math.IsInf(abs, 0):
		body = "inf"
	case math.IsNaN(abs):
		body = "nan"
	}
	if body != "" {
		if verb == '%' {
			body += "%"
		}
	} else {
		switch verb {
		case 0:
			if precision < 0 {
				body = FloatRepr(abs, bitSize)
			} else {
				body = generalFloat(abs, precision, fs.alternate, true)
			}
		case 'f', 'F':
			body = strconv.FormatFloat(abs, 'f', precision, 64)
			if fs.alternate && precision == 0 {
				body += "."
			}
		case 'e', 'E':
			body = strconv.FormatFloat(abs, 'e', precision, 64)
			if fs.alternate && precision == 0 {
				body = strings.Replace(body, "e", ".e", 1)
			}
		case 'g', 'G':
			body = generalFloat(abs, precision, fs.alternate, false)
		case '%':
			body = strconv.FormatFloat(abs*100, 'f', precision, 64)
			if fs.alternate && precision == 0 {
				body += "."
			}
			body += "%"
		}
	}
	if verb == 'E' || verb == 'F' || verb == 'G' {
		body = strings.ToUpper(body)
	}

	if negative && fs.coerceZero && isZeroBody(body) {
		negative = false
	}

	intPart, rest := splitIntPart(body)
	return fs.alignText(fs.signFor(negative), intPart, rest, fs.grouping, 3), nil
}

// generalFloat implements the 'g' presentation. With noneType set it follows
// the default float presentation: scientific from exponent precision-1 and a
// fixed result always keeps one fractional digit.
func generalFloat(abs float64, precision int, alternate, noneType bool) string {
	if precision == 0 {
		precision = 1
	}

	exp := 0
	if abs != 0 {
		exp = exponentOf(strconv.FormatFloat(abs, 'e', precision-1, 64))
	}

	threshold := precision
	if noneType {
		threshold = precision - 1
	}

	var body string
	fixed := exp >= -4 && exp < threshold
	if fixed {
		body = strconv.FormatFloat(abs, 'f', precision-1-exp, 64)
	} else {
		body = strconv.FormatFloat(abs, 'e', precision-1, 64)
	}

	if !alternate {
		body = trimFractionZeros(body)
	} else if !strings.ContainsRune(body, '.') {
		if i := strings.IndexByte(body, 'e'); i >= 0 {
			body = body[:i] + "." + body[i:]
		} else {
			body += "."
		}
	}

	if noneType && fixed && !strings.ContainsRune(body, '.') {
		body += ".0"
	}
	return body
}

// trimFractionZeros drops trailing zeros of the mantissa and a bare point
func trimFractionZeros(body string) string {
	mantissa, exponent := body, ""
	if i := strings.IndexByte(body, 'e'); i >= 0 {
		mantissa, exponent = body[:i], body[i:]
	}
	if strings.ContainsRune(mantissa, '.') {
		mantissa = strings.TrimRight(mantissa, "0")
		mantissa = strings.TrimSuffix(mantissa, ".")
	}
	return mantissa + exponent
}

func isZeroBody(body string) bool {
	for _, r := range body {
		switch r {
		case '0', '.':
		case 'e', 'E', '%':
			return true
		default:
			return false
		}
	}
	return true
}

// splitIntPart separates the leading integer digits from the rest
func splitIntPart(body string) (string, string) {
	i := 0
	for i < len(body) && body[i] >= '0' && body[i] <= '9' {
		i++
	}
	return body[:i], body[i:]
}

func (fs formatSpec) signFor(negative bool) string {
	switch {
	case negative:
		return "-"
	case fs.sign == '+':
		return "+"
	case fs.sign == ' ':
		return " "
	}
	return ""
}

// alignText assembles sign and prefix, grouped integer digits and the rest,
// then pads to the width. Zero padding with '=' alignment extends the digits
// themselves so group separators appear inside the padding.
func (fs formatSpec) alignText(lead, digits, rest string, sep rune, group int) string {
	fill, align := fs.fill, fs.align
	if fill == 0 {
		fill = ' '
		if fs.zeroPad {
			fill = '0'
		}
	}
	if align == 0 {
		align = '>'
		if fs.zeroPad {
			align = '='
		}
	}

	if sep != 0 && digits != "" {
		if align == '=' && fill == '0' && fs.width > 0 {
			need := fs.width - utf8.RuneCountInString(lead) - utf8.RuneCountInString(rest)
			for len(groupDigits(digits, sep, group)) < need {
				digits = "0" + digits
			}
		}
		digits = groupDigits(digits, sep, group)
	}

	return padAligned(lead, digits+rest, fs.width, fill, align)
}

func groupDigits(digits string, sep rune, group int) string {
	if len(digits) <= group {
		return digits
	}
	var b strings.Builder
	first := len(digits) % group
	if first == 0 {
		first = group
	}
	b.WriteString(digits[:first])
	for i := first; i < len(digits); i += group {
		b.WriteRune(sep)
		b.WriteString(digits[i : i+group])
	}
	return b.String()
}

// padAligned pads lead+body to width. '=' puts the padding between lead and
// body; '^' puts the extra rune of an odd padding on the right.
func padAligned(lead, body string, width int, fill, align rune) string {
	length := utf8.RuneCountInString(lead) + utf8.RuneCountInString(body)
	if width <= length {
		return lead + body
	}
	padding := width - length
	fillStr := string(fill)

	switch align {
	case '<':
		return lead + body + strings.Repeat(fillStr, padding)
	case '^':
		left := padding / 2
		return strings.Repeat(fillStr, left) + lead + body + strings.Repeat(fillStr, padding-left)
	case '=':
		return lead + strings.Repeat(fillStr, padding) + body
	default:
		return strings.Repeat(fillStr, padding) + lead + body
	}
}
