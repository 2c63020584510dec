// File: format.go
// Title: Replacement Field Template Formatting
// Description: Implements brace-delimited template substitution in the style
//              of Python's str.format: automatic and explicit positional
//              fields, keyword fields, attribute and index lookups, !s/!r/!a
//              conversions and format specs that may themselves contain
//              replacement fields.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of template formatting

package stringx

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	mterror "github.com/msto63/mtext/core/error"
	mterrors "github.com/msto63/mtext/core/errors"
)

// Kwargs holds the keyword arguments of a template
type Kwargs map[string]any

// maxFormatRecursion bounds nesting of replacement fields inside format specs
const maxFormatRecursion = 2

type numbering int

const (
	numberingUnset numbering = iota
	numberingAuto
	numberingManual
)

type formatter struct {
	args      []any
	kwargs    Kwargs
	nextIndex int
	numbering numbering
}

// Format substitutes the replacement fields of template.
//
//	Format("{} + {} = {sum:>4}", []any{1, 2}, Kwargs{"sum": 3})  // "1 + 2 =    3"
//
// Syntax and spec errors are ValueErrors, a missing positional argument is
// an IndexError and a missing keyword is a KeyError.
func Format(template string, args []any, kwargs Kwargs) (string, error) {
	f := &formatter{args: args, kwargs: kwargs}
	return f.render([]rune(template), maxFormatRecursion)
}

func (f *formatter) render(tmpl []rune, depth int) (string, error) {
	if depth <= 0 {
		return "", formatError("Max string recursion exceeded")
	}

	var b strings.Builder
	for i := 0; i < len(tmpl); {
		switch c := tmpl[i]; c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteRune('{')
				i += 2
				continue
			}
			end, err := fieldEnd(tmpl, i)
			if err != nil {
				return "", err
			}
			out, err := f.renderField(tmpl[i+1:end], depth)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			i = end + 1

		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteRune('}')
				i += 2
				continue
			}
			return "", formatError("Single '}' encountered in format string")

		default:
			b.WriteRune(c)
			i++
		}
	}
	return b.String(), nil
}

// fieldEnd returns the position of the brace closing the field opened at
// open. Braces nest; brackets in the field name hide braces.
func fieldEnd(tmpl []rune, open int) (int, error) {
	if open+1 == len(tmpl) {
		return 0, formatError("Single '{' encountered in format string")
	}

	level := 1
	inName, inBracket := true, false
	for i := open + 1; i < len(tmpl); i++ {
		c := tmpl[i]
		if inName {
			switch {
			case inBracket:
				if c == ']' {
					inBracket = false
				}
				continue
			case c == '[':
				inBracket = true
				continue
			case c == ':' || c == '!':
				inName = false
			}
		}
		switch c {
		case '{':
			level++
		case '}':
			level--
			if level == 0 {
				return i, nil
			}
		}
	}
	return 0, formatError("expected '}' before end of string")
}

func (f *formatter) renderField(field []rune, depth int) (string, error) {
	i := 0
	inBracket := false
	for ; i < len(field); i++ {
		c := field[i]
		if inBracket {
			if c == ']' {
				inBracket = false
			}
			continue
		}
		if c == '[' {
			inBracket = true
			continue
		}
		if c == ':' || c == '!' {
			break
		}
	}
	name := string(field[:i])

	var conversion rune
	if i < len(field) && field[i] == '!' {
		if i+1 >= len(field) {
			return "", formatError("end of string while looking for conversion specifier")
		}
		conversion = field[i+1]
		i += 2
		if i < len(field) && field[i] != ':' {
			return "", formatError("expected ':' after conversion specifier")
		}
	}

	var spec []rune
	if i < len(field) && field[i] == ':' {
		spec = field[i+1:]
	}

	value, err := f.resolve(name)
	if err != nil {
		return "", err
	}

	if conversion != 0 {
		switch conversion {
		case 's':
			value = Str(value)
		case 'r':
			value = Repr(value)
		case 'a':
			value = asciiEscape(Repr(value))
		default:
			return "", formatError(fmt.Sprintf("Unknown conversion specifier %c", conversion))
		}
	}

	expanded := string(spec)
	if strings.ContainsRune(expanded, '{') {
		expanded, err = f.render(spec, depth-1)
		if err != nil {
			return "", err
		}
	}
	return FormatValue(value, expanded)
}

// resolve looks up the argument a field name refers to and applies its
// attribute and index accessors
func (f *formatter) resolve(name string) (any, error) {
	firstEnd := strings.IndexAny(name, ".[")
	if firstEnd < 0 {
		firstEnd = len(name)
	}
	first := name[:firstEnd]

	var value any
	switch {
	case first == "":
		if f.numbering == numberingManual {
			return nil, formatError("cannot switch from manual field specification to automatic field numbering")
		}
		f.numbering = numberingAuto
		index := f.nextIndex
		f.nextIndex++
		v, err := f.positional(index)
		if err != nil {
			return nil, err
		}
		value = v

	case isDigits(first):
		if f.numbering == numberingAuto {
			return nil, formatError("cannot switch from automatic field numbering to manual field specification")
		}
		f.numbering = numberingManual
		index, err := strconv.Atoi(first)
		if err != nil {
			return nil, formatError("Too many decimal digits in format string")
		}
		v, err := f.positional(index)
		if err != nil {
			return nil, err
		}
		value = v

	default:
		v, ok := f.kwargs[first]
		if !ok {
			return nil, mterrors.KeyNotFound(mterrors.ModuleStringx, "format", first)
		}
		value = v
	}

	rest := name[firstEnd:]
	for rest != "" {
		switch rest[0] {
		case '.':
			end := strings.IndexAny(rest[1:], ".[")
			if end < 0 {
				end = len(rest) - 1
			}
			attr := rest[1 : end+1]
			if attr == "" {
				return nil, formatError("Empty attribute in format string")
			}
			v, err := getAttr(value, attr)
			if err != nil {
				return nil, err
			}
			value = v
			rest = rest[end+1:]

		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, formatError("Missing ']' in format string")
			}
			key := rest[1:end]
			if key == "" {
				return nil, formatError("Empty attribute in format string")
			}
			v, err := getItem(value, key)
			if err != nil {
				return nil, err
			}
			value = v
			rest = rest[end+1:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				return nil, formatError("Only '.' or '[' may follow ']' in format field specifier")
			}

		default:
			return nil, formatError("Only '.' or '[' may follow ']' in format field specifier")
		}
	}
	return value, nil
}

func (f *formatter) positional(index int) (any, error) {
	if index >= len(f.args) {
		return nil, mterrors.IndexErrorf(mterrors.ModuleStringx, "format",
			"Replacement index %d out of range for positional args tuple", index)
	}
	return f.args[index], nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// getAttr resolves .name against a zero-argument method or an exported field
func getAttr(value any, name string) (any, error) {
	rv := reflect.ValueOf(value)
	if rv.IsValid() {
		if m := rv.MethodByName(name); m.IsValid() {
			if result, ok := callAccessor(m); ok {
				return result, nil
			}
		}
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				break
			}
			rv = rv.Elem()
		}
		if rv.Kind() == reflect.Struct {
			if field := rv.FieldByName(name); field.IsValid() && field.CanInterface() {
				return field.Interface(), nil
			}
		}
	}
	return nil, mterrors.NewErrorBuilder(mterrors.ModuleStringx).
		Operation("format").
		Messagef("'%s' object has no attribute '%s'", pyTypeName(value), name).
		Code(mterror.CodeKeyNotFound).
		Detail("attribute", name).
		Build()
}

func callAccessor(m reflect.Value) (any, bool) {
	t := m.Type()
	if t.NumIn() != 0 {
		return nil, false
	}
	switch t.NumOut() {
	case 1:
		return m.Call(nil)[0].Interface(), true
	case 2:
		if !t.Out(1).Implements(reflect.TypeOf((*error)(nil)).Elem()) {
			return nil, false
		}
		out := m.Call(nil)
		if !out[1].IsNil() {
			return nil, false
		}
		return out[0].Interface(), true
	}
	return nil, false
}

// getItem resolves [key] against slices, arrays, strings and maps. Keys made
// of digits index sequences; maps convert the key to their key type.
func getItem(value any, key string) (any, error) {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && !rv.IsNil() {
		rv = rv.Elem()
	}

	if !rv.IsValid() {
		return nil, notSubscriptable(value)
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		if !isDigits(key) {
			return nil, mterrors.TypeMismatchf(mterrors.ModuleStringx, "format",
				"%s indices must be integers or slices, not str", pyTypeName(value))
		}
		index, err := strconv.Atoi(key)
		if rv.Kind() == reflect.String {
			runes := []rune(rv.String())
			if err != nil || index >= len(runes) {
				return nil, mterrors.IndexErrorf(mterrors.ModuleStringx, "format", "string index out of range")
			}
			return string(runes[index]), nil
		}
		if err != nil || index >= rv.Len() {
			return nil, mterrors.IndexErrorf(mterrors.ModuleStringx, "format", "list index out of range")
		}
		return rv.Index(index).Interface(), nil

	case reflect.Map:
		mapKey, ok := convertKey(key, rv.Type().Key())
		if !ok {
			return nil, mterrors.KeyNotFound(mterrors.ModuleStringx, "format", key)
		}
		v := rv.MapIndex(mapKey)
		if !v.IsValid() {
			return nil, mterrors.KeyNotFound(mterrors.ModuleStringx, "format", key)
		}
		return v.Interface(), nil
	}
	return nil, notSubscriptable(value)
}

func convertKey(key string, keyType reflect.Type) (reflect.Value, bool) {
	switch keyType.Kind() {
	case reflect.String:
		return reflect.ValueOf(key).Convert(keyType), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, keyType.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(keyType), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(key, 10, keyType.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(keyType), true
	case reflect.Interface:
		if isDigits(key) {
			if n, err := strconv.Atoi(key); err == nil {
				return reflect.ValueOf(n), true
			}
		}
		return reflect.ValueOf(key), true
	}
	return reflect.Value{}, false
}

func notSubscriptable(value any) error {
	return mterrors.TypeMismatchf(mterrors.ModuleStringx, "format",
		"'%s' object is not subscriptable", pyTypeName(value))
}

// pyTypeName names a value the way template error messages refer to it
func pyTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "NoneType"
	case string:
		return "str"
	case bool:
		return "bool"
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map:
		return "dict"
	}
	return fmt.Sprintf("%T", value)
}

// Str returns the display form of a value: None for nil, True and False for
// booleans, the shortest round-trip form for floats and String() for
// Stringers
func Str(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return v
	case bool:
		return pyBool(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32:
		return FloatRepr(rv.Float(), 32)
	case reflect.Float64:
		return FloatRepr(rv.Float(), 64)
	case reflect.Bool:
		return pyBool(rv.Bool())
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array, reflect.Map:
		return Repr(value)
	}
	return fmt.Sprint(value)
}

// Repr returns the unambiguous form of a value: strings are quoted and
// escaped, containers show the Repr of their elements
func Repr(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return quote(v)
	case bool:
		return pyBool(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return quote(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "[]"
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = Repr(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		parts := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			parts = append(parts, Repr(iter.Key().Interface())+": "+Repr(iter.Value().Interface()))
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return Str(value)
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// quote renders s between single quotes, or double quotes when s contains a
// single quote but no double quote, escaping what is not printable
func quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == q || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < ' ' || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x80 || unicode.IsPrint(r):
			b.WriteRune(r)
		default:
			writeEscape(&b, r)
		}
	}
	b.WriteRune(q)
	return b.String()
}

func writeEscape(b *strings.Builder, r rune) {
	switch {
	case r <= 0xff:
		fmt.Fprintf(b, `\x%02x`, r)
	case r <= 0xffff:
		fmt.Fprintf(b, `\u%04x`, r)
	default:
		fmt.Fprintf(b, `\U%08x`, r)
	}
}

// asciiEscape escapes every non-ASCII rune of s
func asciiEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		writeEscape(&b, r)
	}
	return b.String()
}

// FloatRepr returns the shortest representation that round-trips, in fixed
// notation for exponents from -4 to 15 and scientific notation otherwise.
// Fixed results always carry a fractional part.
func FloatRepr(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	sci := strconv.FormatFloat(f, 'e', -1, bitSize)
	exp := exponentOf(sci)
	if exp < -4 || exp >= 16 {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}
	return fixed
}

// exponentOf extracts the decimal exponent from strconv 'e' output
func exponentOf(sci string) int {
	i := strings.LastIndexAny(sci, "eE")
	if i < 0 {
		return 0
	}
	exp, _ := strconv.Atoi(sci[i+1:])
	return exp
}

func formatError(message string) *mterror.Error {
	return mterrors.NewErrorBuilder(mterrors.ModuleStringx).
		Operation("format").
		Message(message).
		Code(mterror.CodeInvalidValue).
		Build()
}
