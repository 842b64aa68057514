package php

import (
	"math"
	"strconv"
	"strings"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
)

// Decimal exponent bounds outside of which floats switch to E notation.
const (
	minFixedExponent = -3
	maxFixedExponent = 17
)

const nulLiteral = `' . "\0" . '`

// RenderLiteral renders v as a PHP expression in the layout of var_export.
// Evaluating the result in PHP yields a value equal to v.
func RenderLiteral(v entities.Value) string {
	w := &literalWriter{level: 1}
	v.Accept(w)
	return w.b.String()
}

type literalWriter struct {
	b     strings.Builder
	level int
}

var _ entities.Visitor = (*literalWriter)(nil)

func (w *literalWriter) VisitString(s entities.String) {
	w.quote(string(s))
}

func (w *literalWriter) VisitInt(i entities.Int) {
	w.int(int64(i))
}

func (w *literalWriter) VisitFloat(f entities.Float) {
	w.b.WriteString(formatFloat(float64(f)))
}

func (w *literalWriter) VisitBool(b entities.Bool) {
	if b {
		w.b.WriteString("true")
		return
	}
	w.b.WriteString("false")
}

func (w *literalWriter) VisitNull() {
	w.b.WriteString("NULL")
}

func (w *literalWriter) VisitMap(m *entities.Map) {
	if w.level > 1 {
		w.b.WriteByte('\n')
		w.spaces(w.level - 1)
	}
	w.b.WriteString("array (\n")
	m.Range(func(e entities.Entry) bool {
		w.spaces(w.level + 1)
		if e.Key.IsInt() {
			w.int(e.Key.Int())
		} else {
			w.quote(e.Key.String())
		}
		w.b.WriteString(" => ")
		w.level += 2
		e.Value.Accept(w)
		w.level -= 2
		w.b.WriteString(",\n")
		return true
	})
	if w.level > 1 {
		w.spaces(w.level - 1)
	}
	w.b.WriteByte(')')
}

func (w *literalWriter) spaces(n int) {
	for j := 0; j < n; j++ {
		w.b.WriteByte(' ')
	}
}

// int writes i; math.MinInt64 has no positive counterpart, so PHP spells it
// as an expression.
func (w *literalWriter) int(i int64) {
	if i == math.MinInt64 {
		w.b.WriteString("-9223372036854775807-1")
		return
	}
	w.b.WriteString(strconv.FormatInt(i, 10))
}

// quote writes s single-quoted. Only \ and ' are escaped; NUL bytes are
// spliced in as a double-quoted "\0".
func (w *literalWriter) quote(s string) {
	w.b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '\'':
			w.b.WriteByte('\\')
			w.b.WriteByte(c)
		case 0:
			w.b.WriteString(nulLiteral)
		default:
			w.b.WriteByte(c)
		}
	}
	w.b.WriteByte('\'')
}

// formatFloat uses the shortest digits that round-trip, like PHP with
// serialize_precision=-1, and always keeps a fractional part on finite values.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}

	sign := ""
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	e, _ := strconv.Atoi(exp)
	digits := strings.Replace(mantissa, ".", "", 1)

	if decpt := e + 1; decpt < minFixedExponent || decpt > maxFixedExponent {
		var b strings.Builder
		b.WriteString(sign)
		b.WriteByte(digits[0])
		b.WriteByte('.')
		if len(digits) > 1 {
			b.WriteString(digits[1:])
		} else {
			b.WriteByte('0')
		}
		b.WriteByte('E')
		if e < 0 {
			b.WriteByte('-')
			e = -e
		} else {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(e))
		return b.String()
	}

	out := sign + strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
