package php

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
)

// parseLiteral evaluates the subset of PHP that RenderLiteral emits. It is the
// reference reader for the round-trip tests.
func parseLiteral(s string) (entities.Value, error) {
	p := &literalParser{s: s}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("trailing input at %d: %q", p.pos, p.s[p.pos:])
	}
	return v, nil
}

type literalParser struct {
	s   string
	pos int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.s) && strings.IndexByte(" \t\r\n", p.s[p.pos]) >= 0 {
		p.pos++
	}
}

func (p *literalParser) consume(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.s[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *literalParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *literalParser) value() (entities.Value, error) {
	switch {
	case p.consume("array ("):
		return p.array()
	case p.consume("NULL"):
		return entities.Null{}, nil
	case p.consume("true"):
		return entities.Bool(true), nil
	case p.consume("false"):
		return entities.Bool(false), nil
	case p.consume("-INF"):
		return entities.Float(math.Inf(-1)), nil
	case p.consume("INF"):
		return entities.Float(math.Inf(1)), nil
	case p.consume("NAN"):
		return entities.Float(math.NaN()), nil
	case p.peek() == '\'':
		s, err := p.str()
		return entities.String(s), err
	default:
		return p.number()
	}
}

func (p *literalParser) array() (entities.Value, error) {
	m := entities.NewMap()
	for {
		if p.consume(")") {
			return m, nil
		}
		var key entities.Key
		if p.peek() == '\'' {
			s, err := p.str()
			if err != nil {
				return nil, err
			}
			key = entities.StringKey(s)
		} else {
			n, err := p.number()
			if err != nil {
				return nil, err
			}
			i, ok := n.(entities.Int)
			if !ok {
				return nil, fmt.Errorf("non-integer key %v at %d", n, p.pos)
			}
			key = entities.IntKey(int64(i))
		}
		if !p.consume("=>") {
			return nil, fmt.Errorf("expected => at %d", p.pos)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
		if !p.consume(",") {
			return nil, fmt.Errorf("expected , at %d", p.pos)
		}
	}
}

func (p *literalParser) str() (string, error) {
	p.skipSpace()
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.s) && (p.s[p.pos+1] == '\\' || p.s[p.pos+1] == '\''):
			b.WriteByte(p.s[p.pos+1])
			p.pos += 2
		case c == '\'':
			p.pos++
			if rest := nulLiteral[1:]; strings.HasPrefix(p.s[p.pos:], rest) {
				b.WriteByte(0)
				p.pos += len(rest)
				continue
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", fmt.Errorf("unterminated string")
}

func (p *literalParser) number() (entities.Value, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) && strings.IndexByte("+-0123456789.E", p.s[p.pos]) >= 0 {
		p.pos++
	}
	tok := p.s[start:p.pos]
	if tok == "-9223372036854775807-1" {
		return entities.Int(math.MinInt64), nil
	}
	if strings.ContainsAny(tok, ".E") {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("float %q: %w", tok, err)
		}
		return entities.Float(f), nil
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("int %q at %d: %w", tok, start, err)
	}
	return entities.Int(i), nil
}
