// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// value is an order-preserving JSON value: *object, []value, string,
// json.Number, bool or nil.
type value any

type member struct {
	key string
	val value
}

// object keeps members in document order. Duplicate keys keep the position
// of the first occurrence and the value of the last one.
type object struct {
	members []member
}

func (o *object) get(key string) (value, bool) {
	if o == nil {
		return nil, false
	}
	for _, m := range o.members {
		if m.key == key {
			return m.val, true
		}
	}
	return nil, false
}

func isObject(v value) bool {
	_, ok := v.(*object)
	return ok
}

func (o *object) set(key string, v value) {
	for i := range o.members {
		if o.members[i].key == key {
			o.members[i].val = v
			return
		}
	}
	o.members = append(o.members, member{key: key, val: v})
}

// decodeValue reads exactly one JSON document.
func decodeValue(data []byte) (value, error) {
	if !json.Valid(data) {
		return nil, errors.New("invalid JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return readValue(dec, tok)
}

func readValue(dec *json.Decoder, tok json.Token) (value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case string, json.Number, bool, nil:
		return t, nil
	default:
		return nil, fmt.Errorf("unexpected token %T", tok)
	}
}

func readObject(dec *json.Decoder) (value, error) {
	obj := &object{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		v, err := readValue(dec, tok)
		if err != nil {
			return nil, err
		}
		obj.set(key, v)
	}
}

func readArray(dec *json.Decoder) (value, error) {
	arr := []value{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		v, err := readValue(dec, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// encodeValue renders v the way JSON.stringify(v, null, 2) does.
func encodeValue(v value) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, v, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// formatNumber prints n the way JavaScript prints a number. Values that
// overflow a float64 print as null.
func formatNumber(n json.Number) string {
	f, err := strconv.ParseFloat(n.String(), 64)
	if math.IsInf(f, 0) {
		return "null"
	}
	if err != nil {
		return n.String()
	}
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

func writeValue(b *strings.Builder, v value, level int) error {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case json.Number:
		b.WriteString(formatNumber(t))
	case string:
		return writeString(b, t)
	case []value:
		if len(t) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[")
		for i, item := range t {
			if i > 0 {
				b.WriteString(",")
			}
			newline(b, level+1)
			if err := writeValue(b, item, level+1); err != nil {
				return err
			}
		}
		newline(b, level)
		b.WriteString("]")
	case *object:
		if t == nil || len(t.members) == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteString("{")
		for i, m := range t.members {
			if i > 0 {
				b.WriteString(",")
			}
			newline(b, level+1)
			if err := writeString(b, m.key); err != nil {
				return err
			}
			b.WriteString(": ")
			if err := writeValue(b, m.val, level+1); err != nil {
				return err
			}
		}
		newline(b, level)
		b.WriteString("}")
	default:
		return fmt.Errorf("unsupported value %T", v)
	}
	return nil
}

func writeString(b *strings.Builder, s string) error {
	raw, err := json.MarshalNoEscape(s)
	if err != nil {
		return err
	}
	b.Write(raw)
	return nil
}

func newline(b *strings.Builder, level int) {
	b.WriteByte('\n')
	for i := 0; i < level; i++ {
		b.WriteString("  ")
	}
}

func valuesEqual(a, b value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case json.Number:
		y, ok := b.(json.Number)
		return ok && formatNumber(x) == formatNumber(y)
	case []value:
		y, ok := b.([]value)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valuesEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case *object:
		y, ok := b.(*object)
		if !ok || len(x.members) != len(y.members) {
			return false
		}
		for i := range x.members {
			if x.members[i].key != y.members[i].key || !valuesEqual(x.members[i].val, y.members[i].val) {
				return false
			}
		}
		return true
	}
	return false
}

func cloneValue(v value) value {
	switch t := v.(type) {
	case []value:
		out := make([]value, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case *object:
		out := &object{members: make([]member, len(t.members))}
		for i, m := range t.members {
			out.members[i] = member{key: m.key, val: cloneValue(m.val)}
		}
		return out
	}
	return v
}
