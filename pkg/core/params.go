package core

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Param is a single key/value pair in a parameter set.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter set. Unlike url.Values it preserves
// insertion order, which matters because the signature is computed over
// the serialized form and the server verifies it against the exact
// string it receives. Setting an existing key replaces the value in
// place without moving it.
type Params struct {
	pairs []Param
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{}
}

// Set stores a string value, replacing any existing value for the key
// while keeping its original position.
func (p *Params) Set(key, value string) *Params {
	for i := range p.pairs {
		if p.pairs[i].Key == key {
			p.pairs[i].Value = value
			return p
		}
	}
	p.pairs = append(p.pairs, Param{Key: key, Value: value})
	return p
}

// SetInt stores an integer value.
func (p *Params) SetInt(key string, value int64) *Params {
	return p.Set(key, strconv.FormatInt(value, 10))
}

// SetBool stores a boolean value as "true" or "false".
func (p *Params) SetBool(key string, value bool) *Params {
	return p.Set(key, strconv.FormatBool(value))
}

// SetDecimal stores a decimal value in its exact string form.
func (p *Params) SetDecimal(key string, value *apd.Decimal) *Params {
	return p.Set(key, value.Text('f'))
}

// SetStrings stores a list value in the JSON array form the exchange
// expects for parameters such as "symbols".
func (p *Params) SetStrings(key string, values []string) *Params {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return p.Set(key, "["+strings.Join(quoted, ",")+"]")
}

// Get returns the value for the key and whether it is present.
func (p *Params) Get(key string) (string, bool) {
	for i := range p.pairs {
		if p.pairs[i].Key == key {
			return p.pairs[i].Value, true
		}
	}
	return "", false
}

// Has reports whether the key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Del removes the key if present, preserving the order of the rest.
func (p *Params) Del(key string) *Params {
	for i := range p.pairs {
		if p.pairs[i].Key == key {
			p.pairs = append(p.pairs[:i], p.pairs[i+1:]...)
			return p
		}
	}
	return p
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, len(p.pairs))
	for i := range p.pairs {
		keys[i] = p.pairs[i].Key
	}
	return keys
}

// Pairs returns the parameters in insertion order.
func (p *Params) Pairs() []Param {
	out := make([]Param, len(p.pairs))
	copy(out, p.pairs)
	return out
}

// Clone returns an independent copy with the same order.
func (p *Params) Clone() *Params {
	c := &Params{pairs: make([]Param, len(p.pairs))}
	copy(c.pairs, p.pairs)
	return c
}

// Encode serializes the parameters as a query string in insertion
// order. This is the canonical form: the same bytes are signed and
// transmitted, so it must never be re-sorted or re-encoded downstream.
func (p *Params) Encode() string {
	if len(p.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.pairs[i].Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.pairs[i].Value))
	}
	return b.String()
}
