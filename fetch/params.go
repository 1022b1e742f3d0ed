package fetch

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Params is a string-keyed parameter set that remembers insertion order.
// The order is kept both in query strings and in JSON bodies. Setting an
// existing key replaces its value in place.
type Params struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewParams builds Params from alternating key/value pairs. Pairs whose key
// is not a string are skipped.
//
//	fetch.NewParams("id", 5, "tags", []string{"a", "b"})
func NewParams(kvs ...any) *Params {
	p := &Params{m: orderedmap.New[string, any]()}
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			p.m.Set(key, kvs[i+1])
		}
	}
	return p
}

// Set stores value under key and returns p for chaining.
func (p *Params) Set(key string, value any) *Params {
	p.init()
	p.m.Set(key, value)
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil || p.m == nil {
		return nil, false
	}
	return p.m.Get(key)
}

// Delete removes key and reports whether it was present.
func (p *Params) Delete(key string) bool {
	if p == nil || p.m == nil {
		return false
	}
	_, ok := p.m.Delete(key)
	return ok
}

// Len returns the number of keys. A nil Params has none.
func (p *Params) Len() int {
	if p == nil || p.m == nil {
		return 0
	}
	return p.m.Len()
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, p.Len())
	p.Each(func(k string, _ any) { keys = append(keys, k) })
	return keys
}

// Each calls fn for every pair in insertion order.
func (p *Params) Each(fn func(key string, value any)) {
	if p == nil || p.m == nil {
		return
	}
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// MarshalJSON writes the pairs as a JSON object in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p == nil || p.m == nil {
		return []byte("{}"), nil
	}
	return p.m.MarshalJSON()
}

// UnmarshalJSON reads a JSON object, keeping its top-level key order.
func (p *Params) UnmarshalJSON(data []byte) error {
	p.init()
	return p.m.UnmarshalJSON(data)
}

func (p *Params) init() {
	if p.m == nil {
		p.m = orderedmap.New[string, any]()
	}
}
