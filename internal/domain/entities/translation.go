package entities

import "strconv"

// Value is one node of a translation tree. The set of implementations is
// closed: String, Int, Float, Bool, Null and *Map.
type Value interface {
	Accept(v Visitor)
}

// Visitor receives exactly one call per visited value.
type Visitor interface {
	VisitString(s String)
	VisitInt(i Int)
	VisitFloat(f Float)
	VisitBool(b Bool)
	VisitNull()
	VisitMap(m *Map)
}

type (
	String string
	Int    int64
	Float  float64
	Bool   bool
	Null   struct{}
)

func (s String) Accept(v Visitor) { v.VisitString(s) }
func (i Int) Accept(v Visitor)    { v.VisitInt(i) }
func (f Float) Accept(v Visitor)  { v.VisitFloat(f) }
func (b Bool) Accept(v Visitor)   { v.VisitBool(b) }
func (Null) Accept(v Visitor)     { v.VisitNull() }

// Key identifies a map entry. Integer and string keys never compare equal,
// even when the string looks numeric.
type Key struct {
	str   string
	num   int64
	isInt bool
}

func IntKey(i int64) Key     { return Key{num: i, isInt: true} }
func StringKey(s string) Key { return Key{str: s} }

func (k Key) IsInt() bool { return k.isInt }
func (k Key) Int() int64  { return k.num }

func (k Key) String() string {
	if k.isInt {
		return strconv.FormatInt(k.num, 10)
	}
	return k.str
}

type Entry struct {
	Key   Key
	Value Value
}

// Map is an ordered mapping. The zero value is an empty map ready to use.
type Map struct {
	entries []Entry
	index   map[Key]int
}

func NewMap(entries ...Entry) *Map {
	m := &Map{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func (m *Map) Accept(v Visitor) { v.VisitMap(m) }

// Set stores value under key. An existing key keeps its position.
func (m *Map) Set(key Key, value Value) {
	if value == nil {
		value = Null{}
	}
	if m.index == nil {
		m.index = make(map[Key]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

func (m *Map) Get(key Key) (Value, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Range calls fn for each entry in order until fn returns false.
func (m *Map) Range(fn func(Entry) bool) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		if !fn(e) {
			return
		}
	}
}
