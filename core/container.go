package core

import (
	"sort"
	"strings"
)

// Array is an ordered sequence of objects.
type Array []Object

func (a Array) Kind() Kind { return KindArray }

func (a Array) String() string {
	parts := make([]string, len(a))
	for i, obj := range a {
		parts[i] = obj.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a) }

// At returns the element at index i, or nil when out of range.
func (a Array) At(i int) Object {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}

// NumberAt extracts the numeric value at index i.
// The second result is false when the index is out of range or the
// element is not an Int or Real.
func (a Array) NumberAt(i int) (float64, bool) {
	return Number(a.At(i))
}

// Dict is a keyed attribute container.
type Dict map[string]Object

func (d Dict) Kind() Kind { return KindDict }

func (d Dict) String() string {
	parts := make([]string, 0, len(d))
	for _, key := range d.Keys() {
		parts = append(parts, "/"+key+" "+d[key].String())
	}
	return "<<" + strings.Join(parts, " ") + ">>"
}

// Get returns the value for key, or nil when absent.
func (d Dict) Get(key string) Object {
	return d[key]
}

// Has reports whether key is present.
func (d Dict) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Set assigns a value to key.
func (d Dict) Set(key string, value Object) {
	d[key] = value
}

// Delete removes key.
func (d Dict) Delete(key string) {
	delete(d, key)
}

// Keys returns all keys in sorted order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetName returns the Name value for key.
func (d Dict) GetName(key string) (Name, bool) {
	n, ok := d[key].(Name)
	return n, ok
}

// GetInt returns the Int value for key.
func (d Dict) GetInt(key string) (Int, bool) {
	i, ok := d[key].(Int)
	return i, ok
}

// GetArray returns the Array value for key.
func (d Dict) GetArray(key string) (Array, bool) {
	a, ok := d[key].(Array)
	return a, ok
}

// GetDict returns the Dict value for key.
func (d Dict) GetDict(key string) (Dict, bool) {
	sub, ok := d[key].(Dict)
	return sub, ok
}

// GetRef returns the IndirectRef value for key.
func (d Dict) GetRef(key string) (IndirectRef, bool) {
	r, ok := d[key].(IndirectRef)
	return r, ok
}
