// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

// Property represents a single key value pair of an element.
type Property struct {
	Key   string
	Value Value
}

// Properties is an ordered list of properties with unique keys.
// The zero value is an empty list, ready to use.
type Properties struct {
	list []Property
}

// Len returns the number of properties in the list.
func (l *Properties) Len() int {
	return len(l.list)
}

// Set the given property if it already exists or append a new
// one otherwise. An existing key keeps its position but gets the new value,
// so the last write wins. Returns true if an existing property got overwritten.
func (l *Properties) Set(key string, val Value) bool {
	for i := range l.list {
		if l.list[i].Key == key {
			l.list[i].Value = val
			return true
		}
	}

	l.list = append(l.list, Property{Key: key, Value: val})

	return false
}

// Get returns the value for a given key, or nil and false if it does not exist.
func (l *Properties) Get(key string) (Value, bool) {
	for _, p := range l.list {
		if p.Key == key {
			return p.Value, true
		}
	}

	return nil, false
}

// Keys returns all keys in order of their first definition.
func (l *Properties) Keys() []string {
	keys := make([]string, 0, len(l.list))
	for _, p := range l.list {
		keys = append(keys, p.Key)
	}

	return keys
}

// Each calls f for every property in order.
func (l *Properties) Each(f func(key string, value Value)) {
	for _, p := range l.list {
		f(p.Key, p.Value)
	}
}

// All returns a copy of the properties in order.
func (l *Properties) All() []Property {
	return append([]Property(nil), l.list...)
}
