// Package core provides the object model for the document graph.
//
// Every value stored in the graph satisfies the [Object] interface.
// The concrete types mirror the eight basic PDF object kinds:
//
//   - [Null] - the null object
//   - [Bool] - booleans
//   - [Int] - integers
//   - [Real] - floating point numbers
//   - [String] - string objects
//   - [Name] - name objects (e.g. /Type, /MediaBox)
//   - [Array] - ordered sequences of objects
//   - [Dict] - keyed attribute containers
//
// Additionally, [Stream] couples a dictionary with an append-only byte
// payload, and [IndirectRef] is a stable reference to an object held
// in a registry. IndirectRef is a comparable value type; two
// references denote the same object identity exactly when they
// compare equal with ==.
//
// # Dictionaries
//
// [Dict] is the keyed-attribute storage that page attribute
// resolution is built on. Lookups that miss return nil (or a false
// second result from the typed getters); writes are single key
// assignments:
//
//	dict := core.Dict{"Type": core.Name("Page")}
//	dict.Set("Rotate", core.Int(90))
//	if n, ok := dict.GetInt("Rotate"); ok { ... }
package core
