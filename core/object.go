package core

import (
	"fmt"
	"strconv"
)

// Object is implemented by every value in the document graph.
type Object interface {
	Kind() Kind
	String() string
}

// Kind identifies the concrete type of an Object.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindReal
	KindString
	KindName
	KindArray
	KindDict
	KindStream
	KindRef
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindReal:
		return "Real"
	case KindString:
		return "String"
	case KindName:
		return "Name"
	case KindArray:
		return "Array"
	case KindDict:
		return "Dict"
	case KindStream:
		return "Stream"
	case KindRef:
		return "IndirectRef"
	}
	return "Unknown"
}

// Null is the null object.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) String() string { return "null" }

// Bool is a boolean object.
type Bool bool

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

// Int is an integer object.
type Int int64

func (i Int) Kind() Kind { return KindInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Real is a floating point object.
type Real float64

func (r Real) Kind() Kind { return KindReal }
func (r Real) String() string { return strconv.FormatFloat(float64(r), 'f', -1, 64) }

// String is a string object.
type String string

func (s String) Kind() Kind { return KindString }
func (s String) String() string { return "(" + string(s) + ")" }

// Name is a name object such as /Type or /MediaBox.
type Name string

func (n Name) Kind() Kind { return KindName }
func (n Name) String() string { return "/" + string(n) }

// IndirectRef is a stable reference to an object held in a registry.
// It is comparable; == is object-identity equality.
type IndirectRef struct {
	Number     int
	Generation int
}

func (r IndirectRef) Kind() Kind { return KindRef }
func (r IndirectRef) String() string {
	return fmt.Sprintf("%d %d R", r.Number, r.Generation)
}

// Number extracts the numeric value of an Int or Real object.
// The second result is false for any other object, including nil.
func Number(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Int:
		return float64(v), true
	case Real:
		return float64(v), true
	}
	return 0, false
}
