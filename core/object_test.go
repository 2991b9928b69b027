package core

import "testing"

// TestKinds verifies each object type reports its kind
func TestKinds(t *testing.T) {
	cases := []struct {
		obj  Object
		kind Kind
	}{
		{Null{}, KindNull},
		{Bool(true), KindBool},
		{Int(42), KindInt},
		{Real(1.5), KindReal},
		{String("abc"), KindString},
		{Name("Type"), KindName},
		{Array{}, KindArray},
		{Dict{}, KindDict},
		{NewStream(nil, nil), KindStream},
		{IndirectRef{Number: 3}, KindRef},
	}

	for _, c := range cases {
		if c.obj.Kind() != c.kind {
			t.Errorf("%T: Kind() = %v, expected %v", c.obj, c.obj.Kind(), c.kind)
		}
	}
}

// TestObjectStrings verifies the string forms of a few objects
func TestObjectStrings(t *testing.T) {
	if s := Name("MediaBox").String(); s != "/MediaBox" {
		t.Errorf("Name string = %q, expected /MediaBox", s)
	}
	if s := (IndirectRef{Number: 5, Generation: 1}).String(); s != "5 1 R" {
		t.Errorf("IndirectRef string = %q, expected 5 1 R", s)
	}
	if s := (Array{Int(0), Real(2.5)}).String(); s != "[0 2.5]" {
		t.Errorf("Array string = %q, expected [0 2.5]", s)
	}
}

// TestDictAccess tests the dictionary getters and mutators
func TestDictAccess(t *testing.T) {
	dict := Dict{
		"Type":   Name("Page"),
		"Rotate": Int(90),
		"Kids":   Array{IndirectRef{Number: 2}},
	}

	if name, ok := dict.GetName("Type"); !ok || name != "Page" {
		t.Errorf("GetName(Type) = %v, %v", name, ok)
	}
	if n, ok := dict.GetInt("Rotate"); !ok || n != 90 {
		t.Errorf("GetInt(Rotate) = %v, %v", n, ok)
	}
	if arr, ok := dict.GetArray("Kids"); !ok || arr.Len() != 1 {
		t.Errorf("GetArray(Kids) = %v, %v", arr, ok)
	}
	if _, ok := dict.GetInt("Type"); ok {
		t.Error("GetInt on a Name should report false")
	}
	if _, ok := dict.GetDict("Missing"); ok {
		t.Error("GetDict on a missing key should report false")
	}

	dict.Set("Count", Int(3))
	if !dict.Has("Count") {
		t.Error("expected Count after Set")
	}
	dict.Delete("Count")
	if dict.Has("Count") {
		t.Error("expected Count gone after Delete")
	}
}

// TestDictKeysSorted verifies Keys returns a deterministic order
func TestDictKeysSorted(t *testing.T) {
	dict := Dict{"C": Int(1), "A": Int(2), "B": Int(3)}
	keys := dict.Keys()
	expected := []string{"A", "B", "C"}
	for i, k := range expected {
		if keys[i] != k {
			t.Fatalf("Keys() = %v, expected %v", keys, expected)
		}
	}
}

// TestArrayNumberAt tests numeric extraction from arrays
func TestArrayNumberAt(t *testing.T) {
	arr := Array{Int(10), Real(20.5), Name("x")}

	if n, ok := arr.NumberAt(0); !ok || n != 10 {
		t.Errorf("NumberAt(0) = %v, %v", n, ok)
	}
	if n, ok := arr.NumberAt(1); !ok || n != 20.5 {
		t.Errorf("NumberAt(1) = %v, %v", n, ok)
	}
	if _, ok := arr.NumberAt(2); ok {
		t.Error("NumberAt on a Name should report false")
	}
	if _, ok := arr.NumberAt(5); ok {
		t.Error("NumberAt out of range should report false")
	}
	if arr.At(-1) != nil {
		t.Error("At(-1) should be nil")
	}
}

// TestStreamAppend tests the append-only stream payload
func TestStreamAppend(t *testing.T) {
	stream := NewStream(nil, nil)
	if stream.Dict == nil {
		t.Fatal("expected a dict on a stream built from nil")
	}

	stream.Append([]byte("q "))
	stream.Append([]byte("Q"))
	if string(stream.Bytes()) != "q Q" {
		t.Errorf("stream bytes = %q, expected %q", stream.Bytes(), "q Q")
	}
	if stream.Len() != 3 {
		t.Errorf("stream len = %d, expected 3", stream.Len())
	}
}

// TestRefIdentity verifies reference equality is identity
func TestRefIdentity(t *testing.T) {
	a := IndirectRef{Number: 7}
	b := IndirectRef{Number: 7}
	c := IndirectRef{Number: 7, Generation: 1}

	if a != b {
		t.Error("same number and generation should compare equal")
	}
	if a == c {
		t.Error("different generations should not compare equal")
	}
}
