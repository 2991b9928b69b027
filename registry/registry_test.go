package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docukit/folio/core"
)

func TestRegistryAddGet(t *testing.T) {
	reg := New()

	dict := core.Dict{"Type": core.Name("Page")}
	ref := reg.Add(dict)
	assert.Equal(t, 1, ref.Number)

	got, err := reg.Get(ref)
	require.NoError(t, err)
	assert.Equal(t, core.Object(dict), got)

	ref2 := reg.Add(core.Int(7))
	assert.Equal(t, 2, ref2.Number)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryGetMissing(t *testing.T) {
	reg := New()

	_, err := reg.Get(core.IndirectRef{Number: 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestRegistryPut(t *testing.T) {
	reg := New()

	ref := core.IndirectRef{Number: 10}
	reg.Put(ref, core.Name("ten"))
	require.True(t, reg.Has(ref))

	// Add must allocate above manually installed numbers.
	next := reg.Add(core.Name("eleven"))
	assert.Equal(t, 11, next.Number)
}

func TestResolverFollowsChains(t *testing.T) {
	reg := New()

	target := core.Dict{"Type": core.Name("Pages")}
	refA := reg.Add(target)
	refB := reg.Add(refA) // B -> A -> dict

	res := NewResolver(reg)

	obj, err := res.Resolve(refB)
	require.NoError(t, err)
	assert.Equal(t, core.Object(target), obj)

	// Non-references resolve to themselves; nil resolves to nil.
	obj, err = res.Resolve(core.Int(5))
	require.NoError(t, err)
	assert.Equal(t, core.Object(core.Int(5)), obj)

	obj, err = res.Resolve(nil)
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestResolverCycle(t *testing.T) {
	reg := New()

	refA := core.IndirectRef{Number: 1}
	refB := core.IndirectRef{Number: 2}
	reg.Put(refA, refB)
	reg.Put(refB, refA)

	res := NewResolver(reg)
	_, err := res.Resolve(refA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular reference")
}

func TestResolverMaxDepth(t *testing.T) {
	reg := New()

	// A chain of 5 references ending at an Int.
	prev := core.Object(core.Int(1))
	for i := 0; i < 5; i++ {
		prev = reg.Add(prev)
	}

	res := NewResolver(reg, WithMaxDepth(3))
	_, err := res.Resolve(prev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth")
}

func TestResolverMissingTarget(t *testing.T) {
	reg := New()
	res := NewResolver(reg)

	_, err := res.Resolve(core.IndirectRef{Number: 42})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestResolveDictAndArray(t *testing.T) {
	reg := New()

	dictRef := reg.Add(core.Dict{"K": core.Int(1)})
	arrRef := reg.Add(core.Array{core.Int(1), core.Int(2)})

	res := NewResolver(reg)

	dict, err := res.ResolveDict(dictRef)
	require.NoError(t, err)
	assert.True(t, dict.Has("K"))

	arr, err := res.ResolveArray(arrRef)
	require.NoError(t, err)
	assert.Equal(t, 2, arr.Len())

	_, err = res.ResolveDict(arrRef)
	assert.Error(t, err)

	_, err = res.ResolveArray(dictRef)
	assert.Error(t, err)
}
