package prototype_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/shashforge/creational/prototype"
	"github.com/shashforge/creational/shape"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newShapeRegistry(t *testing.T) *prototype.Registry[shape.Shape] {
	t.Helper()
	reg := prototype.New[shape.Shape]()
	require.NoError(t, reg.Register("circle", &shape.Circle{Radius: 1.0}))
	require.NoError(t, reg.Register("square", &shape.Square{Side: 2.0}))
	return reg
}

func TestRegistry_Clone_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()
	reg := newShapeRegistry(t)

	p1, err := reg.Clone("circle")
	require.NoError(t, err)
	p2, err := reg.Clone("circle")
	require.NoError(t, err)

	// Distinct instances, equal values.
	assert.NotSame(t, p1, p2)
	c1 := p1.(*shape.Circle)
	c2 := p2.(*shape.Circle)
	assert.Equal(t, 1.0, c1.Radius)
	assert.Equal(t, 1.0, c2.Radius)

	// Mutating one copy never affects the other.
	c1.Radius = 7
	assert.Equal(t, 1.0, c2.Radius)
}

func TestRegistry_Clone_PreservesVariant(t *testing.T) {
	t.Parallel()
	reg := newShapeRegistry(t)

	s, err := reg.Clone("square")
	require.NoError(t, err)
	require.IsType(t, &shape.Square{}, s)
}

func TestRegistry_Clone_NeverExposesStored(t *testing.T) {
	t.Parallel()
	reg := prototype.New[shape.Shape]()
	require.NoError(t, reg.Register("hexagon", &shape.Hexagon{Side: 2, Labels: []string{"n", "ne", "se", "s", "sw", "nw"}}))

	first, err := reg.Clone("hexagon")
	require.NoError(t, err)
	first.(*shape.Hexagon).Labels[0] = "mutated"
	first.(*shape.Hexagon).Side = 99

	second, err := reg.Clone("hexagon")
	require.NoError(t, err)
	want := &shape.Hexagon{Side: 2, Labels: []string{"n", "ne", "se", "s", "sw", "nw"}}
	if diff := cmp.Diff(want, second); diff != "" {
		t.Errorf("stored prototype was mutated through a clone (-want +got):\n%s", diff)
	}
}

func TestRegistry_Clone_NotFound(t *testing.T) {
	t.Parallel()
	reg := newShapeRegistry(t)

	s, err := reg.Clone("pentagon")
	require.ErrorIs(t, err, prototype.ErrNotFound)
	assert.ErrorContains(t, err, `"pentagon"`)
	assert.Nil(t, s)
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	t.Parallel()
	reg := newShapeRegistry(t)

	err := reg.Register("circle", &shape.Circle{Radius: 3})
	require.ErrorIs(t, err, prototype.ErrDuplicateKey)

	// The original registration is untouched.
	s, err := reg.Clone("circle")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.(*shape.Circle).Radius)
}

func TestRegistry_Replace_Overwrites(t *testing.T) {
	t.Parallel()
	reg := newShapeRegistry(t)

	require.NoError(t, reg.Replace("circle", &shape.Circle{Radius: 3}))
	s, err := reg.Clone("circle")
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.(*shape.Circle).Radius)

	// Replace also inserts missing keys.
	require.NoError(t, reg.Replace("triangle", &shape.Triangle{A: 3, B: 4, C: 5}))
	assert.Equal(t, 3, reg.Len())
}

func TestRegistry_Register_InvalidInput(t *testing.T) {
	t.Parallel()
	reg := prototype.New[shape.Shape]()

	require.ErrorIs(t, reg.Register("", &shape.Circle{Radius: 1}), prototype.ErrEmptyKey)
	require.ErrorIs(t, reg.Register("nil", nil), prototype.ErrNilPrototype)
	require.ErrorIs(t, reg.Replace("", &shape.Circle{Radius: 1}), prototype.ErrEmptyKey)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Freeze(t *testing.T) {
	t.Parallel()
	reg := newShapeRegistry(t)
	require.False(t, reg.Frozen())

	reg.Freeze()
	require.True(t, reg.Frozen())

	require.ErrorIs(t, reg.Register("triangle", &shape.Triangle{A: 3, B: 4, C: 5}), prototype.ErrFrozen)
	require.ErrorIs(t, reg.Replace("circle", &shape.Circle{Radius: 9}), prototype.ErrFrozen)

	// Lookups keep working after Freeze; freezing twice is a no-op.
	reg.Freeze()
	s, err := reg.Clone("circle")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.(*shape.Circle).Radius)
}

func TestRegistry_KeysAndLen(t *testing.T) {
	t.Parallel()
	reg := newShapeRegistry(t)

	assert.Equal(t, []string{"circle", "square"}, reg.Keys())
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_ConcurrentClones(t *testing.T) {
	t.Parallel()
	reg := newShapeRegistry(t)
	reg.Freeze()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s, err := reg.Clone("circle")
				assert.NoError(t, err)
				assert.Equal(t, 1.0, s.(*shape.Circle).Radius)
			}
		}()
	}
	wg.Wait()
}
