package specification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Mobile struct {
	Brand string
}

const (
	MI      = "xiaomi"
	VIVO    = "vivo"
	OPPO    = "oppo"
	Samsung = "samsung"
)

func brandIs(brand string) Specification[Mobile] {
	return New[Mobile](func(_ context.Context, t Mobile) bool {
		return t.Brand == brand
	})
}

func satisfied(t *testing.T, spec Specification[Mobile], m Mobile) bool {
	ok, err := spec.IsSatisfiedBy(context.Background(), m)
	require.NoError(t, err)
	return ok
}

func TestSpecification(t *testing.T) {
	isMIMobile := brandIs(MI)
	isVIVOMobile := brandIs(VIVO)
	isOPPOMobile := brandIs(OPPO)
	isSamSungMobile := brandIs(Samsung)

	a := Mobile{Brand: MI}
	assert.True(t, satisfied(t, isMIMobile, a))
	assert.False(t, satisfied(t, isVIVOMobile, a))
	assert.False(t, satisfied(t, isOPPOMobile, a))
	assert.False(t, satisfied(t, isSamSungMobile, a))

	assert.False(t, satisfied(t, And(isMIMobile, isVIVOMobile), a))
	assert.False(t, satisfied(t, And(isOPPOMobile, isSamSungMobile), a))

	assert.True(t, satisfied(t, Or(isMIMobile, isVIVOMobile), a))
	assert.False(t, satisfied(t, Or(isOPPOMobile, isSamSungMobile), a))

	assert.False(t, satisfied(t, Not(isMIMobile), a))
	assert.True(t, satisfied(t, Not(isVIVOMobile), a))
	assert.True(t, satisfied(t, isOPPOMobile.Not(), a))
	assert.True(t, satisfied(t, isSamSungMobile.Not(), a))

	assert.True(t, satisfied(t, isVIVOMobile.Or(isMIMobile).And(isOPPOMobile.Not()), a))
}

func TestAndFlattens(t *testing.T) {
	a, b, c := brandIs(MI), brandIs(VIVO), brandIs(OPPO)

	spec := a.And(b).And(c)
	composite, ok := spec.(Composite[Mobile])
	require.True(t, ok)
	assert.Len(t, composite.Children(), 3)

	spec = a.And(b.And(c))
	assert.Len(t, spec.(Composite[Mobile]).Children(), 3)

	left := And(a, b)
	right := And(c, a)
	assert.Len(t, And(left, right).(Composite[Mobile]).Children(), 4)

	// a disjunction is a leaf for a conjunction
	assert.Len(t, And(a, Or(b, c)).(Composite[Mobile]).Children(), 2)
}

func TestChildrenIsACopy(t *testing.T) {
	spec, err := Conjunction(brandIs(MI), brandIs(VIVO))
	require.NoError(t, err)
	composite := spec.(Composite[Mobile])
	children := composite.Children()
	children[0] = nil
	assert.NotNil(t, composite.Children()[0])
}

func TestConjunctionCopiesInput(t *testing.T) {
	specs := []Specification[Mobile]{brandIs(MI), brandIs(MI)}
	spec, err := Conjunction(specs...)
	require.NoError(t, err)
	specs[1] = brandIs(VIVO)
	assert.True(t, satisfied(t, spec, Mobile{Brand: MI}))
}

func TestInvalidComposition(t *testing.T) {
	_, err := Conjunction[Mobile]()
	assert.ErrorIs(t, err, ErrInvalidComposition)

	_, err = Disjunction[Mobile]()
	assert.ErrorIs(t, err, ErrInvalidComposition)

	_, err = Conjunction(brandIs(MI), nil)
	assert.ErrorIs(t, err, ErrInvalidComposition)
	assert.Equal(t, "child 1 is nil: "+ErrInvalidComposition.Error(), err.Error())

	_, err = Disjunction[Mobile](nil, brandIs(MI))
	assert.ErrorIs(t, err, ErrInvalidComposition)
	assert.Equal(t, "child 0 is nil: "+ErrInvalidComposition.Error(), err.Error())

	assert.Panics(t, func() { And(brandIs(MI), nil) })
	assert.Panics(t, func() { brandIs(MI).Or(nil) })
	assert.Panics(t, func() { Not[Mobile](nil) })
	assert.Panics(t, func() { New[Mobile](nil) })
}

func TestSingleChildConjunction(t *testing.T) {
	spec, err := Conjunction(brandIs(MI))
	require.NoError(t, err)
	assert.True(t, satisfied(t, spec, Mobile{Brand: MI}))
	assert.False(t, satisfied(t, spec, Mobile{Brand: VIVO}))
}

func TestConjunctionShortCircuits(t *testing.T) {
	var calls int
	counting := New[Mobile](func(context.Context, Mobile) bool {
		calls++
		return true
	})
	spec := brandIs(VIVO).And(counting)

	assert.False(t, satisfied(t, spec, Mobile{Brand: MI}))
	assert.Equal(t, 0, calls)

	assert.True(t, satisfied(t, spec, Mobile{Brand: VIVO}))
	assert.Equal(t, 1, calls)
}

type failing struct {
	operators[Mobile]
	err error
}

func newFailing(err error) *failing {
	f := &failing{err: err}
	f.operators = operators[Mobile]{self: f}
	return f
}

func (f *failing) IsSatisfiedBy(context.Context, Mobile) (bool, error) {
	return false, f.err
}

func TestErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	ctx := context.Background()
	a := Mobile{Brand: MI}

	_, err := brandIs(MI).And(newFailing(boom)).IsSatisfiedBy(ctx, a)
	assert.ErrorIs(t, err, boom)

	_, err = brandIs(VIVO).Or(newFailing(boom)).IsSatisfiedBy(ctx, a)
	assert.ErrorIs(t, err, boom)

	_, err = newFailing(boom).Not().IsSatisfiedBy(ctx, a)
	assert.ErrorIs(t, err, boom)

	// short circuit never reaches the failing child
	ok, err := brandIs(VIVO).And(newFailing(boom)).IsSatisfiedBy(ctx, a)
	assert.NoError(t, err)
	assert.False(t, ok)
}
