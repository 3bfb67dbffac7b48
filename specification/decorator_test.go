package specification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestChainOrder(t *testing.T) {
	var order []string
	trace := func(name string) Decorator[Mobile] {
		return DecoratorFunc[Mobile](func(spec Specification[Mobile]) Specification[Mobile] {
			return New[Mobile](func(ctx context.Context, m Mobile) bool {
				order = append(order, name)
				ok, _ := spec.IsSatisfiedBy(ctx, m)
				return ok
			})
		})
	}

	spec := Chain(brandIs(MI), trace("outer"), trace("inner"))
	assert.True(t, satisfied(t, spec, Mobile{Brand: MI}))
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	spec := Chain(brandIs(MI), Logged[Mobile](zap.New(core), "is-mi"))

	assert.True(t, satisfied(t, spec, Mobile{Brand: MI}))
	assert.False(t, satisfied(t, spec, Mobile{Brand: VIVO}))

	entries := logs.FilterMessage("specification evaluated").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "is-mi", entries[0].ContextMap()["specification"])
	assert.Equal(t, true, entries[0].ContextMap()["satisfied"])
	assert.Equal(t, false, entries[1].ContextMap()["satisfied"])

	// decorated specifications still compose
	assert.False(t, satisfied(t, spec.And(brandIs(VIVO)), Mobile{Brand: MI}))
}

func TestLoggedNilLogger(t *testing.T) {
	spec := Logged[Mobile](nil, "nop").Decorate(brandIs(MI))
	assert.True(t, satisfied(t, spec, Mobile{Brand: MI}))
}
