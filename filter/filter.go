package filter

import (
	"context"
	"iter"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/go-leo/solid/specification"
)

// Filter applies a Specification over a sequence of items.
type Filter[T any] interface {
	// Filter lazily yields the items satisfying spec, in their original order.
	// The returned sequence can be ranged over again as long as items can.
	// Evaluation stops at the first failure, which is yielded together with the item
	// that caused it (or the zero value for context errors).
	Filter(ctx context.Context, items iter.Seq[T], spec specification.Specification[T]) iter.Seq2[T, error]
}

var _ Filter[any] = (*filter[any])(nil)

type filter[T any] struct {
	options *option
}

// New returns a Filter. By default items are evaluated one at a time.
func New[T any](opts ...Option) Filter[T] {
	return &filter[T]{options: newOption(opts...)}
}

func (f *filter[T]) Filter(ctx context.Context, items iter.Seq[T], spec specification.Specification[T]) iter.Seq2[T, error] {
	if f.options.Pool != nil {
		return f.parallel(ctx, items, spec)
	}
	return f.serial(ctx, items, spec)
}

func (f *filter[T]) serial(ctx context.Context, items iter.Seq[T], spec specification.Specification[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		if spec == nil {
			yield(zero, ErrSpecificationNil)
			return
		}
		var seen, matched int
		for item := range items {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			seen++
			ok, err := spec.IsSatisfiedBy(ctx, item)
			if err != nil {
				f.options.Logger.Debug("filter failed", zap.Int("index", seen-1), zap.Error(err))
				yield(item, err)
				return
			}
			if !ok {
				continue
			}
			matched++
			if !yield(item, nil) {
				return
			}
		}
		f.options.Logger.Debug("filter done", zap.Int("seen", seen), zap.Int("matched", matched))
	}
}

// parallel evaluates every item on the pool, then yields the matches in input order.
func (f *filter[T]) parallel(ctx context.Context, items iter.Seq[T], spec specification.Specification[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		if spec == nil {
			yield(zero, ErrSpecificationNil)
			return
		}
		if err := ctx.Err(); err != nil {
			yield(zero, err)
			return
		}
		var all []T
		for item := range items {
			all = append(all, item)
		}
		satisfied := make([]bool, len(all))
		errs := make([]error, len(all))
		var wg sync.WaitGroup
		for i, item := range all {
			wg.Add(1)
			err := f.options.Pool.Go(func() {
				defer wg.Done()
				if err := ctx.Err(); err != nil {
					errs[i] = err
					return
				}
				satisfied[i], errs[i] = spec.IsSatisfiedBy(ctx, item)
			})
			if err != nil {
				errs[i] = err
				wg.Done()
			}
		}
		wg.Wait()

		var result *multierror.Error
		for _, err := range errs {
			if err != nil {
				result = multierror.Append(result, err)
			}
		}
		if err := result.ErrorOrNil(); err != nil {
			f.options.Logger.Debug("filter failed", zap.Int("failures", result.Len()), zap.Error(err))
			yield(zero, err)
			return
		}
		for i, item := range all {
			if satisfied[i] && !yield(item, nil) {
				return
			}
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var items []T
	for item, err := range seq {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Slice filters items with spec and returns the matches in their original order.
// items is never modified.
func Slice[T any](ctx context.Context, items []T, spec specification.Specification[T], opts ...Option) ([]T, error) {
	return Collect(New[T](opts...).Filter(ctx, Values(items), spec))
}

// Values returns a restartable sequence over items.
func Values[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
