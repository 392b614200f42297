package schema

import (
	"fmt"
	"maps"
	"slices"
	"sync/atomic"
)

// Registry resolves (entity, variant) pairs to schemas. The full set of
// variants is replaced atomically by Swap, so a request never observes a
// half-updated configuration.
type Registry struct {
	current atomic.Pointer[map[string]*Variants]
}

// NewRegistry returns a registry serving sets.
func NewRegistry(sets ...*Variants) (*Registry, error) {
	r := &Registry{}
	if err := r.Swap(sets...); err != nil {
		return nil, err
	}
	return r, nil
}

// Swap publishes a new set of variants. On error the current set stays in place.
func (r *Registry) Swap(sets ...*Variants) error {
	next := make(map[string]*Variants, len(sets))
	for _, v := range sets {
		if v == nil {
			continue
		}
		if _, dup := next[v.Entity]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateEntity, v.Entity)
		}
		next[v.Entity] = v
	}
	r.current.Store(&next)
	return nil
}

func (r *Registry) load() map[string]*Variants {
	if m := r.current.Load(); m != nil {
		return *m
	}
	return nil
}

// Entities returns the registered entity names in sorted order.
func (r *Registry) Entities() []string {
	return slices.Sorted(maps.Keys(r.load()))
}

func (r *Registry) Variants(entity string) (*Variants, error) {
	v, ok := r.load()[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return v, nil
}

// Schema returns the input schema for entity and variant.
func (r *Registry) Schema(entity string, variant Variant) (*Schema, error) {
	v, err := r.Variants(entity)
	if err != nil {
		return nil, err
	}
	s, ok := v.Schema(variant)
	if !ok {
		return nil, fmt.Errorf("%w: %q for %q", ErrUnknownVariant, variant, entity)
	}
	return s, nil
}

// Shape returns the output contract for entity and variant.
func (r *Registry) Shape(entity string, variant Variant) (Shape, error) {
	v, err := r.Variants(entity)
	if err != nil {
		return Shape{}, err
	}
	s, ok := v.Shape(variant)
	if !ok {
		return Shape{}, fmt.Errorf("%w: %q for %q", ErrUnknownVariant, variant, entity)
	}
	return s, nil
}

// Project resolves the output shape and projects src onto it.
func (r *Registry) Project(entity string, variant Variant, src map[string]any) (map[string]any, error) {
	s, err := r.Shape(entity, variant)
	if err != nil {
		return nil, err
	}
	return s.Project(src), nil
}

// Validate resolves the schema and validates raw against it. The error is
// non-nil only when the schema cannot be resolved; validation failures are
// reported in the Result.
func (r *Registry) Validate(entity string, variant Variant, raw any) (Result, error) {
	s, err := r.Schema(entity, variant)
	if err != nil {
		return Result{}, err
	}
	return s.Validate(raw), nil
}
