package models

// ConstraintMode discriminates the three forms a desired attribute can take.
type ConstraintMode int

const (
	// ConstraintAny places no restriction on the attribute.
	ConstraintAny ConstraintMode = iota
	// ConstraintExactly requires one specific value.
	ConstraintExactly
	// ConstraintOneOf accepts any value from an explicit allow-list.
	ConstraintOneOf
)

// Constraint is a tagged union over a desired room attribute: unconstrained,
// pinned to a single value, or limited to an allow-list. The zero value is
// unconstrained, so desired criteria deserialised from older stored shapes
// that lack an attribute keep matching everything.
type Constraint[T comparable] struct {
	Mode  ConstraintMode
	Value T
	Set   []T
}

// Any returns an unconstrained Constraint.
func Any[T comparable]() Constraint[T] {
	return Constraint[T]{Mode: ConstraintAny}
}

// Exactly returns a Constraint pinned to a single value.
func Exactly[T comparable](v T) Constraint[T] {
	return Constraint[T]{Mode: ConstraintExactly, Value: v}
}

// OneOf returns a Constraint limited to the given allow-list. An empty
// allow-list degrades to unconstrained when evaluated, matching the
// behaviour of a "multiple" selection submitted without any choices.
func OneOf[T comparable](values ...T) Constraint[T] {
	return Constraint[T]{Mode: ConstraintOneOf, Set: values}
}

// Allows reports whether the candidate value satisfies the constraint.
func (c Constraint[T]) Allows(v T) bool {
	switch c.Mode {
	case ConstraintExactly:
		return v == c.Value
	case ConstraintOneOf:
		if len(c.Set) == 0 {
			return true
		}
		for _, allowed := range c.Set {
			if v == allowed {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// IsAny reports whether the constraint places no restriction, either
// explicitly or through an empty allow-list.
func (c Constraint[T]) IsAny() bool {
	return c.Mode == ConstraintAny || (c.Mode == ConstraintOneOf && len(c.Set) == 0)
}
