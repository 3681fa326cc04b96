package builder

import "context"

// Builder assembles a T step by step and returns it with Build.
type Builder[T any] interface {
	Build(ctx context.Context) (T, error)
}
