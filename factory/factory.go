package factory

import "context"

// Factory creates a T from the parameters P.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}
