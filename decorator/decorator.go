package decorator

// Decorator wraps an object of type T and returns another T that adds
// behavior on top of the wrapped one.
type Decorator[T any] interface {
	// Decorate wraps obj, adding some functionality.
	Decorate(obj T) T
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[T any] func(obj T) T

// Decorate call f(obj).
func (f DecoratorFunc[T]) Decorate(obj T) T {
	return f(obj)
}

// Chain decorates obj so that the first decorator ends up as the outermost layer.
func Chain[T any](obj T, decorators ...Decorator[T]) T {
	for i := len(decorators) - 1; i >= 0; i-- {
		obj = decorators[i].Decorate(obj)
	}
	return obj
}

// Wrap decorates obj in reading order: the first decorator is applied first,
// so it ends up as the innermost layer and the last one as the outermost.
func Wrap[T any](obj T, decorators ...Decorator[T]) T {
	for _, d := range decorators {
		obj = d.Decorate(obj)
	}
	return obj
}
