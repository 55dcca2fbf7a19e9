package singleton

import "sync"

// Lazy holds a value that is constructed on first Get.
//
// ctor runs at most once, even under concurrent Get calls. Every Get returns
// the same pointer.
type Lazy[T any] struct {
	once sync.Once
	ctor func() *T
	val  *T
}

// NewLazy returns a cell that will call ctor on first Get.
func NewLazy[T any](ctor func() *T) *Lazy[T] {
	return &Lazy[T]{ctor: ctor}
}

// Get returns the shared value, constructing it if needed.
func (l *Lazy[T]) Get() *T {
	l.once.Do(func() {
		l.val = l.ctor()
	})
	return l.val
}
