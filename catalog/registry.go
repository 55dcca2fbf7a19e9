// Package catalog keeps runnable pattern demos under stable names.
//
// A Registry is filled once in the composition root (main) and then only
// read:
//
//	reg := catalog.NewRegistry().
//		Provide("builder", builderDemo).
//		Provide("singleton", singletonDemo)
//
//	if err := reg.Run("builder", os.Stdout); err != nil { ... }
package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Demo writes an illustration of one pattern to w.
type Demo func(w io.Writer)

// ErrDemoPanic is returned by Run when a demo panics.
var ErrDemoPanic = errors.New("catalog: panic during demo")

// UnknownDemoError is returned when no demo is registered under Name.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: catalog: unknown demo "visitor"
	return "catalog: unknown demo " + strconv.Quote(e.Name)
}

// Registry maps demo names to demos.
type Registry struct {
	demos map[string]Demo
}

func NewRegistry() *Registry {
	return &Registry{demos: map[string]Demo{}}
}

// Provide stores a demo under name and returns the registry for chaining.
// Providing the same name twice replaces the earlier demo.
func (r *Registry) Provide(name string, demo Demo) *Registry {
	r.demos[name] = demo
	return r
}

// Get returns the demo if present.
func (r *Registry) Get(name string) (Demo, bool) {
	d, ok := r.demos[name]
	return d, ok
}

// MustGet returns the demo or panics with UnknownDemoError.
func (r *Registry) MustGet(name string) Demo {
	d, ok := r.demos[name]
	if !ok {
		panic(UnknownDemoError{Name: name})
	}
	return d
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named demo, writing to w. Panics inside the demo are
// converted into errors wrapping ErrDemoPanic.
func (r *Registry) Run(name string, w io.Writer) (err error) {
	d, ok := r.Get(name)
	if !ok || d == nil {
		return UnknownDemoError{Name: name}
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDemoPanic, name, rec)
		}
	}()

	d(w)
	return nil
}

// RunAll runs every demo in Names order, each preceded by a "== name" header.
// It stops at the first failing demo.
func (r *Registry) RunAll(w io.Writer) error {
	for _, name := range r.Names() {
		_, _ = fmt.Fprintf(w, "== %s\n", name)
		if err := r.Run(name, w); err != nil {
			return err
		}
	}
	return nil
}
