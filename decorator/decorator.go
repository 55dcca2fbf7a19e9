// Package decorator layers behavior around a Component without changing it.
//
// A decorator holds exactly one inner Component and its Operation embeds the
// inner Operation output verbatim:
//
//	var c decorator.Component = decorator.ConcreteComponent{}
//	c = decorator.NewComponentDecorator(c)
//	c.Operation() // "ComponentDecorator(ConcreteComponent)"
//
// Decorators nest to any depth. Chain applies a list of Layers to a base
// component so that the last layer ends up outermost.
package decorator

import "fmt"

// Component is anything that can describe its own operation.
type Component interface {
	Operation() string
}

// ComponentFunc adapts an ordinary function to Component.
type ComponentFunc func() string

// Operation calls f().
func (f ComponentFunc) Operation() string { return f() }

// ConcreteComponent is the undecorated base component.
type ConcreteComponent struct{}

// Operation returns the base token.
func (ConcreteComponent) Operation() string { return "ConcreteComponent" }

// Decorator forwards to an inner Component and wraps its output as
// Name(inner).
type Decorator struct {
	Name  string
	inner Component
}

// Wrap returns a Decorator named name around inner.
func Wrap(inner Component, name string) *Decorator {
	return &Decorator{Name: name, inner: inner}
}

// Inner returns the wrapped component.
func (d *Decorator) Inner() Component { return d.inner }

// Operation implements Component.
func (d *Decorator) Operation() string {
	return fmt.Sprintf("%s(%s)", d.Name, d.inner.Operation())
}

// ComponentDecorator is the stock decorator used by the demo.
type ComponentDecorator struct {
	*Decorator
}

// NewComponentDecorator wraps inner as ComponentDecorator(inner).
func NewComponentDecorator(inner Component) ComponentDecorator {
	return ComponentDecorator{Decorator: Wrap(inner, "ComponentDecorator")}
}

// Layer turns one Component into a decorated one.
type Layer func(Component) Component

// Named returns a Layer that wraps with Wrap(c, name).
func Named(name string) Layer {
	return func(c Component) Component { return Wrap(c, name) }
}

// Chain applies layers to base in order. The first layer wraps base directly
// and the last layer is outermost. Nil layers are skipped.
func Chain(base Component, layers ...Layer) Component {
	c := base
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		c = layer(c)
	}
	return c
}
