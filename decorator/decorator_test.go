package decorator_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sghaida/gopatterns/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcreteComponent verifies the base token.
func TestConcreteComponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ConcreteComponent", decorator.ConcreteComponent{}.Operation())
}

// TestComponentDecorator verifies the single-layer output.
func TestComponentDecorator(t *testing.T) {
	t.Parallel()

	d := decorator.NewComponentDecorator(decorator.ConcreteComponent{})
	assert.Equal(t, "ComponentDecorator(ConcreteComponent)", d.Operation())
	assert.Equal(t, decorator.ConcreteComponent{}, d.Inner())
}

// TestDecorator_CallsInnerEveryTime verifies a decorator forwards on each call instead of caching.
func TestDecorator_CallsInnerEveryTime(t *testing.T) {
	t.Parallel()

	var calls int
	base := decorator.ComponentFunc(func() string {
		calls++
		return fmt.Sprintf("base#%d", calls)
	})
	d := decorator.Wrap(base, "D")

	assert.Equal(t, "D(base#1)", d.Operation())
	assert.Equal(t, "D(base#2)", d.Operation())
	assert.Equal(t, 2, calls)
}

// TestChain_NestsEachLayer verifies K layers each fully contain the previous layer's output.
func TestChain_NestsEachLayer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		layers []string
		want   string
	}{
		{name: "no layers", layers: nil, want: "ConcreteComponent"},
		{name: "one layer", layers: []string{"A"}, want: "A(ConcreteComponent)"},
		{name: "three layers", layers: []string{"A", "B", "C"}, want: "C(B(A(ConcreteComponent)))"},
		{name: "repeated name", layers: []string{"X", "X"}, want: "X(X(ConcreteComponent))"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var base decorator.Component = decorator.ConcreteComponent{}
			prev := base.Operation()
			c := base
			for _, name := range tc.layers {
				c = decorator.Chain(c, decorator.Named(name))
				out := c.Operation()
				require.True(t, strings.Contains(out, prev), "%q should contain %q", out, prev)
				prev = out
			}

			layers := make([]decorator.Layer, 0, len(tc.layers))
			for _, name := range tc.layers {
				layers = append(layers, decorator.Named(name))
			}
			assert.Equal(t, tc.want, decorator.Chain(base, layers...).Operation())
			assert.Equal(t, tc.want, prev)
		})
	}
}

// TestChain_SkipsNilLayers verifies nil layers are ignored.
func TestChain_SkipsNilLayers(t *testing.T) {
	t.Parallel()

	c := decorator.Chain(decorator.ConcreteComponent{}, nil, decorator.Named("A"), nil)
	assert.Equal(t, "A(ConcreteComponent)", c.Operation())
}

// TestComponentDecorator_Stacks verifies stock decorators nest inside each other.
func TestComponentDecorator_Stacks(t *testing.T) {
	t.Parallel()

	inner := decorator.NewComponentDecorator(decorator.ConcreteComponent{})
	outer := decorator.NewComponentDecorator(inner)
	assert.Equal(t, "ComponentDecorator(ComponentDecorator(ConcreteComponent))", outer.Operation())
}
