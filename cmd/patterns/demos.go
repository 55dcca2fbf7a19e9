package main

import (
	"fmt"
	"io"

	"github.com/sghaida/gopatterns/adapter"
	"github.com/sghaida/gopatterns/builder"
	"github.com/sghaida/gopatterns/catalog"
	"github.com/sghaida/gopatterns/decorator"
	"github.com/sghaida/gopatterns/isp"
	"github.com/sghaida/gopatterns/singleton"
)

// demoSettings carries the already validated inputs the demos need.
type demoSettings struct {
	seed  uint64
	name  string
	class builder.CharacterType
}

// newRegistry is the composition root: every pattern package is wired here
// and nowhere else.
func newRegistry(s demoSettings) *catalog.Registry {
	return catalog.NewRegistry().
		Provide("adapter", adapterDemo(s.seed)).
		Provide("builder", builderDemo(s.name, s.class)).
		Provide("decorator", decoratorDemo).
		Provide("isp", ispDemo).
		Provide("singleton", singletonDemo)
}

func ispDemo(w io.Writer) {
	dog := isp.Dog{Out: w}
	dog.Walk(10)
	dog.Swim(5)
	dog.Eat()
	dog.Sleep()

	isp.Fish{Out: w}.Swim(20)
}

func decoratorDemo(w io.Writer) {
	component := decorator.ConcreteComponent{}
	d := decorator.NewComponentDecorator(component)
	_, _ = fmt.Fprintln(w, d.Operation())
}

func singletonDemo(w io.Writer) {
	db := singleton.Instance()
	db.SetOutput(w)
	defer db.SetOutput(nil)

	db.Query("Gestioname Esta")
}

func adapterDemo(seed uint64) catalog.Demo {
	return func(w io.Writer) {
		opts := []adapter.Option{adapter.WithOutput(w)}
		if seed != 0 {
			opts = append(opts, adapter.WithSource(adapter.NewSeededSource(seed)))
		}

		old := adapter.NewOldJoystick(opts...)
		var usb adapter.USBJoystick = adapter.NewJoystickAdapter(old)

		usb.ConnectToUSB()
		_, _ = fmt.Fprintf(w, "Read value: %d\n", usb.ReadData())
	}
}

func builderDemo(name string, class builder.CharacterType) catalog.Demo {
	return func(w io.Writer) {
		character := builder.NewCharacterBuilder(name, class).
			SetLevel(10).
			SetDefense(235).
			SetIntelligence(10).
			SetAgility(10).
			SetStrength(1000).
			Build()
		character.Display(w)
	}
}
