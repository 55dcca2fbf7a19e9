package isp_test

import (
	"bytes"
	"testing"

	"github.com/sghaida/gopatterns/isp"
	"github.com/stretchr/testify/assert"
)

// TestDog_Animal verifies Dog's output through each capability.
func TestDog_Animal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var a isp.Animal = isp.Dog{Out: &buf}

	a.Walk(10)
	a.Swim(3)
	a.Eat()
	a.Sleep()

	want := "Dog walks 10 meters\n" +
		"Dog swims 3 meters\n" +
		"The dog is eating\n" +
		"The dog is sleeping\n"
	assert.Equal(t, want, buf.String())
}

// TestFish_SwimmerOnly verifies Fish swims but does not satisfy the wider contracts.
func TestFish_SwimmerOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var s isp.Swimmer = isp.Fish{Out: &buf}
	s.Swim(7)
	assert.Equal(t, "The Fish is swimming 7 meters\n", buf.String())

	var v any = isp.Fish{}
	_, isWalker := v.(isp.Walker)
	_, isAnimal := v.(isp.Animal)
	assert.False(t, isWalker)
	assert.False(t, isAnimal)
}

// TestSegregatedConsumers verifies functions can depend on the narrowest capability.
func TestSegregatedConsumers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	swimmers := []isp.Swimmer{isp.Dog{Out: &buf}, isp.Fish{Out: &buf}}
	for _, s := range swimmers {
		s.Swim(1)
	}

	assert.Equal(t, "Dog swims 1 meters\nThe Fish is swimming 1 meters\n", buf.String())
}
