// Package isp demonstrates interface segregation: small single-purpose
// capability interfaces composed into richer contracts.
//
// A type satisfies a composed contract only by implementing every
// constituent method. Dog is an Animal; Fish can only swim.
package isp

import (
	"fmt"
	"io"
	"os"
)

// Walker can walk a distance in meters.
type Walker interface {
	Walk(distance int)
}

// Swimmer can swim a distance in meters.
type Swimmer interface {
	Swim(distance int)
}

type Eater interface {
	Eat()
}

type Sleeper interface {
	Sleep()
}

// Animal is the full contract: walk, swim, eat and sleep.
type Animal interface {
	Walker
	Swimmer
	Eater
	Sleeper
}

func outputOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// Dog implements Animal. Out defaults to stdout when nil.
type Dog struct {
	Out io.Writer
}

func (d Dog) Walk(distance int) {
	_, _ = fmt.Fprintf(outputOrStdout(d.Out), "Dog walks %d meters\n", distance)
}

func (d Dog) Swim(distance int) {
	_, _ = fmt.Fprintf(outputOrStdout(d.Out), "Dog swims %d meters\n", distance)
}

func (d Dog) Eat() {
	_, _ = fmt.Fprintln(outputOrStdout(d.Out), "The dog is eating")
}

func (d Dog) Sleep() {
	_, _ = fmt.Fprintln(outputOrStdout(d.Out), "The dog is sleeping")
}

// Fish implements Swimmer only. Out defaults to stdout when nil.
type Fish struct {
	Out io.Writer
}

func (f Fish) Swim(distance int) {
	_, _ = fmt.Fprintf(outputOrStdout(f.Out), "The Fish is swimming %d meters\n", distance)
}

var (
	_ Animal  = Dog{}
	_ Swimmer = Fish{}
)
