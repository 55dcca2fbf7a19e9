// Package gopatterns is a small catalog of classic object-oriented design
// patterns written as plain Go.
//
// Each pattern lives in its own package and none depends on another:
//
//   - isp:       capability interfaces composed into larger contracts
//   - decorator: components wrapped by composition, nesting to any depth
//   - singleton: a once-guarded, process-wide Database (and Lazy[T])
//   - adapter:   an old port joystick exposed as a USB joystick
//   - builder:   a fluent CharacterBuilder producing immutable Characters
//
// catalog registers a runnable demo per pattern, and cmd/patterns is the
// composition root that wires them and runs them from the command line.
//
// Package gopatterns See subpackages:
//   - isp, decorator, singleton, adapter, builder: the patterns
//   - catalog: named demo registry
//   - cmd/patterns: demo runner
package gopatterns
