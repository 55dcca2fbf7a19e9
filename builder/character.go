package builder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CharacterType is the class a character is created with.
type CharacterType string

const (
	Mage    CharacterType = "mage"
	Warrior CharacterType = "warrior"
	Rogue   CharacterType = "rogue"
)

// ErrUnknownCharacterType is returned by ParseCharacterType for names outside
// the fixed class set.
var ErrUnknownCharacterType = errors.New("builder: unknown character type")

// CharacterTypes returns every known class, in declaration order.
func CharacterTypes() []CharacterType {
	return []CharacterType{Mage, Warrior, Rogue}
}

// Valid reports whether t is one of the known classes.
func (t CharacterType) Valid() bool {
	switch t {
	case Mage, Warrior, Rogue:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t CharacterType) String() string { return string(t) }

// ParseCharacterType maps a case-insensitive class name to a CharacterType.
func ParseCharacterType(name string) (CharacterType, error) {
	t := CharacterType(strings.ToLower(strings.TrimSpace(name)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCharacterType, name)
	}
	return t, nil
}

// Character is a finished character produced by CharacterBuilder.Build.
type Character struct {
	name         string
	class        CharacterType
	level        int
	strength     int
	agility      int
	intelligence int
	defense      int
}

func (c Character) Name() string { return c.name }
func (c Character) Class() CharacterType { return c.class }
func (c Character) Level() int { return c.level }
func (c Character) Strength() int { return c.strength }
func (c Character) Agility() int { return c.agility }
func (c Character) Intelligence() int { return c.intelligence }
func (c Character) Defense() int { return c.defense }

// Display writes the character report to w, one field per line.
func (c Character) Display(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Name: %s\n", c.name)
	_, _ = fmt.Fprintf(w, "Level: %d\n", c.level)
	_, _ = fmt.Fprintf(w, "Class Type: %s\n", c.class)
	_, _ = fmt.Fprintf(w, "Agility: %d\n", c.agility)
	_, _ = fmt.Fprintf(w, "Defense: %d\n", c.defense)
	_, _ = fmt.Fprintf(w, "Intelligence: %d\n", c.intelligence)
	_, _ = fmt.Fprintf(w, "Strength: %d\n", c.strength)
}

// DisplayStats writes the character report to stdout.
func (c Character) DisplayStats() { c.Display(os.Stdout) }
