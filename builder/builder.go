package builder

// CharacterBuilder accumulates stats for a single character.
//
// The zero value is not usable; construct with NewCharacterBuilder.
type CharacterBuilder struct {
	character Character
}

// NewCharacterBuilder starts a character with a fixed name and class and all
// stats at zero.
func NewCharacterBuilder(name string, class CharacterType) *CharacterBuilder {
	return &CharacterBuilder{character: Character{name: name, class: class}}
}

// SetLevel overwrites the level and returns the builder for chaining.
func (b *CharacterBuilder) SetLevel(level int) *CharacterBuilder {
	b.character.level = level
	return b
}

// SetStrength overwrites the strength and returns the builder for chaining.
func (b *CharacterBuilder) SetStrength(strength int) *CharacterBuilder {
	b.character.strength = strength
	return b
}

// SetAgility overwrites the agility and returns the builder for chaining.
func (b *CharacterBuilder) SetAgility(agility int) *CharacterBuilder {
	b.character.agility = agility
	return b
}

// SetIntelligence overwrites the intelligence and returns the builder for chaining.
func (b *CharacterBuilder) SetIntelligence(intelligence int) *CharacterBuilder {
	b.character.intelligence = intelligence
	return b
}

// SetDefense overwrites the defense and returns the builder for chaining.
func (b *CharacterBuilder) SetDefense(defense int) *CharacterBuilder {
	b.character.defense = defense
	return b
}

// Build returns a copy of the character in its current state.
//
// Build never fails. Calling it before any setter yields a character with
// zero stats, and calling it again without intervening setters yields an
// equal Character.
func (b *CharacterBuilder) Build() Character {
	return b.character
}
