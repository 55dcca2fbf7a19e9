// Package builder implements the Builder pattern for game characters.
//
// A CharacterBuilder is created with the two fields that never change after
// creation (name and class) and then accumulates the optional numeric stats
// through chained setters:
//
//	warrior := builder.NewCharacterBuilder("Gentleman", builder.Warrior).
//		SetLevel(10).
//		SetDefense(235).
//		SetIntelligence(10).
//		SetAgility(10).
//		SetStrength(1000).
//		Build()
//
//	warrior.DisplayStats()
//
// Build returns a Character value. Characters expose getters only, so a built
// Character cannot be changed through the builder that produced it.
//
// Setters perform no validation: zero and negative stats are accepted, and the
// last write wins. Build may be called any number of times; every call reports
// the builder's current state.
package builder
