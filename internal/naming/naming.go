// Package naming provides named things and interface composition over them.
package naming

import "fmt"

// FullyNamed has a full name.
type FullyNamed interface {
	FullName() string
}

// Person is FullyNamed by a stored name.
type Person struct {
	Name string
}

// FullName returns p.Name.
func (p Person) FullName() string { return p.Name }

// Starship has a name and an optional prefix such as "USS".
type Starship struct {
	Name   string
	Prefix string
}

// FullName joins the prefix, when present, and the name.
func (s Starship) FullName() string {
	if s.Prefix == "" {
		return s.Name
	}
	return s.Prefix + " " + s.Name
}

// Named has a name.
type Named interface {
	Name() string
}

// Aged has an age.
type Aged interface {
	Age() int
}

// NamedAged is both Named and Aged.
type NamedAged interface {
	Named
	Aged
}

// Celebrant is a NamedAged value.
type Celebrant struct {
	FirstName string
	Years     int
}

// Name returns the celebrant's name.
func (c Celebrant) Name() string { return c.FirstName }

// Age returns the celebrant's age.
func (c Celebrant) Age() int { return c.Years }

// WishHappyBirthday greets anything that is both named and aged.
func WishHappyBirthday(c NamedAged) string {
	return fmt.Sprintf("Happy birthday %s - you're %d!", c.Name(), c.Age())
}
