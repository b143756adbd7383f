// Package text defines textual representations shared by the demo types.
package text

import "fmt"

// TextRepresentable can describe itself in one line.
type TextRepresentable interface {
	AsText() string
}

// PrettyTextRepresentable adds a richer, possibly multi-line description.
type PrettyTextRepresentable interface {
	TextRepresentable
	AsPrettyText() string
}

// Hamster is a pet with a name.
type Hamster struct {
	Name string
}

// AsText describes the hamster.
func (h Hamster) AsText() string {
	return fmt.Sprintf("A hamster named %s", h.Name)
}

// Describe renders each item with AsText.
func Describe(things []TextRepresentable) []string {
	out := make([]string, len(things))
	for i, t := range things {
		out[i] = t.AsText()
	}
	return out
}

// Pretty renders t with AsPrettyText when it offers one and AsText otherwise.
func Pretty(t TextRepresentable) string {
	if p, ok := t.(PrettyTextRepresentable); ok {
		return p.AsPrettyText()
	}
	return t.AsText()
}
