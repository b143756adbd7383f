package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression represents a parsed dice expression ready to be rolled.
// Precondition: Count >= 1, Sides >= 1 after successful Parse.
type Expression struct {
	Raw      string // original input string
	Count    int    // number of dice
	Sides    int    // faces per die
	Modifier int    // flat modifier (may be negative)
}

// Single reports whether the expression is one die with no modifier, e.g. "d6".
func (e Expression) Single() bool {
	return e.Count == 1 && e.Modifier == 0
}

// Parse parses a dice expression string into an Expression.
// Supported forms: "d6", "1d6", "2d6", "2d6+3", "4d8-2".
//
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	countStr, rest, ok := strings.Cut(s, "d")
	if !ok {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", expr)
	}

	count := 1
	if countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", expr, err)
		}
		if n < 1 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", expr)
		}
		count = n
	}

	sidesStr, modStr := rest, ""
	if i := strings.IndexAny(rest, "+-"); i > 0 {
		sidesStr, modStr = rest[:i], rest[i:]
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", expr, err)
	}
	if sides < 1 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", expr, ErrInvalidSides)
	}

	modifier := 0
	if modStr != "" {
		modifier, err = strconv.Atoi(modStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", expr, err)
		}
	}

	return Expression{
		Raw:      strings.TrimSpace(expr),
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
	}, nil
}

// MustParse parses expr and panics on error. Useful for package-level values.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}
