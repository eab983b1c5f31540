// Package solver evaluates term strings: sequences of alternating
// single-digit operands and single-character operators, e.g. "3+4*2".
//
// The reduction is non-standard. Multiplication folds greedily left to
// right, splicing the running product back into the string; addition defers
// by first reducing everything to its right. Reconstructed intermediate
// strings are re-parsed with single-character indexing, so multi-digit
// intermediates are misread and evaluation fails. This matches the reference
// behavior and is kept on purpose (see DESIGN.md).
package solver

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultMaxDepth is the recursion limit used when Solver.MaxDepth is unset.
const DefaultMaxDepth = 1000

// ErrDepthExceeded is returned when evaluation recurses past the depth
// limit. Well-formed terms never hit it.
var ErrDepthExceeded = errors.New("recursion depth exceeded")

// IndexError reports a read past the end of a term.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("term index %d out of range (length %d)", e.Index, e.Len)
}

// ParseError reports a character that is not a decimal digit where an
// operand was expected.
type ParseError struct {
	Index int
	Char  byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid operand %q at index %d", e.Char, e.Index)
}

// Solver evaluates term strings. The zero value is ready to use; a Solver is
// stateless and safe for concurrent use.
type Solver struct {
	// MaxDepth bounds recursion depth; values <= 0 mean DefaultMaxDepth.
	MaxDepth int
	// Logf, when set, receives a diagnostic line for every leaf
	// multiplication.
	Logf func(format string, args ...any)
}

// Solve evaluates term and returns the decimal representation of its result.
func (s *Solver) Solve(term string) (string, error) {
	return s.solve(term, 0)
}

func (s *Solver) solve(term string, depth int) (string, error) {
	limit := s.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	if depth >= limit {
		return "", ErrDepthExceeded
	}

	a, err := digitAt(term, 0)
	if err != nil {
		return "", err
	}
	if len(term) < 2 {
		return "", &IndexError{Index: 1, Len: len(term)}
	}
	op := term[1]
	b, err := digitAt(term, 2)
	if err != nil {
		return "", err
	}

	if len(term) == 3 {
		if op == '+' {
			return strconv.Itoa(a + b), nil
		}
		// Any operator other than '+' multiplies.
		if s.Logf != nil {
			s.Logf("res: %d", a*b)
		}
		return strconv.Itoa(a * b), nil
	}

	if op != '*' {
		r, err := s.solve(term[2:], depth+1)
		if err != nil {
			return "", err
		}
		return s.solve(strconv.Itoa(a)+"+"+r, depth+1)
	}

	// Fold the product and splice it back in front of the rest.
	return s.solve(strconv.Itoa(a*b)+term[3:], depth+1)
}

func digitAt(term string, i int) (int, error) {
	if i >= len(term) {
		return 0, &IndexError{Index: i, Len: len(term)}
	}
	n, err := strconv.Atoi(string(term[i]))
	if err != nil {
		return 0, &ParseError{Index: i, Char: term[i]}
	}
	return n, nil
}
