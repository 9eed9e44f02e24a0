package formpath

import (
	"fmt"
	"slices"
	"strconv"
)

// Parse converts a path string such as "animals[0].type" into a Path.
// The empty string parses to the root path. The result is owned by the
// caller; cached paths are never shared.
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	if p, ok := paths.get(s); ok {
		return slices.Clone(p), nil
	}

	p, err := parse(s)
	if err != nil {
		return nil, err
	}
	paths.put(s, slices.Clone(p))
	return p, nil
}

// MustParse is like Parse but panics on an invalid path.
// Use it for paths that are fixed at initialisation time.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parse(s string) (Path, error) {
	var p Path
	i := 0
	for i < len(s) {
		c := s[i]

		if c == '[' {
			end := i + 1
			for end < len(s) && s[end] != ']' {
				end++
			}
			if end == len(s) {
				return nil, invalid(s, "unterminated index")
			}
			digits := s[i+1 : end]
			if !isDigits(digits) {
				return nil, invalid(s, fmt.Sprintf("index %q is not a non-negative integer", digits))
			}
			n, err := strconv.Atoi(digits)
			if err != nil {
				return nil, invalid(s, err.Error())
			}
			p = append(p, Index(n))
			i = end + 1
			continue
		}

		switch {
		case len(p) > 0 && c != '.':
			return nil, invalid(s, fmt.Sprintf("expected '.' or '[' at offset %d", i))
		case len(p) > 0:
			i++
		case c == '.':
			return nil, invalid(s, "leading '.'")
		}

		j := i
		for j < len(s) && s[j] != '.' && s[j] != '[' && s[j] != ']' {
			j++
		}
		if j == i {
			return nil, invalid(s, fmt.Sprintf("empty key at offset %d", i))
		}
		p = append(p, Key(s[i:j]))
		i = j
	}
	return p, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func invalid(s, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidPath, s, reason)
}
