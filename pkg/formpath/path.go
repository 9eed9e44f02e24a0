package formpath

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a group key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Key returns a key segment.
func Key(k string) Segment {
	return Segment{Key: k}
}

// Index returns an index segment.
func Index(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Key
}

// Path is an ordered list of segments. The zero value addresses the root.
type Path []Segment

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Child returns a new path extended by the key k.
func (p Path) Child(k string) Path {
	return p.append(Key(k))
}

// At returns a new path extended by the index i.
func (p Path) At(i int) Path {
	return p.append(Index(i))
}

func (p Path) append(s Segment) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, s)
}

// String renders the path in the same notation Parse accepts.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if !s.IsIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// JoinKey appends a group key to a rendered path: "parent.key", or "key" at the root.
func JoinKey(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

// JoinIndex appends an array index to a rendered path: "parent[i]", or "[i]" at the root.
func JoinIndex(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
