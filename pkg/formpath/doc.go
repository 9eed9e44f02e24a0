// Package formpath parses and resolves the dotted/bracket paths used to address
// values inside a form tree, for example "users[2].email" or "animals[0].type".
//
// A path is parsed once into an ordered list of Segment values, each either a
// key (group field) or an index (array position). The same representation is
// consumed by the flat error collector, the condition evaluator and the group
// path accessors, so every component agrees on how "a.b[0].c" is read.
//
// # Grammar
//
//	path    = [ segment { segment } ]
//	segment = key | "." key | "[" digits "]"
//
// The first key has no leading dot. An index never takes a dot before its
// bracket: "items[0]" is valid, "items.[0]" is not. The empty string is the
// root path.
//
// # Usage
//
//	p, err := formpath.Parse("animals[0].type")
//	if err != nil {
//	    return err
//	}
//	v, ok := formpath.Lookup(snapshot, p)
//
// Parsed paths are memoised in a bounded LRU cache shared by the package.
// The cache is safe for concurrent use; its capacity can be changed with
// SetCacheSize. Returned Path values must be treated as immutable.
//
// # Flattening
//
// Flatten turns a nested mapping into a single-level mapping keyed by joined
// paths, using "/" as the default separator.
package formpath
