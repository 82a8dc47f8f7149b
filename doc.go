// Package cfg parses a section-based configuration format into a
// queryable in-memory store.
//
// # Syntax
//
//	[name] : base_struct0, base_struct1 = attribute0, attribute1
//	key = value
//	array = 1, 2, 3
//	string = "Some of something"
//	multistr = "You can use\n
//	     multiline \n
//	    string too!"
//	;this is comment line!
//	|And this is comment block
//	which you can use as multiline|
//	#include <relative/path.cfg>
//
// A section header names the section, optionally followed by ':' and a
// comma-separated list of already-declared sections to inherit values
// from, optionally followed by '=' and a comma-separated list of
// attribute flags. Body lines until the next '[' assign string values
// to keys; quoted values may span lines and support the \\ \n \" \'
// escapes. #include parses another file into the same store, resolved
// against the configured base path.
//
// # Resolution
//
// GetString prefers the section's own value and otherwise walks the
// inheritance list in declaration order, one level deep. Typed access
// is layered on top:
//
//	parser := cfg.New("game")
//	diags, err := parser.Load("settings.cfg")
//	...
//	width := cfg.Get(parser, "window", "width", 1280)
//	tags := cfg.GetArray[int](parser, "spawn", "waves")
//
// Malformed input never aborts a load; every finding is collected as a
// diag.Record and replayed through the configured sink.
package cfg
