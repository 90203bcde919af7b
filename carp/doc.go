// Package carp parses command-line arguments against a declarative table.
//
// A table is a list of Decl values. Names starting with '-' declare switches;
// any other name declares a positional. A switch may take Extra value tokens
// after its name; a positional always takes one token.
//
//	var args = carp.MustNew(
//		carp.Arg("file", "File to compress."),
//		carp.Arg("-v", "Verbose output."),
//		carp.Arg("--level", "Compression level.", 1),
//	)
//
// Matching only slices the input; nothing is converted until a value is
// requested:
//
//	r := args.ParseMain()
//	file, _ := carp.Require[string](r, "file")
//	level, _ := carp.Get(r, "--level", 6)
//	if !r.OK() {
//		fmt.Fprintln(os.Stderr, r.Err())
//		fmt.Fprint(os.Stderr, args.Usage(os.Args[0], 0))
//		os.Exit(2)
//	}
//
// Matching problems and conversion failures all clear the result's success
// flag, so a single OK check after the last accessor covers the whole
// command line. Values are strings, booleans, durations, integers and floats
// of any width, types implementing encoding.TextUnmarshaler, fixed-size
// arrays, and structs such as Pair and Triple, which take one token per
// exported field.
package carp
