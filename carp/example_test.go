package carp_test

import (
	"errors"
	"fmt"

	"github.com/dzonerzy/go-carp/carp"
)

func zipperSpec() *carp.Spec {
	return carp.MustNew(
		carp.Arg("file", "File to compress."),
		carp.Arg("-v", "Verbose output."),
		carp.Arg("--level", "Compression level.", 1),
	)
}

func ExampleSpec_Parse() {
	spec := zipperSpec()
	r := spec.Parse([]string{"zipper", "-v", "--level", "9", "notes.txt"})

	file, _ := carp.Require[string](r, "file")
	level, _ := carp.Get(r, "--level", 6)
	fmt.Println(file, level, r.Has("-v"), r.OK())
	// Output: notes.txt 9 true true
}

func ExampleSpec_Usage() {
	fmt.Print(zipperSpec().Usage("/usr/local/bin/zipper", 60))
	// Output:
	// Usage: zipper [options] file
	//
	// Arguments:
	//         file      File to compress.
	//
	// Options:
	//         -v        Verbose output.
	//         --level   Compression level.
}

func ExampleResult_Problems() {
	r := zipperSpec().ParseArgs([]string{"--levle", "3", "notes.txt"})
	for _, p := range r.Problems() {
		fmt.Println(p)
	}
	fmt.Println(r.OK())
	// Output:
	// unrecognized switch "--levle" (did you mean --level?)
	// unexpected positional argument "notes.txt"
	// false
}

func ExampleGet() {
	r := zipperSpec().ParseArgs([]string{"--level", "300", "notes.txt"})

	if _, ok := carp.Get(r, "--level", int8(6)); !ok {
		fmt.Println(r.Err())
		fmt.Println(errors.Is(r.Err(), carp.ErrOverflow))
	}
	// Output:
	// --level: "300" is out of range for int8
	// true
}

func ExampleTriple() {
	spec := carp.MustNew(carp.Arg("-w", "Name, count and ratio.", 3))
	r := spec.ParseArgs([]string{"-w", "gasket", "4", "1.5"})

	w, _ := carp.Get(r, "-w", carp.MakeTriple("none", 0, 0.0))
	fmt.Println(w.First, w.Second, w.Third)
	// Output: gasket 4 1.5
}
