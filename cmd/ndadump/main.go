// Package main provides the nda CLI, a small diagnostic tool that
// exercises shape resolution and array traversal end to end.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nda-go/nda/ndarray"
	"github.com/nda-go/nda/shape"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("nda %s\n", version)
	case "resolve":
		if err := runResolve(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "resolve:", err)
			os.Exit(1)
		}
	case "dump":
		if err := runDump(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "dump:", err)
			os.Exit(1)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("nda - multidimensional array shape algebra CLI")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  resolve E1,E2,...    Resolve auto strides for a dense shape with the given extents")
	fmt.Println("  dump E1,E2,...       Fill an array of the given extents with its flat offsets and print it")
}

func parseExtents(arg string) ([]int, error) {
	fields := strings.Split(arg, ",")
	extents := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid extent %q: %w", f, err)
		}
		extents[i] = n
	}
	return extents, nil
}

func runResolve(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: nda resolve E1,E2,...")
	}
	extents, err := parseExtents(args[0])
	if err != nil {
		return err
	}
	dims := make([]shape.Dim, len(extents))
	for i, e := range extents {
		dims[i] = shape.NewDim(e)
	}
	resolved := shape.New(shape.Resolve(dims)...)
	fmt.Println(resolved)
	fmt.Printf("size=%d flat_extent=%d compact=%v one_to_one=%v\n",
		resolved.Size(), resolved.FlatExtent(), resolved.IsCompact(), resolved.IsOneToOne())
	return nil
}

func runDump(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: nda dump E1,E2,...")
	}
	extents, err := parseExtents(args[0])
	if err != nil {
		return err
	}
	dims := make([]shape.Dim, len(extents))
	for i, e := range extents {
		dims[i] = shape.NewDim(e)
	}
	s := shape.New(shape.Resolve(dims)...)
	a := ndarray.New[int](s)
	n := 0
	shape.ForAllIndices(s, func(idx ...int) {
		a.Set(n, idx...)
		n++
	})
	shape.ForAllIndices(s, func(idx ...int) {
		fmt.Printf("%v = %d\n", idx, a.Get(idx...))
	})
	return nil
}
