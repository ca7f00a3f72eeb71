// Demonstration tool that prints array layout diagnostics through the
// growth and slicing operations.
package main

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-ndarray/ndarray"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("=== Row growth ===")
	a, err := ndarray.New[float64]([]int{0, 4})
	if err != nil {
		return err
	}
	report("empty", a)

	for i, row := range [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}} {
		v, err := ndarray.ViewOf(row, []int{4})
		if err != nil {
			return err
		}
		if err := a.TryAppendRow(v); err != nil {
			return err
		}
		report(fmt.Sprintf("after row %d", i+1), a)
	}

	fmt.Println("\n=== Column growth ===")
	b, err := ndarray.New[float64]([]int{3, 0})
	if err != nil {
		return err
	}
	for i, col := range [][]float64{{1, 2, 3}, {4, 5, 6}} {
		v, err := ndarray.ViewOf(col, []int{3})
		if err != nil {
			return err
		}
		if err := b.TryAppendColumn(v); err != nil {
			return err
		}
		report(fmt.Sprintf("after column %d", i+1), b)
	}

	fmt.Println("\n=== Slicing holes ===")
	c, err := ndarray.FromSlice([]float64{0, 1, 2, 3, 4, 5}, []int{6})
	if err != nil {
		return err
	}
	report("full", c)
	if err := c.Slice(0, 0, 6, 2); err != nil {
		return err
	}
	report("every 2nd", c)

	fmt.Println("\nAppending to the holed array:")
	v, err := ndarray.ViewOf([]float64{9}, []int{1})
	if err != nil {
		return err
	}
	if err := c.TryAppend(0, v); err != nil {
		fmt.Printf("  refused as expected: %v\n", err)
	}

	out := make([]float64, c.Len())
	dst, err := ndarray.MutViewOf(out, c.Shape())
	if err != nil {
		return err
	}
	c.MoveInto(dst)
	fmt.Printf("  relocated visible elements: %v\n", out)
	return nil
}

func report[T any](label string, a *ndarray.Array[T]) {
	layout := "strided"
	if a.IsStandardLayout() {
		layout = "standard (row-major)"
	}
	fmt.Printf("  %-14s shape=%v strides=%v elements=%d layout=%s\n",
		label, a.Shape(), a.Strides(), a.Len(), layout)
}
