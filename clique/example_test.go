package clique_test

import (
	"fmt"
	"log"
	"sort"

	"github.com/katalvlaran/npcover/build"
	"github.com/katalvlaran/npcover/clique"
	"github.com/katalvlaran/npcover/core"
)

// ExampleMaximum finds the largest clique of the complete graph K_4.
func ExampleMaximum() {
	g, err := build.Complete(4)
	if err != nil {
		log.Fatal(err)
	}

	best, err := clique.Maximum(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(best.Members())
	// Output:
	// [0 1 2 3]
}

// ExampleMaximal lists the maximal cliques of a path: exactly its edges.
func ExampleMaximal() {
	g, err := build.Path(3) // 0−1−2
	if err != nil {
		log.Fatal(err)
	}

	cliques, err := clique.Maximal(g)
	if err != nil {
		log.Fatal(err)
	}
	for _, c := range cliques {
		// Members follow discovery order; sort for display.
		m := c.Members()
		sort.Ints(m)
		fmt.Println(m)
	}
	// Output:
	// [0 1]
	// [1 2]
}

// ExampleWithOnClique streams cliques through a visitor instead of
// accumulating an exponential slice.
func ExampleWithOnClique() {
	g, err := build.Complete(3)
	if err != nil {
		log.Fatal(err)
	}

	count := 0
	_, err = clique.EnumerateAll(g, clique.WithOnClique(func(*core.VertexSet) error {
		count++
		return nil
	}))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(count)
	// Output:
	// 7
}
