package linalg_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	linalg "github.com/ivalderrama/linear-algebra-refresher"
	"github.com/ivalderrama/linear-algebra-refresher/vector"
)

// ExampleProcessor_Decompose splits a batch of vectors against one basis.
func ExampleProcessor_Decompose() {
	p, err := linalg.New(linalg.WithConcurrency(4))
	if err != nil {
		log.Fatal(err)
	}

	parts, err := p.Decompose(context.Background(), []vector.Vector{
		vector.MustNew(3, 4),
		vector.MustNew(-2, 1),
	}, vector.MustNew(0, 10))
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range parts {
		fmt.Println(d.Parallel, "+", d.Orthogonal)
	}
	// Output:
	// Vector: (0, 4) + Vector: (3, 0)
	// Vector: (0, 1) + Vector: (-2, 0)
}

// ExampleProcessor_SelectZero reports the positions of zero vectors.
func ExampleProcessor_SelectZero() {
	p, _ := linalg.New()

	zeros, err := p.SelectZero(context.Background(), []vector.Vector{
		vector.MustNew(0, 0, 0),
		vector.MustNew(1, 2, 3),
		vector.MustNew("0.00000000001", 0, 0),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(zeros.ToArray())
	// Output: [0 2]
}

// ExampleErrItem shows how a failing item is reported.
func ExampleErrItem() {
	p, _ := linalg.New()

	_, err := p.Normalise(context.Background(), []vector.Vector{
		vector.MustNew(1, 0),
		vector.MustNew(0, 0),
	})

	var item *linalg.ErrItem
	if errors.As(err, &item) && errors.Is(err, vector.ErrZeroVector) {
		fmt.Println(item.Op, item.Index)
	}
	// Output: normalise 1
}
