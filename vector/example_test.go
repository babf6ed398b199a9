package vector_test

import (
	"errors"
	"fmt"

	"github.com/ivalderrama/linear-algebra-refresher/vector"
)

func Example() {
	v := vector.MustNew(3, 4)
	w := vector.MustNew("0.5", -1)

	sum, _ := v.Plus(w)
	dot, _ := v.Dot(w)
	u, _ := v.Normalised()

	fmt.Println(sum)
	fmt.Println(dot)
	fmt.Println(v.Magnitude())
	fmt.Println(u)
	// Output:
	// Vector: (3.5, 3)
	// -2.5
	// 5
	// Vector: (0.6, 0.8)
}

func ExampleVector_Cross() {
	c, _ := vector.MustNew(1, 0).Cross(vector.MustNew(0, 1))
	area, _ := vector.MustNew(1, 0, 0).AreaOfTriangleWith(vector.MustNew(0, 1, 0))

	fmt.Println(c)
	fmt.Println(area)

	_, err := vector.MustNew(1, 2, 3, 4).Cross(vector.MustNew(4, 3, 2, 1))
	fmt.Println(err)
	// Output:
	// Vector: (0, 0, 1)
	// 0.5
	// Only defined in two or three dimensions
}

func ExampleVector_ComponentOrthogonalTo() {
	v := vector.MustNew(1, 2, 3)
	zero, _ := vector.Zero(3)

	_, err := v.ComponentParallelTo(zero)
	fmt.Println(err)

	_, err = v.ComponentOrthogonalTo(zero)
	fmt.Println(err, errors.Is(err, vector.ErrNoUniqueOrthogonalComponent))
	// Output:
	// No unique parallel component
	// No unique orthogonal component true
}
