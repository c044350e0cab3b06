package treap_test

import (
	"fmt"

	"github.com/fgshun/example-data-structure/monoid"
	"github.com/fgshun/example-data-structure/treap"
)

func Example() {
	t := treap.NewFromSlice[int, int](monoid.AddSum[int]{}, []int{1, 2, 3, 4, 5})

	sum, _ := t.Query(1, 4)
	fmt.Println(sum)

	_ = t.Update(0, 3, 10)
	fmt.Println(t.Values())

	sum, _ = t.Query(0, t.Len())
	fmt.Println(sum)

	// Output:
	// 9
	// [11 12 13 4 5]
	// 45
}

func ExampleTreap_Slice() {
	t := treap.NewFromSlice[int, int](monoid.AddSum[int]{}, []int{0, 1, 2, 3, 4, 5, 6})

	odd, _ := t.Slice(1, 7, 2)
	fmt.Println(odd.Values())

	_ = t.DeleteSlice(0, 7, 2)
	fmt.Println(t.Values())

	// Output:
	// [1 3 5]
	// [1 3 5]
}
