// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

package list_test

import (
	"fmt"
	"slices"

	"github.com/GabrielCS08/data-structures/list"
)

func Example() {
	seq := list.New[int]()

	for _, v := range []int{1, 2, 3} {
		seq.PushBack(v)
	}
	seq.PushFront(0)
	seq.PushFront(-1)
	fmt.Println(slices.Collect(seq.All()), "len:", seq.Len())

	left, _ := seq.PopFront()
	right, _ := seq.PopBack()
	fmt.Println("popped:", left, right)
	fmt.Println(slices.Collect(seq.All()), "len:", seq.Len())

	// Output:
	// [-1 0 1 2 3] len: 5
	// popped: -1 3
	// [0 1 2] len: 3
}

func ExampleList_Get() {
	seq := list.New[string]()
	seq.PushBack("a")
	seq.PushBack("b")
	seq.PushBack("c")

	v, _ := seq.Get(1)
	fmt.Println(v)

	if _, err := seq.Get(99); err != nil {
		fmt.Println(err)
	}

	// Output:
	// b
	// list: index 99 out of range [0, 3)
}

func ExampleList_PopFront() {
	seq := list.New[int]()

	if _, ok := seq.PopFront(); !ok {
		fmt.Println("nothing to pop")
	}

	// Output:
	// nothing to pop
}
