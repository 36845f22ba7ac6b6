// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

// Package list provides a generic doubly linked list with constant-time
// insertion and removal at both ends, a tracked length, and indexed access
// that walks from whichever end of the list is closer to the target.
//
// A [List] is not safe for concurrent use. Callers sharing one across
// goroutines must hold their own lock around every operation; the package
// does not lock on their behalf.
package list

import (
	"fmt"
	"iter"
)

type (
	// List is a doubly linked list. The zero value is an empty list ready
	// for use; [New] exists for symmetry with the rest of the module.
	List[T any] struct {
		head *Node[T]
		tail *Node[T]
		len  int
	}

	// Node is a single element of a [List]. Nodes are created by
	// [List.PushFront] and [List.PushBack] and belong to exactly one list
	// until removed from it.
	Node[T any] struct {
		next  *Node[T]
		prev  *Node[T]
		Value T
	}
)

// OutOfRangeError is returned by [List.Get] when the requested index falls
// outside [0, [List.Len]).
type OutOfRangeError struct {
	Index int // The index the caller asked for
	Len   int // The length of the list at the time of the call
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("list: index %d out of range [0, %d)", e.Index, e.Len)
}

// New creates a new, empty [List].
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements currently in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first node of the list, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node of the list, or nil if the list is empty.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// Next returns the node following n, or nil if n is the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node preceding n, or nil if n is the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// PushFront inserts a new node carrying value at the front of the list, and
// returns it.
func (l *List[T]) PushFront(value T) *Node[T] {
	node := &Node[T]{Value: value}
	l.nodeToFront(node)
	return node
}

// PushBack inserts a new node carrying value at the back of the list, and
// returns it.
func (l *List[T]) PushBack(value T) *Node[T] {
	node := &Node[T]{Value: value}
	l.nodeToBack(node)
	return node
}

// PopFront removes the first element and returns its value. The second
// return is false if the list was empty; popping from an empty list is a
// normal outcome, not an error.
func (l *List[T]) PopFront() (T, bool) {
	node := l.head
	if node == nil {
		var zero T
		return zero, false
	}
	l.Remove(node)
	return node.Value, true
}

// PopBack removes the last element and returns its value. The second return
// is false if the list was empty.
func (l *List[T]) PopBack() (T, bool) {
	node := l.tail
	if node == nil {
		var zero T
		return zero, false
	}
	l.Remove(node)
	return node.Value, true
}

// Get returns the value at the given zero-based index without removing it.
// It walks forward from the head for indices in the first half of the list,
// and backward from the tail otherwise, so the cost is O(min(index,
// len-index)). An index outside [0, [List.Len]) produces an
// [*OutOfRangeError]; it is never clamped to a valid position.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.len {
		var zero T
		return zero, &OutOfRangeError{Index: index, Len: l.len}
	}

	var node *Node[T]
	if index < l.len/2 {
		node = mustLinked(l.head)
		for range index {
			node = mustLinked(node.next)
		}
	} else {
		node = mustLinked(l.tail)
		for range l.len - index - 1 {
			node = mustLinked(node.prev)
		}
	}
	return node.Value, nil
}

// All returns a head-to-tail iterator over the element values. Each range
// over the result starts a fresh traversal from the head. Mutating the list
// while a traversal is in progress leaves that traversal's behavior
// unspecified.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Backward returns a tail-to-head iterator over the element values, with
// the same caveats as [List.All].
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.tail; node != nil; node = node.prev {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Remove detaches the specified node from the list. The node must currently
// belong to this list: removing a node twice, or a node owned by another
// list, corrupts both structures.
func (l *List[T]) Remove(node *Node[T]) {
	next := node.next
	prev := node.prev

	if next == nil {
		l.tail = prev
	} else {
		next.prev = prev
	}

	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}

	// Fully detach the node so it cannot pin the live chain.
	node.next = nil
	node.prev = nil
	l.len--
}

// MoveToFront moves the specified node to the front of the list. The node
// must currently belong to this list.
func (l *List[T]) MoveToFront(node *Node[T]) {
	l.Remove(node)
	l.nodeToFront(node)
}

// Clear empties the list. Nodes handed out earlier no longer belong to any
// list afterwards.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// nodeToFront links the specified node in as the new head.
func (l *List[T]) nodeToFront(node *Node[T]) {
	head := l.head
	l.head = node
	l.len++
	if head == nil {
		l.tail = node
		return
	}
	node.next = head
	head.prev = node
}

// nodeToBack links the specified node in as the new tail.
func (l *List[T]) nodeToBack(node *Node[T]) {
	tail := l.tail
	l.tail = node
	l.len++
	if tail == nil {
		l.head = node
		return
	}
	node.prev = tail
	tail.next = node
}

// mustLinked guards walks that the tracked length says cannot fall off the
// list. A nil node here means the head/tail/len bookkeeping is broken, so
// this is a container bug, never a caller error.
func mustLinked[T any](node *Node[T]) *Node[T] {
	if node == nil {
		panic(fmt.Errorf("list: internal links disagree with tracked length"))
	}
	return node
}
