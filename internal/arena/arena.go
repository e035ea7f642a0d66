// Package arena implements doubly linked lists whose nodes live in a single slice
// and are addressed by stable indices. A node keeps its index when moved between
// lists of the same Arena, so other structures can hold the index as a reference.
package arena

import "slices"

// Index refers to a node of an Arena, Nil refers to no node
type Index int32

// Nil is the index of no node
const Nil Index = 0

type node[T any] struct {
	prev  Index
	next  Index
	inUse bool
	value T
}

// List is the header of a list of nodes stored in an Arena.
// The zero value is an empty list
type List struct {
	head Index
	tail Index
	size int
}

// Front returns the first node, Nil when empty
func (l *List) Front() Index {
	return l.head
}

// Back returns the last node, Nil when empty
func (l *List) Back() Index {
	return l.tail
}

// Len ...
func (l *List) Len() int {
	return l.size
}

// Empty ...
func (l *List) Empty() bool {
	return l.size == 0
}

// Arena owns the nodes of any number of lists
type Arena[T any] struct {
	nodes []node[T]
	free  Index // single linked list of released nodes, by next field
	live  int
}

// Grow preallocates space for n more nodes
func (a *Arena[T]) Grow(n int) {
	a.nodes = slices.Grow(a.nodes, n)
}

// at is 1-based, index 0 is Nil
func (a *Arena[T]) at(i Index) *node[T] {
	return &a.nodes[i-1]
}

func (a *Arena[T]) alloc(value T) Index {
	a.live++
	if a.free != Nil {
		i := a.free
		n := a.at(i)
		a.free = n.next
		*n = node[T]{inUse: true, value: value}
		return i
	}
	a.nodes = append(a.nodes, node[T]{inUse: true, value: value})
	return Index(len(a.nodes))
}

func (a *Arena[T]) release(i Index) T {
	n := a.at(i)
	value := n.value
	*n = node[T]{next: a.free}
	a.free = i
	a.live--
	return value
}

func (a *Arena[T]) linkBack(l *List, i Index) {
	n := a.at(i)
	n.prev = l.tail
	n.next = Nil
	if l.tail == Nil {
		l.head = i
	} else {
		a.at(l.tail).next = i
	}
	l.tail = i
	l.size++
}

func (a *Arena[T]) unlink(l *List, i Index) {
	n := a.at(i)
	if n.prev == Nil {
		l.head = n.next
	} else {
		a.at(n.prev).next = n.next
	}
	if n.next == Nil {
		l.tail = n.prev
	} else {
		a.at(n.next).prev = n.prev
	}
	n.prev = Nil
	n.next = Nil
	l.size--
}

// PushBack allocates a node holding value and appends it to l
func (a *Arena[T]) PushBack(l *List, value T) Index {
	i := a.alloc(value)
	a.linkBack(l, i)
	return i
}

// Remove unlinks node i from l and releases it, returns the value it held.
// i MUST be a live node of l
func (a *Arena[T]) Remove(l *List, i Index) T {
	a.unlink(l, i)
	return a.release(i)
}

// MoveToBack moves node i from list `from` to the back of list `to`, from and to can be the same list.
// The index of the node does not change
func (a *Arena[T]) MoveToBack(from *List, to *List, i Index) {
	if from == to && to.tail == i {
		return
	}
	a.unlink(from, i)
	a.linkBack(to, i)
}

// PopFront removes the first node of l
func (a *Arena[T]) PopFront(l *List) (T, bool) {
	if l.head == Nil {
		var empty T
		return empty, false
	}
	return a.Remove(l, l.head), true
}

// Value returns a pointer to the value of node i, valid until the next allocation
func (a *Arena[T]) Value(i Index) *T {
	return &a.at(i).value
}

// Next returns the node after i, Nil at the end of list
func (a *Arena[T]) Next(i Index) Index {
	return a.at(i).next
}

// Prev returns the node before i, Nil at the start of list
func (a *Arena[T]) Prev(i Index) Index {
	return a.at(i).prev
}

// Live reports whether i refers to an allocated node
func (a *Arena[T]) Live(i Index) bool {
	if i <= Nil || int(i) > len(a.nodes) {
		return false
	}
	return a.at(i).inUse
}

// Len returns the number of allocated nodes over all lists
func (a *Arena[T]) Len() int {
	return a.live
}

// Reset releases all nodes, every List of this arena MUST be reset to its zero value too
func (a *Arena[T]) Reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
	a.free = Nil
	a.live = 0
}

// Walk calls fn for every node of l from front to back until fn returns false
func (a *Arena[T]) Walk(l *List, fn func(i Index, value *T) bool) {
	for i := l.head; i != Nil; {
		next := a.at(i).next
		if !fn(i, &a.at(i).value) {
			return
		}
		i = next
	}
}
