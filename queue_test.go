package huffman

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func TestPriorityQueue_Order(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pq := NewPriorityQueue[int](ByPriority[int])

	var pushed, popped int
	var shadow []uint64
	for round := 0; round < 1000; round++ {
		if rng.Intn(3) != 0 || pq.Len() == 0 {
			p := uint64(rng.Intn(50))
			if err := pq.Push(&Entry[int]{Payload: round, Priority: p}); err != nil {
				t.Fatalf("Push: unexpected error: %v", err)
			}
			shadow = append(shadow, p)
			pushed++
		} else {
			entry, err := pq.Pop()
			if err != nil {
				t.Fatalf("Pop: unexpected error: %v", err)
			}
			sort.Slice(shadow, func(i, j int) bool { return shadow[i] < shadow[j] })
			if entry.Priority != shadow[0] {
				t.Fatalf("round %d: expected priority %d, got %d", round, shadow[0], entry.Priority)
			}
			shadow = shadow[1:]
			popped++
		}
		if expect := pushed - popped; pq.Len() != expect {
			t.Fatalf("round %d: expected Len() %d, got %d", round, expect, pq.Len())
		}
	}
}

func TestPriorityQueue_Comparator(t *testing.T) {
	// Equal priorities fall back to the payload, in descending order.
	cmp := func(a, b *Entry[string]) int {
		if c := ByPriority(a, b); c != 0 {
			return c
		}
		switch {
		case a.Payload > b.Payload:
			return -1
		case a.Payload < b.Payload:
			return 1
		default:
			return 0
		}
	}
	pq := NewPriorityQueue[string](cmp)
	for _, e := range []Entry[string]{
		{"a", 2}, {"b", 1}, {"c", 2}, {"d", 1}, {"e", 0},
	} {
		e := e
		if err := pq.Push(&e); err != nil {
			t.Fatalf("Push: unexpected error: %v", err)
		}
	}

	expect := []string{"e", "d", "b", "c", "a"}
	for i, want := range expect {
		top, err := pq.Peek()
		if err != nil {
			t.Fatalf("Peek: unexpected error: %v", err)
		}
		entry, err := pq.Pop()
		if err != nil {
			t.Fatalf("Pop: unexpected error: %v", err)
		}
		if top != entry {
			t.Errorf("pop %d: Peek returned %q but Pop returned %q", i, top.Payload, entry.Payload)
		}
		if entry.Payload != want {
			t.Errorf("pop %d: expected %q, got %q", i, want, entry.Payload)
		}
	}
}

func TestPriorityQueue_Errors(t *testing.T) {
	pq := NewPriorityQueue[int](ByPriority[int])

	if _, err := pq.Pop(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("Pop on empty queue: expected ErrEmptyContainer, got %v", err)
	}
	if _, err := pq.Peek(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("Peek on empty queue: expected ErrEmptyContainer, got %v", err)
	}
	if err := pq.Push(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Push(nil): expected ErrInvalidArgument, got %v", err)
	}
	if pq.Len() != 0 {
		t.Errorf("expected Len() 0 after failed Push, got %d", pq.Len())
	}
}
