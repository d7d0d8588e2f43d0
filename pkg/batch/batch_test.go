package batch

import "testing"

func TestBatch_FlushResets(t *testing.T) {
	var submitted [][]int
	b := New(4, func(entries []int) {
		submitted = append(submitted, append([]int(nil), entries...))
	})

	b.Add(1)
	b.Add(2)
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}

	b.Flush()
	if b.Len() != 0 {
		t.Errorf("Len() after Flush = %d, want 0", b.Len())
	}
	if len(submitted) != 1 || len(submitted[0]) != 2 {
		t.Fatalf("submitted = %v, want one batch of 2", submitted)
	}
}

func TestBatch_EmptyFlushIsNoop(t *testing.T) {
	calls := 0
	b := New(4, func([]int) { calls++ })
	b.Flush()
	b.Flush()
	if calls != 0 {
		t.Errorf("submit called %d times for empty batch", calls)
	}
	if b.Flushes() != 0 {
		t.Errorf("Flushes() = %d, want 0", b.Flushes())
	}
}

func TestBatch_ImplicitFlushAtCapacity(t *testing.T) {
	var got []int
	var sizes []int
	b := New(3, func(entries []int) {
		sizes = append(sizes, len(entries))
		got = append(got, entries...)
	})

	for i := 0; i < 7; i++ {
		b.Add(i)
		if b.Len() > b.Cap() {
			t.Fatalf("Len() = %d exceeds Cap() = %d", b.Len(), b.Cap())
		}
	}

	// Two full batches were submitted before the 4th and 7th entries.
	if len(sizes) != 2 || sizes[0] != 3 || sizes[1] != 3 {
		t.Errorf("implicit flush sizes = %v, want [3 3]", sizes)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}

	b.Flush()
	if len(got) != 7 {
		t.Fatalf("submitted %d entries, want 7", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Errorf("entry %d = %d, order not preserved", i, v)
		}
	}
}

func TestBatch_DefaultCapacity(t *testing.T) {
	b := New[Entry](0, nil)
	if b.Cap() != Capacity {
		t.Errorf("Cap() = %d, want %d", b.Cap(), Capacity)
	}

	for i := 0; i < Capacity+1; i++ {
		b.Add(Entry{})
	}
	if b.Flushes() != 1 || b.Len() != 1 {
		t.Errorf("after Capacity+1 adds: Flushes() = %d, Len() = %d; want 1, 1", b.Flushes(), b.Len())
	}
}
