package batch

// SubmitFunc receives the accumulated entries of a batch. The slice is only
// valid for the duration of the call.
type SubmitFunc[T any] func(entries []T)

// Batch accumulates draw entries up to a fixed capacity. Adding to a full
// batch submits and resets it first, so entries are never dropped.
type Batch[T any] struct {
	entries []T
	submit  SubmitFunc[T]
	flushes int
}

// New creates a batch holding at most capacity entries. A capacity below 1
// uses Capacity.
func New[T any](capacity int, submit SubmitFunc[T]) *Batch[T] {
	if capacity < 1 {
		capacity = Capacity
	}
	return &Batch[T]{
		entries: make([]T, 0, capacity),
		submit:  submit,
	}
}

// Add appends an entry, flushing first when the batch is full.
func (b *Batch[T]) Add(e T) {
	if len(b.entries) >= cap(b.entries) {
		b.Flush()
	}
	b.entries = append(b.entries, e)
}

// Flush submits pending entries, if any, and resets the batch.
func (b *Batch[T]) Flush() {
	if len(b.entries) == 0 {
		return
	}
	if b.submit != nil {
		b.submit(b.entries)
	}
	b.flushes++
	b.entries = b.entries[:0]
}

// Len returns the number of pending entries.
func (b *Batch[T]) Len() int {
	return len(b.entries)
}

// Cap returns the batch capacity.
func (b *Batch[T]) Cap() int {
	return cap(b.entries)
}

// Flushes returns how many times the batch has been submitted.
func (b *Batch[T]) Flushes() int {
	return b.flushes
}
