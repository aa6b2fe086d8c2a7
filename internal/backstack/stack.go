package backstack

import "go.uber.org/atomic"

// Op identifies the mutation that produced a Change.
type Op int

const (
	OpPush Op = iota
	OpPop
	OpUnwind
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpUnwind:
		return "unwind"
	default:
		return "unknown"
	}
}

// Change is the atomic post-mutation snapshot delivered to OnChange
// observers. It is built after the stack is fully updated, so Size, Top and
// Version are always mutually consistent.
type Change[D any] struct {
	Op      Op
	Version uint64
	Size    int
	Top     Record[D]   // nil when the stack is empty
	Popped  []Record[D] // removed records, most recent first; nil for pushes
}

// BackStack is an ordered LIFO collection of Records representing
// navigation history. The zero value is an empty, usable stack.
//
// Mutations must come from a single writer. Version may be read
// concurrently; everything else follows the single-writer model.
type BackStack[D any] struct {
	records  []Record[D] // bottom-first; the top is the last element
	version  atomic.Uint64
	onChange func(Change[D])
	keyCheck func(key string)
}

// Push appends rec as the new top. Always succeeds.
func (s *BackStack[D]) Push(rec Record[D]) {
	if s.keyCheck != nil {
		for _, r := range s.records {
			if r.Key() == rec.Key() {
				s.keyCheck(rec.Key())
				break
			}
		}
	}
	s.records = append(s.records, rec)
	s.notify(Change[D]{Op: OpPush})
}

// PushDestination mints a record around dest and pushes it, returning the
// minted record so the caller can retain its key.
func (s *BackStack[D]) PushDestination(dest D) Record[D] {
	rec := Mint(dest)
	s.Push(rec)
	return rec
}

// Pop removes and returns the current top. The second return is false when
// the stack is empty; an empty pop is a normal outcome, not an error, and
// leaves the stack unchanged.
func (s *BackStack[D]) Pop() (Record[D], bool) {
	if len(s.records) == 0 {
		return nil, false
	}
	top := s.records[len(s.records)-1]
	s.records[len(s.records)-1] = nil // release the reference
	s.records = s.records[:len(s.records)-1]
	s.notify(Change[D]{Op: OpPop, Popped: []Record[D]{top}})
	return top, true
}

// PopUntil pops the top record while the stack is non-empty and pred is
// false on the current top. It stops without popping as soon as pred
// matches the top, or when the stack drains to empty. The predicate is
// evaluated on the current top before each pop, never on a removed record.
// Returns the number of records removed.
//
// PopUntil is written purely against Top and the internal pop so the whole
// unwind publishes as one change.
func (s *BackStack[D]) PopUntil(pred func(Record[D]) bool) int {
	var popped []Record[D]
	for {
		top, ok := s.Top()
		if !ok || pred(top) {
			break
		}
		s.records[len(s.records)-1] = nil
		s.records = s.records[:len(s.records)-1]
		popped = append(popped, top)
	}
	if len(popped) > 0 {
		s.notify(Change[D]{Op: OpUnwind, Popped: popped})
	}
	return len(popped)
}

// Top returns the most recently pushed, not-yet-popped record. The second
// return is false when the stack is empty.
func (s *BackStack[D]) Top() (Record[D], bool) {
	if len(s.records) == 0 {
		return nil, false
	}
	return s.records[len(s.records)-1], true
}

// Len returns the number of records in the stack.
func (s *BackStack[D]) Len() int { return len(s.records) }

// IsEmpty reports whether the stack holds no records.
func (s *BackStack[D]) IsEmpty() bool { return len(s.records) == 0 }

// IsAtRoot reports whether exactly the root record remains.
func (s *BackStack[D]) IsAtRoot() bool { return len(s.records) == 1 }

// Records returns a top-first copy of the stack: index 0 is the current
// top, the last element is the root. Mutating the returned slice does not
// affect the stack.
func (s *BackStack[D]) Records() []Record[D] {
	out := make([]Record[D], len(s.records))
	for i, r := range s.records {
		out[len(s.records)-1-i] = r
	}
	return out
}

// Version returns a monotonically increasing counter bumped once per
// logical mutation (an unwind that removes k records bumps it once). Safe
// to read from a concurrent render loop.
func (s *BackStack[D]) Version() uint64 { return s.version.Load() }

// OnChange registers fn to run synchronously after every mutation with an
// atomic post-mutation snapshot. A nil fn removes the observer.
func (s *BackStack[D]) OnChange(fn func(Change[D])) { s.onChange = fn }

// SetKeyCheck installs a debug hook invoked with the incoming key when a
// Push would duplicate a key already live in the stack. Key uniqueness is a
// caller obligation the stack never enforces; the hook lets tests fail
// loudly. Nil (the default) skips the scan entirely.
func (s *BackStack[D]) SetKeyCheck(fn func(key string)) { s.keyCheck = fn }

// notify fills in the post-mutation fields and delivers the change.
func (s *BackStack[D]) notify(c Change[D]) {
	c.Version = s.version.Inc()
	c.Size = len(s.records)
	if top, ok := s.Top(); ok {
		c.Top = top
	}
	if s.onChange != nil {
		s.onChange(c)
	}
}
