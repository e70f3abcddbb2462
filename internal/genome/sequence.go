package genome

// Sequence allocates unique, strictly increasing 32-bit identifiers.
//
// A Sequence is deliberately not safe for concurrent use: id allocation
// happens in single construction or mutation passes, and callers that need
// parallel allocation from the same Population must serialize access
// themselves. Two independent sequences exist per Population (genome ids and
// the shared node/connection innovation space); they must never be merged,
// copied, or reset once the Population exists.
type Sequence struct {
	next uint32
}

// NewSequence returns a sequence whose first Next call yields start.
func NewSequence(start uint32) *Sequence {
	return &Sequence{next: start}
}

// Next returns the current value and advances the sequence.
func (s *Sequence) Next() uint32 {
	id := s.next
	s.next++
	return id
}

// Peek reports the value the next call to Next will return. Used when
// persisting a population so the cursor survives restarts.
func (s *Sequence) Peek() uint32 {
	return s.next
}
