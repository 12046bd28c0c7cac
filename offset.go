package cbowdata

// SetOffset repositions the cursor at the given logical offset into
// the flattened sample space, normalized modulo Size.
//
// It lets independent samplers over one shared corpus start at evenly
// spaced points and cover decorrelated parts of a pass without sharing
// any cursor state. The walk subtracts whole sentence lengths; an
// offset that lands past a sentence's last window rolls over to the
// start of the next sentence.
//
// Calling SetOffset on a corpus with no samples is invalid.
func (s *Sampler) SetOffset(offset int) {
	offset %= s.Size()
	sentence := 0
	for offset > len(s.sentence(sentence)) {
		offset -= len(s.sentence(sentence))
		sentence++
	}
	if offset < len(s.sentence(sentence))-s.corpus.Window {
		s.cur = Cursor{Sentence: sentence, Word: offset}
	} else {
		s.cur = Cursor{Sentence: sentence + 1, Word: 0}
	}
}
