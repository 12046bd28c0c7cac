package cbowdata

import (
	"math/rand"

	"github.com/unixpickle/anyvec"
)

// A DataSource provides training samples one at a time.
//
// Trainers drain samples with Next until Done reports true, then call
// Reset to start another pass.
type DataSource interface {
	// Size returns the number of samples in one full pass.
	Size() int

	// Done reports whether the current pass is finished.
	Done() bool

	// Reset starts a new pass, reordering samples with r.
	Reset(r *rand.Rand)

	// Next produces the next sample.
	Next() (window anyvec.Vector, target int)
}

// A Cursor identifies the next center word to emit as a position in a
// sampler's current sentence order.
type Cursor struct {
	Sentence int
	Word     int
}

// A Sampler emits CBOW context windows from a corpus.
//
// Each Sampler owns its own cursor and sentence order, so any number
// of samplers may share one Corpus. A single Sampler must not be used
// from multiple goroutines at once.
type Sampler struct {
	corpus  *Corpus
	creator anyvec.Creator
	order   []int
	cur     Cursor
}

// NewSampler creates a Sampler over the corpus.
//
// Windows are materialized as vectors from c. The initial sentence
// order matches the corpus order until the first Reset.
func NewSampler(corpus *Corpus, c anyvec.Creator) *Sampler {
	order := make([]int, len(corpus.Sentences))
	for i := range order {
		order[i] = i
	}
	return &Sampler{corpus: corpus, creator: c, order: order}
}

// Corpus returns the corpus the sampler reads from.
func (s *Sampler) Corpus() *Corpus {
	return s.corpus
}

// Cursor returns the sampler's current position.
func (s *Sampler) Cursor() Cursor {
	return s.cur
}

// Size returns the total number of context windows in one full pass.
func (s *Sampler) Size() int {
	return s.corpus.NumSamples()
}

// Done reports whether the pass is finished.
//
// The word position is only validated against the boundary of the
// final sentence. Earlier sentences need no check here: Next rolls the
// cursor onto the following sentence as soon as a sentence runs out of
// windows, so the cursor never rests past the end of a non-final
// sentence. Callers that move the cursor by any means other than Next
// must not rely on Done to bounds-check mid-corpus positions.
func (s *Sampler) Done() bool {
	if len(s.order) == 0 {
		return true
	}
	if s.cur.Sentence >= len(s.order) {
		return true
	} else if s.cur.Sentence == len(s.order)-1 {
		last := s.sentence(s.cur.Sentence)
		if s.cur.Word > len(last)-(2*s.corpus.Window+1) {
			return true
		}
	}
	return false
}

// Reset starts a new pass: it uniformly reshuffles the sampler's
// sentence order using r and rewinds the cursor.
//
// Reshuffling changes the enumeration order of the next pass but not
// the multiset of samples it produces.
func (s *Sampler) Reset(r *rand.Rand) {
	r.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	s.cur = Cursor{}
}

// Next produces the next context window and its target word ID.
//
// The window holds the Window IDs preceding the target followed by the
// Window IDs following it, in sentence order. Calling Next after Done
// reports true is invalid and panics on the out-of-range position.
func (s *Sampler) Next() (anyvec.Vector, int) {
	w := s.corpus.Window
	sentence := s.sentence(s.cur.Sentence)
	target := sentence[s.cur.Word+w]
	vals := make([]float64, 2*w)
	for i := 0; i < w; i++ {
		vals[i] = float64(sentence[s.cur.Word+i])
		vals[i+w] = float64(sentence[s.cur.Word+w+i+1])
	}
	s.cur.Word++
	if s.cur.Word >= len(sentence)-2*w {
		s.cur.Word = 0
		s.cur.Sentence++
	}
	window := s.creator.MakeVectorData(s.creator.MakeNumericList(vals))
	return window, target
}

func (s *Sampler) sentence(i int) []int {
	return s.corpus.Sentences[s.order[i]]
}
