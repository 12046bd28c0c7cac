package cbowdata

import (
	"testing"

	"github.com/unixpickle/anyvec/anyvec32"
)

func offsetTestSampler() *Sampler {
	b := NewBuilder(1)
	b.Add("a b c d")
	b.Add("e f g h i")
	return NewSampler(b.Build(), anyvec32.CurrentCreator())
}

func TestSetOffsetZero(t *testing.T) {
	fresh := offsetTestSampler()
	seeked := offsetTestSampler()
	seeked.SetOffset(0)
	if seeked.Cursor() != (Cursor{}) {
		t.Error("expected initial cursor but got", seeked.Cursor())
	}
	_, expected := fresh.Next()
	_, actual := seeked.Next()
	if actual != expected {
		t.Errorf("expected target %d but got %d", expected, actual)
	}
}

func TestSetOffsetWraparound(t *testing.T) {
	s := offsetTestSampler()
	s.SetOffset(s.Size())
	if s.Cursor() != (Cursor{}) {
		t.Error("expected initial cursor but got", s.Cursor())
	}
}

func TestSetOffsetWithinSentence(t *testing.T) {
	s := offsetTestSampler()
	s.SetOffset(1)
	window, target := s.Next()
	checkWindow(t, window, []float32{1, 3})
	if target != 2 {
		t.Errorf("expected target 2 but got %d", target)
	}
}

func TestSetOffsetNextSentence(t *testing.T) {
	// Offset 3 lands past the first sentence's last window, so the
	// cursor rolls to the start of the second sentence.
	s := offsetTestSampler()
	s.SetOffset(3)
	if s.Cursor() != (Cursor{Sentence: 1, Word: 0}) {
		t.Fatal("expected cursor at second sentence but got", s.Cursor())
	}
	window, target := s.Next()
	checkWindow(t, window, []float32{4, 6})
	if target != 5 {
		t.Errorf("expected target 5 but got %d", target)
	}
}
