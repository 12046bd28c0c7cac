package cbowdata

import (
	"reflect"
	"testing"
)

func TestPrune(t *testing.T) {
	b := NewBuilder(1)
	b.Add("the cat and the dog and the bird")
	b.Add("a cat and a dog")
	c := b.Build()

	pruned := c.Prune(2)

	if _, ok := pruned.Vocab.ID("bird"); ok {
		t.Error("infrequent word survived pruning")
	}
	expected := map[string]Entry{
		"the": {ID: 0, Count: 3},
		"cat": {ID: 1, Count: 2},
		"and": {ID: 2, Count: 3},
		"dog": {ID: 3, Count: 2},
		"a":   {ID: 4, Count: 2},
	}
	if actual := pruned.Vocab.Map(); !reflect.DeepEqual(actual, expected) {
		t.Errorf("expected %v but got %v", expected, actual)
	}
	if len(pruned.Sentences) != 2 {
		t.Errorf("expected 2 sentences but got %d", len(pruned.Sentences))
	}

	// The old corpus is untouched.
	if c.Vocab.Len() != 6 {
		t.Errorf("original vocab changed: %d words", c.Vocab.Len())
	}
	if len(c.Sentences) != 2 {
		t.Errorf("original corpus changed: %d sentences", len(c.Sentences))
	}
}

// Sentences that fall below the minimum length after filtering are
// re-rejected by the rebuild.
func TestPruneDropsShortSentences(t *testing.T) {
	b := NewBuilder(1)
	b.Add("the cat and the dog and the bird")
	b.Add("a cat and a dog")
	c := b.Build()

	pruned := c.Prune(3)

	// Only "the" and "and" survive; the second sentence shrinks to a
	// single word and is dropped.
	if len(pruned.Sentences) != 1 {
		t.Fatalf("expected 1 sentence but got %d", len(pruned.Sentences))
	}
	if pruned.Vocab.Len() != 2 {
		t.Errorf("expected 2 words but got %d", pruned.Vocab.Len())
	}
	for id := 0; id < pruned.Vocab.Len(); id++ {
		if pruned.Vocab.Word(id) == "" {
			t.Errorf("ID %d has no word", id)
		}
	}
}
