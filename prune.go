package cbowdata

import "strings"

// Prune rebuilds the corpus without the words that occur fewer than
// minCount times.
//
// Surviving words are re-encoded from scratch, so the new vocabulary's
// IDs are dense again, and sentences that fall below the minimum
// length after filtering are dropped. The receiver is left untouched:
// callers swap in the returned corpus and create fresh samplers for
// it, since cursors over the old corpus are meaningless afterwards.
func (c *Corpus) Prune(minCount int) *Corpus {
	b := NewBuilder(c.Window)
	var kept []string
	for _, sentence := range c.Sentences {
		kept = kept[:0]
		for _, id := range sentence {
			if c.Vocab.Count(id) >= minCount {
				kept = append(kept, c.Vocab.Word(id))
			}
		}
		b.Add(strings.Join(kept, " "))
	}
	return b.Build()
}
