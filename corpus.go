package cbowdata

import (
	"encoding/json"
	"errors"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	serializer.RegisterTypedDeserializer((&Corpus{}).SerializerType(), DeserializeCorpus)
}

// A Builder ingests raw text and accumulates a corpus of sentences
// encoded as vocabulary IDs.
type Builder struct {
	window    int
	vocab     *Vocab
	sentences [][]int
}

// NewBuilder creates a Builder for corpora with the given context
// window radius.
// A sentence must contain at least 2*window+1 words to be kept.
func NewBuilder(window int) *Builder {
	return &Builder{window: window, vocab: NewVocab()}
}

// Add tokenizes the text and appends it to the corpus as a single
// sentence.
//
// It returns false when the sentence is too short to contain even one
// context window, in which case the sentence is dropped. IDs assigned
// and counts bumped while encoding a dropped sentence are kept;
// rejection does not roll the vocabulary back.
func (b *Builder) Add(text string) bool {
	words := Tokenize(text)
	ids := make([]int, len(words))
	for i, word := range words {
		ids[i] = b.vocab.Add(word)
	}
	if len(ids) < 2*b.window+1 {
		return false
	}
	b.sentences = append(b.sentences, ids)
	return true
}

// Build finalizes the corpus.
// The builder must not be used after Build.
func (b *Builder) Build() *Corpus {
	return &Corpus{Window: b.window, Sentences: b.sentences, Vocab: b.vocab}
}

// A Corpus is an ordered collection of sentences encoded as vocabulary
// IDs, together with the vocabulary that encoded them.
//
// Every ID stored in a sentence is a live ID in Vocab, and every
// sentence holds at least one full context window. A Corpus is never
// modified once built, so samplers over the same corpus may share it.
type Corpus struct {
	// Window is the context radius sentences were filtered against.
	Window int

	Sentences [][]int
	Vocab     *Vocab
}

// DeserializeCorpus deserializes a Corpus.
func DeserializeCorpus(d []byte) (corpus *Corpus, err error) {
	defer essentials.AddCtxTo("deserialize Corpus", &err)
	var vocab *Vocab
	var window int
	var sentences serializer.Bytes
	if err := serializer.DeserializeAny(d, &vocab, &window, &sentences); err != nil {
		return nil, err
	}
	res := &Corpus{Window: window, Vocab: vocab}
	if err := json.Unmarshal(sentences, &res.Sentences); err != nil {
		return nil, err
	}
	for _, sentence := range res.Sentences {
		for _, id := range sentence {
			if id < 0 || id >= vocab.Len() {
				return nil, errors.New("sentence ID out of range")
			}
		}
	}
	return res, nil
}

// NumSamples returns the total number of valid center positions across
// all sentences.
func (c *Corpus) NumSamples() int {
	var size int
	for _, sentence := range c.Sentences {
		if len(sentence) > 2*c.Window {
			size += len(sentence) - 2*c.Window
		}
	}
	return size
}

// SerializerType returns the unique ID used to serialize a Corpus with
// the serializer package.
func (c *Corpus) SerializerType() string {
	return "github.com/unixpickle/cbowdata.Corpus"
}

// Serialize serializes the Corpus.
func (c *Corpus) Serialize() ([]byte, error) {
	sentences, err := json.Marshal(c.Sentences)
	if err != nil {
		return nil, err
	}
	return serializer.SerializeAny(c.Vocab, c.Window, serializer.Bytes(sentences))
}
