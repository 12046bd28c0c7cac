package cbowdata

import (
	"encoding/json"
	"errors"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	serializer.RegisterTypedDeserializer((&Vocab{}).SerializerType(), DeserializeVocab)
}

// An Entry describes one vocabulary word.
type Entry struct {
	// ID is the word's dense ID.
	ID int

	// Count is the number of times the word occurred.
	Count int
}

// A Vocab assigns a dense ID to every distinct word and records how
// many times each word occurred.
//
// IDs are handed out in first-seen order starting at zero, so the live
// IDs always form the range [0, Len()).
//
// A Vocab is only mutated through Add during ingestion. Once a Corpus
// has been built around it, it should be treated as read-only so that
// any number of samplers can share it.
type Vocab struct {
	words  []string
	counts []int
	ids    map[string]int
}

// NewVocab creates an empty vocabulary.
func NewVocab() *Vocab {
	return &Vocab{ids: map[string]int{}}
}

// DeserializeVocab deserializes a Vocab.
func DeserializeVocab(d []byte) (vocab *Vocab, err error) {
	defer essentials.AddCtxTo("deserialize Vocab", &err)
	var enc vocabData
	if err := json.Unmarshal(d, &enc); err != nil {
		return nil, err
	}
	if len(enc.Words) != len(enc.Counts) {
		return nil, errors.New("word and count lengths differ")
	}
	res := NewVocab()
	res.words = enc.Words
	res.counts = enc.Counts
	for i, w := range enc.Words {
		res.ids[w] = i
	}
	return res, nil
}

// Add looks up the word's ID, assigning the next unused ID if the word
// has never been seen, and counts the occurrence.
func (v *Vocab) Add(word string) int {
	id, ok := v.ids[word]
	if !ok {
		id = len(v.words)
		v.ids[word] = id
		v.words = append(v.words, word)
		v.counts = append(v.counts, 0)
	}
	v.counts[id]++
	return id
}

// Len returns the number of distinct words.
func (v *Vocab) Len() int {
	return len(v.words)
}

// ID gets the ID for the word.
func (v *Vocab) ID(word string) (int, bool) {
	id, ok := v.ids[word]
	return id, ok
}

// Word gets the word for the given ID.
//
// If the ID is absent, "" is returned.
func (v *Vocab) Word(id int) string {
	if id < 0 || id >= len(v.words) {
		return ""
	}
	return v.words[id]
}

// Count returns how many times the word with the given ID occurred.
// Absent IDs have a count of zero.
func (v *Vocab) Count(id int) int {
	if id < 0 || id >= len(v.counts) {
		return 0
	}
	return v.counts[id]
}

// Map returns the vocabulary as a word to entry mapping.
//
// The map is rebuilt on every call; mutating it does not affect v.
func (v *Vocab) Map() map[string]Entry {
	res := map[string]Entry{}
	for id, word := range v.words {
		res[word] = Entry{ID: id, Count: v.counts[id]}
	}
	return res
}

// MostCommon produces the n words with the most occurrences.
// If there are fewer than n distinct words, all words are returned.
func (v *Vocab) MostCommon(n int) []string {
	words := append([]string{}, v.words...)
	if len(words) <= n {
		return words
	}
	counts := append([]int{}, v.counts...)
	essentials.VoodooSort(counts, func(i, j int) bool {
		return counts[i] > counts[j]
	}, words)
	return words[:n]
}

// SerializerType returns the unique ID used to serialize a Vocab with
// the serializer package.
func (v *Vocab) SerializerType() string {
	return "github.com/unixpickle/cbowdata.Vocab"
}

// Serialize serializes the Vocab.
func (v *Vocab) Serialize() ([]byte, error) {
	return json.Marshal(vocabData{Words: v.words, Counts: v.counts})
}

type vocabData struct {
	Words  []string `json:"words"`
	Counts []int    `json:"counts"`
}
