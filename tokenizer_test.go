package cbowdata

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		In  string
		Out []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"  A  b\tC\nd ", []string{"a", "b", "c", "d"}},
		{"don't stop-me now123ok", []string{"don", "t", "stop", "me", "now", "ok"}},
		{"", []string{}},
		{"123 456 --", []string{}},
	}
	for _, test := range tests {
		actual := Tokenize(test.In)
		if !reflect.DeepEqual(actual, test.Out) {
			t.Errorf("tokenize %q: expected %v but got %v", test.In, test.Out, actual)
		}
	}
}
