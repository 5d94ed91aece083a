package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim string
		want  []string
	}{
		{"comma", "Texas,1,600,400", ",", []string{"Texas", "1", "600", "400"}},
		{"no delimiter", "Texas", ",", []string{"Texas"}},
		{"empty line", "", ",", []string{""}},
		{"leading empty", ",a", ",", []string{"", "a"}},
		{"trailing empty", "a,", ",", []string{"a", ""}},
		{"adjacent", "a,,b", ",", []string{"a", "", "b"}},
		{"no trim", " a , b ", ",", []string{" a ", " b "}},
		{"space delimiter", "search New York", " ", []string{"search", "New", "York"}},
		{"multi-char delimiter", "a::b::c", "::", []string{"a", "b", "c"}},
		{"non-overlapping", "a:::b", "::", []string{"a", ":b"}},
		{"empty delimiter", "abc", "", []string{"abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.line, tt.delim))
		})
	}
}
