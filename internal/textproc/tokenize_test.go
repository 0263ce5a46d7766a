package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits on punctuation",
			text: "Backend Developer, Freetown!",
			want: []string{"backend", "developer", "freetown"},
		},
		{
			name: "drops stop words and short tokens",
			text: "the team is looking for a developer",
			want: []string{"team", "looking", "developer"},
		},
		{
			name: "preserves compound tech terms",
			text: "Knows C++, C# and Node.js",
			want: []string{"c++", "c#", "node.js"},
		},
		{
			name: "strips sentence-ending dots",
			text: "proficient in python.",
			want: []string{"proficient", "python"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "only punctuation",
			text: "... !!! ---",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestStem(t *testing.T) {
	assert.Equal(t, "run", Stem("running"))
	assert.Equal(t, "skill", Stem("skills"))
	assert.Equal(t, "test", Stem("testing"))

	// Tokens with non-letter runes are never stemmed.
	assert.Equal(t, "c++", Stem("c++"))
	assert.Equal(t, "node.js", Stem("node.js"))
	assert.Equal(t, "utf8", Stem("utf8"))
}

func TestNormalize(t *testing.T) {
	got := Normalize("Testing distributed systems, running Node.js services")
	assert.Equal(t, []string{"test", "distribut", "system", "run", "node.js", "servic"}, got)
}

func TestNormalizeDeterministic(t *testing.T) {
	text := "Python developer building data pipelines with Python and SQL"
	first := Normalize(text)
	second := Normalize(text)
	assert.Equal(t, first, second)
}
