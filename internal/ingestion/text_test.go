package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf normalized", "line one\r\nline two", "line one\nline two"},
		{"spaces collapsed", "too   many    spaces", "too many spaces"},
		{"blank lines capped", "a\n\n\n\n\nb", "a\n\nb"},
		{"surrounding whitespace trimmed", "\n\n  resume text  \n\n", "resume text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestStripHTML(t *testing.T) {
	html := `<html><head><style>p{color:red}</style></head>
<body><h1>Jane Doe</h1><p>Accountant with 5 years experience</p>
<script>alert("x")</script><ul><li>ACCA</li><li>Payroll</li></ul></body></html>`

	text := Prepare(html)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Accountant with 5 years experience")
	assert.Contains(t, text, "ACCA")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "<p>")
}

func TestPreparePlainTextPassthrough(t *testing.T) {
	plain := "Plain resume text\nwith two lines"
	assert.Equal(t, plain, Prepare(plain))
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, looksLikeHTML("<div>resume</div>"))
	assert.True(t, looksLikeHTML("text with <br> break"))
	assert.False(t, looksLikeHTML("salary < 1000 and > 500"))
	assert.False(t, looksLikeHTML("plain text"))
}
