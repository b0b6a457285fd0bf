package tagstream_test

import (
	"testing"

	"github.com/fwojciec/tagstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{"single pair", "<location>NY</location>", map[string]string{"location": "NY"}},
		{"multiple pairs", "<location>NY</location><unit>celsius</unit>", map[string]string{"location": "NY", "unit": "celsius"}},
		{"whitespace between elements", "\n  <location>NY</location>\n  <unit>celsius</unit>\n", map[string]string{"location": "NY", "unit": "celsius"}},
		{"empty body", "", map[string]string{}},
		{"whitespace only body", " \n\t ", map[string]string{}},
		{"empty value", "<location></location>", map[string]string{"location": ""}},
		{"value with brackets", "<expr>1 < 2</expr>", map[string]string{"expr": "1 < 2"}},
		{"value keeps inner markup verbatim", "<outer><b>x</b></outer>", map[string]string{"outer": "<b>x</b>"}},
		{"duplicate key last wins", "<k>a</k><k>b</k>", map[string]string{"k": "b"}},
		{"multiline value", "<note>line one\nline two</note>", map[string]string{"note": "line one\nline two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tagstream.ParseArguments(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArguments_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"bare text", "just some text"},
		{"text before element", "x<a>1</a>"},
		{"text between elements", "<a>1</a>x<b>2</b>"},
		{"element never closed", "<a>1"},
		{"open tag only", "<a>"},
		{"orphaned closing tag", "</a>"},
		{"unterminated tag marker", "<a"},
		{"empty element name", "<>x</>"},
		{"element name with space", "<a b>1</a b>"},
		{"stray close after pair", "<a>1</a></a>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tagstream.ParseArguments(tt.body)
			assert.ErrorIs(t, err, tagstream.ErrMalformedBody)
		})
	}
}
