package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascade(t *testing.T) {
	sheet, err := NewParser().Parse(`
span.ssml-tag { color: navy; }
.ssml-tag { color: blue; font-weight: bold; }
.ssml-tag { font-weight: normal; }
.ssml-tag { text-decoration: underline !important; }
`)
	require.NoError(t, err)

	got := Cascade(sheet.Rules, nil)
	// higher specificity beats later order
	assert.Equal(t, "navy", got["color"].Value)
	// equal specificity, later wins
	assert.Equal(t, "normal", got["font-weight"].Value)

	inline := NewParser().ParseInlineStyle("color: red; text-decoration: none")
	got = Cascade(sheet.Rules, inline)
	assert.Equal(t, "red", got["color"].Value)
	assert.Equal(t, "underline", got["text-decoration"].Value)
	assert.True(t, got["text-decoration"].Important)
}

func TestCascadeEmpty(t *testing.T) {
	assert.Empty(t, Cascade(nil, nil))
}

func TestFormatDeclarations(t *testing.T) {
	assert.Equal(t, "", FormatDeclarations(nil))
	assert.Equal(t, "color: red; margin: 0 !important", FormatDeclarations(map[string]Declaration{
		"margin": {Property: "margin", Value: "0", Important: true},
		"color":  {Property: "color", Value: "red"},
	}))
}
