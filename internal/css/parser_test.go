package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sheet, err := NewParser().Parse(`
/* theme */
@charset "utf-8";
.ssml-tag { color: #000fff; font-weight: bold }
pre.ssml-preview{padding:1em;font-family:"Fira Code; mono"}
@media (prefers-color-scheme: dark) {
  .ssml-tag { color: #fff; }
}
.empty { }
.ssml-error { color: red !important; }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)

	tag := sheet.Rules[0]
	assert.Equal(t, ".ssml-tag", tag.Selector)
	assert.Equal(t, 0, tag.SourceOrder)
	assert.Equal(t, Declaration{Property: "color", Value: "#000fff"}, tag.Declarations["color"])
	assert.Equal(t, "bold", tag.Declarations["font-weight"].Value)

	pre := sheet.Rules[1]
	assert.Equal(t, `"Fira Code; mono"`, pre.Declarations["font-family"].Value)
	assert.Equal(t, 1, pre.SourceOrder)

	errRule := sheet.Rules[2]
	assert.Equal(t, Declaration{Property: "color", Value: "red", Important: true}, errRule.Declarations["color"])
	assert.Equal(t, 2, errRule.SourceOrder)
}

func TestParseErrors(t *testing.T) {
	_, err := NewParser().Parse("@media screen { .a { color: red; }")
	assert.ErrorContains(t, err, "unbalanced braces")

	_, err = NewParser().Parse("@font-face")
	assert.ErrorContains(t, err, "missing block")
}

func TestSpecificity(t *testing.T) {
	p := NewParser()
	tests := []struct {
		selector string
		want     Specificity
	}{
		{".ssml-tag", Specificity{Classes: 1}},
		{"pre.ssml-preview", Specificity{Classes: 1, Elements: 1}},
		{"pre .ssml-tag", Specificity{Classes: 1, Elements: 1}},
		{"#root span.a:hover", Specificity{IDs: 1, Classes: 2, Elements: 1}},
		{"span::before", Specificity{Elements: 2}},
		{`span[data-x="a.b"]`, Specificity{Classes: 1, Elements: 1}},
		{"ul li > a", Specificity{Elements: 3}},
		{".a, #b", Specificity{IDs: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.want, p.calculateSpecificity(tt.selector))
		})
	}
}

func TestSpecificityCompare(t *testing.T) {
	assert.Equal(t, 1, Specificity{IDs: 1}.Compare(Specificity{Classes: 5}))
	assert.Equal(t, -1, Specificity{Elements: 1}.Compare(Specificity{Classes: 1}))
	assert.Equal(t, 0, Specificity{Classes: 2}.Compare(Specificity{Classes: 2}))
	assert.Equal(t, 1, Specificity{Important: true}.Compare(SpecificityFromInline(false)))
	assert.Equal(t, "(1000,0,0,0) !important", SpecificityFromInline(true).String())
}

func TestParseInlineStyle(t *testing.T) {
	decls := NewParser().ParseInlineStyle("Color: blue; broken; margin: ; content: 'a;b'")
	assert.Equal(t, map[string]Declaration{
		"color":   {Property: "color", Value: "blue"},
		"content": {Property: "content", Value: "'a;b'"},
	}, decls)
}

func TestForClass(t *testing.T) {
	sheet, err := NewParser().Parse(`
.a { color: red; }
pre .b { color: blue; }
.a:hover { color: green; }
.c, .a.d { color: gray; }
.ab { color: black; }
`)
	require.NoError(t, err)

	var selectors []string
	for _, r := range sheet.ForClass("a") {
		selectors = append(selectors, r.Selector)
	}
	assert.Equal(t, []string{".a", ".a:hover", ".c, .a.d"}, selectors)
	assert.Len(t, sheet.ForClass("b"), 1)
	assert.Empty(t, sheet.ForClass("missing"))
}

func TestStylesheetString(t *testing.T) {
	sheet, err := NewParser().Parse(".a { margin: 0; color: red !important }")
	require.NoError(t, err)
	assert.Equal(t, ".a { color: red !important; margin: 0; }\n", sheet.String())
}
