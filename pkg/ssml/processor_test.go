package ssml

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jabelic-Works/ssml-utilities/internal/config"
	"github.com/Jabelic-Works/ssml-utilities/internal/lexer"
	"github.com/Jabelic-Works/ssml-utilities/internal/logging"
)

const sample = `<speak><voice name="ja-JP-NanamiNeural">こんにちは<break time="500ms"/>世界</voice></speak>`

func TestProcessorTokensAndParse(t *testing.T) {
	p := NewWithDefaults()

	tokens := p.Tokens(sample)
	require.Len(t, tokens, 7)
	assert.Equal(t, lexer.OpenTag, tokens[0].Kind)
	assert.Equal(t, lexer.SelfClosingTag, tokens[3].Kind)

	g, err := p.Parse(sample)
	require.NoError(t, err)
	// root, speak, voice, name, 2 texts, break, time, 2 closing tags
	assert.Equal(t, 10, g.Len())

	listing, err := p.Graph("<speak>x</speak>")
	require.NoError(t, err)
	assert.Contains(t, listing, "Node node_0:")
}

func TestProcessorHighlight(t *testing.T) {
	p := NewWithDefaults()

	out, err := p.Highlight("<p>a</p>")
	require.NoError(t, err)
	assert.Equal(t,
		`<span class="ssml-tag">&lt;p&gt;</span><span class="ssml-text">a</span><span class="ssml-tag">&lt;/p&gt;</span>`,
		out)
	assert.Equal(t, out, p.Render("<p>a</p>"))

	cfg := config.Default()
	cfg.Highlight.Text = "txt"
	out, err = New(cfg, nil).Highlight("a")
	require.NoError(t, err)
	assert.Equal(t, `<span class="txt">a</span>`, out)
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestProcessorTerminal(t *testing.T) {
	out, err := NewWithDefaults().Terminal(sample)
	require.NoError(t, err)
	assert.Equal(t, sample, ansi.ReplaceAllString(out, ""))

	theme := filepath.Join(t.TempDir(), "theme.css")
	require.NoError(t, os.WriteFile(theme, []byte(".ssml-tag { color: red; }"), 0o600))
	cfg := config.Default()
	cfg.Preview.Theme = theme
	out, err = New(cfg, nil).Terminal(sample)
	require.NoError(t, err)
	assert.Equal(t, sample, ansi.ReplaceAllString(out, ""))

	cfg.Preview.Theme = filepath.Join(t.TempDir(), "missing.css")
	_, err = New(cfg, nil).Terminal(sample)
	assert.ErrorContains(t, err, "failed to read theme")
}

func TestProcessorExtract(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Extract.CustomTags = []string{"custom"}
	p := New(cfg, logging.New(logging.Config{Level: "debug"}, &buf))

	res := p.Extract(`<speak>a<custom>b</custom><other>c</other></speak>`)
	assert.Equal(t, "ab<other>c</other>", res.Text)
	assert.True(t, res.ParseSuccess)
	assert.Contains(t, buf.String(), "extracted text")

	assert.Equal(t, "<speak>x</speak>", p.RemoveTags(`<speak><voice name="v">x</voice></speak>`, []string{"voice"}))
	assert.Equal(t, []string{"x", "y"}, p.TextFromTag(`<p>x</p><p>y</p>`, "p"))
}

func TestProcessorValidate(t *testing.T) {
	p := NewWithDefaults()

	report := p.Validate(`<speak><voice name="a">x</voice></speak>`)
	assert.True(t, report.Valid)
	assert.Equal(t, "strict", report.Mode)
	assert.Len(t, report.Tags, 4)
	assert.Empty(t, report.InvalidTags())

	report = p.Validate("<speak><custom>x</custom></speak>")
	assert.False(t, report.Valid)
	assert.True(t, report.Structure.Valid)
	invalid := report.InvalidTags()
	require.Len(t, invalid, 2)
	assert.Equal(t, "custom", invalid[0].Name)
	assert.Equal(t, lexer.CloseTag, invalid[1].Kind)

	report = p.Validate("<speak><p>x</speak>")
	assert.False(t, report.Valid)
	assert.False(t, report.Structure.Valid)

	cfg := config.Default()
	cfg.Validation.Mode = "ascii-custom"
	report = New(cfg, nil).Validate("<speak><custom>x</custom></speak>")
	assert.True(t, report.Valid)
	assert.Equal(t, "ascii-custom", report.Mode)
}

func TestProcessorFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Format.Indent = 4
	assert.Equal(t, "<speak>\n    <p>x</p>\n</speak>", New(cfg, nil).Format("<speak><p>x</p></speak>"))
}

func TestProcessorPreview(t *testing.T) {
	p := NewWithDefaults()

	theme, err := p.Theme()
	require.NoError(t, err)
	assert.Contains(t, theme, ".ssml-tag")

	page, err := p.Preview(sample)
	require.NoError(t, err)
	assert.Contains(t, page, "<title>SSML preview</title>")
	assert.Contains(t, page, `<span class="ssml-text">こんにちは</span>`)
	assert.Contains(t, page, "<style>")

	cfg := config.Default()
	cfg.Preview.InlineStyles = true
	page, err = New(cfg, nil).Preview("<p>x</p>")
	require.NoError(t, err)
	assert.NotContains(t, page, "<style>")
	assert.Contains(t, page, `<span class="ssml-tag" style="color: #000fff">`)
}
