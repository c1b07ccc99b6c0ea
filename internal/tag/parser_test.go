package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTagName(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"<speak>", "speak"},
		{"</speak>", "speak"},
		{"<break/>", "break"},
		{`<break time="500ms"/>`, "break"},
		{`<voice name="ja-JP-Ayumi">`, "voice"},
		{`<prosody rate="slow" pitch="high">`, "prosody"},
		{"<mstts:express-as>", "mstts:express-as"},
		{"</mstts:express-as>", "mstts:express-as"},
		{`<mstts:express-as style="cheerful"/>`, "mstts:express-as"},
		{"<say-as>", "say-as"},
		{"<custom_tag>", "custom_tag"},
		{"<123tag>", "123tag"},
		{"<-tag>", "-tag"},
	}
	for _, tt := range tests {
		got, ok := ExtractTagName(tt.tag)
		require.True(t, ok, tt.tag)
		assert.Equal(t, tt.want, got, tt.tag)
	}
}

func TestExtractTagNameInvalid(t *testing.T) {
	for _, tag := range []string{"", "speak", "<speak", "speak>", "<>", "< speak>", "<　speak>", "</>", "</ speak>"} {
		_, ok := ExtractTagName(tag)
		assert.False(t, ok, "%q", tag)
	}
}

func TestParseStructure(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want Structure
	}{
		{
			name: "open tag",
			tag:  "<speak>",
			want: Structure{Name: "speak", Attributes: []Attribute{}, RawContent: "speak"},
		},
		{
			name: "open tag with attributes",
			tag:  `<prosody rate="slow" pitch='high'>`,
			want: Structure{
				Name:       "prosody",
				Attributes: []Attribute{{"rate", "slow"}, {"pitch", "high"}},
				RawContent: `prosody rate="slow" pitch='high'`,
			},
		},
		{
			name: "namespaced closing tag",
			tag:  "</mstts:express-as>",
			want: Structure{Name: "mstts:express-as", Attributes: []Attribute{}, Closing: true, RawContent: "/mstts:express-as"},
		},
		{
			name: "self-closing tag",
			tag:  `<break time="500ms"/>`,
			want: Structure{
				Name:        "break",
				Attributes:  []Attribute{{"time", "500ms"}},
				SelfClosing: true,
				RawContent:  `break time="500ms"/`,
			},
		},
		{
			name: "self-closing tag with space",
			tag:  `<audio src="sound.wav" />`,
			want: Structure{
				Name:        "audio",
				Attributes:  []Attribute{{"src", "sound.wav"}},
				SelfClosing: true,
				RawContent:  `audio src="sound.wav" /`,
			},
		},
		{
			name: "digit-first names parse structurally",
			tag:  "<123tag>",
			want: Structure{Name: "123tag", Attributes: []Attribute{}, RawContent: "123tag"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStructure(tt.tag)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStructureInvalid(t *testing.T) {
	for _, tag := range []string{"", "speak", "<speak", "speak>", "<>", "< speak>", "<　speak>"} {
		_, ok := ParseStructure(tag)
		assert.False(t, ok, "%q", tag)
	}
}

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Attribute
	}{
		{"single", `voice name="ja-JP-Ayumi"`, []Attribute{{"name", "ja-JP-Ayumi"}}},
		{"single quotes", `voice name='ja-JP-Ayumi'`, []Attribute{{"name", "ja-JP-Ayumi"}}},
		{"namespaced", `speak xml:lang="ja-JP"`, []Attribute{{"xml:lang", "ja-JP"}}},
		{"namespace declaration", `tag xmlns:mstts="http://example.com"`, []Attribute{{"xmlns:mstts", "http://example.com"}}},
		{"underscore", `tag custom_attr="value"`, []Attribute{{"custom_attr", "value"}}},
		{"empty value", `tag attr=""`, []Attribute{{"attr", ""}}},
		{"other quote inside value", `say-as format="d'm"`, []Attribute{{"format", "d'm"}}},
		{"unquoted value skipped", `tag valid="value" invalid=value`, []Attribute{{"valid", "value"}}},
		{"digit-first name skipped", `tag 1a="x" b="y"`, []Attribute{{"b", "y"}}},
		{"leading colon skipped", `tag :a="x"`, []Attribute{}},
		{"no attributes", "speak", []Attribute{}},
		{"empty", "", []Attribute{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAttributes(tt.content))
		})
	}
}

func TestMatchingPair(t *testing.T) {
	assert.True(t, MatchingPair("<speak>", "</speak>"))
	assert.True(t, MatchingPair(`<voice name="ja-JP-Ayumi">`, "</voice>"))
	assert.True(t, MatchingPair("<123invalid>", "</123invalid>"))
	assert.False(t, MatchingPair("<speak>", "</voice>"))
	assert.False(t, MatchingPair("speak", "</speak>"))
	assert.False(t, MatchingPair("<>", "</>"))
}
