package ssml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	out := b.Add(Say("こんにちは")).
		Add(Pause("500ms")).
		Add(Emphasis(EmphasisStrong, "世界")).
		Build()
	assert.Equal(t, `<speak>こんにちは<break time="500ms"/><emphasis level="strong">世界</emphasis></speak>`, out)

	b.Reset()
	assert.Equal(t, "<speak></speak>", b.Build())
	assert.Equal(t, "<speak>x</speak>", b.Add("x").Build())
}

func TestSpeechHelpers(t *testing.T) {
	tests := []struct {
		name, got, want string
	}{
		{"say", Say("hi"), "hi"},
		{"pause", Pause("1s"), `<break time="1s"/>`},
		{"audio", Audio("https://example.com/a.mp3?x=1&y=2"), `<audio src="https://example.com/a.mp3?x=1&amp;y=2"/>`},
		{"emphasis", Emphasis(EmphasisReduced, "soft"), `<emphasis level="reduced">soft</emphasis>`},
		{"prosody", Prosody(ProsodyOptions{Rate: "slow", Volume: "loud"}, "x"), `<prosody rate="slow" volume="loud">x</prosody>`},
		{"prosody all", Prosody(ProsodyOptions{Rate: "fast", Pitch: "high", Volume: "soft"}, "x"), `<prosody rate="fast" pitch="high" volume="soft">x</prosody>`},
		{"prosody none", Prosody(ProsodyOptions{}, "x"), "<prosody>x</prosody>"},
		{"say-as", SayAs("characters", "ABC"), `<say-as interpret-as="characters">ABC</say-as>`},
		{"quoted attribute", Pause(`1s" onload="x`), `<break time="1s&#34; onload=&#34;x"/>`},
		{"nesting", Emphasis(EmphasisModerate, Pause("1s")), `<emphasis level="moderate"><break time="1s"/></emphasis>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
