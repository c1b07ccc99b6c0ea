package validator

import "slices"

// StandardTags is the vocabulary recognized in every mode: W3C elements plus
// the vendor extensions of the major speech providers
var StandardTags = []string{
	"speak",
	"voice",
	"prosody",
	"emphasis",
	"break",
	"sub",
	"phoneme",
	"say-as",
	"audio",
	"p",
	"s",
	"lang",
	"mark",

	// Microsoft
	"bookmark",
	"lexicon",
	"math",
	"mstts:audioduration",
	"mstts:backgroundaudio",
	"mstts:voiceconversion",
	"mstts:ttsembedding",
	"mstts:embedding",
	"mstts:express-as",
	"mstts:silence",
	"mstts:viseme",

	// Google
	"par",
	"seq",
	"media",
	"desc",

	// Amazon
	"amazon:domain",
	"amazon:effect",
	"amazon:emotion",
	"amazon:auto-breaths",

	"sentence",
	"lookup",
	"token",
	"w",
}

// TextOnlyTags may only contain character data
var TextOnlyTags = []string{"phoneme", "say-as", "sub"}

// SelfContainedTags must not have children
var SelfContainedTags = []string{
	"bookmark",
	"break",
	"lexicon",
	"mstts:audioduration",
	"mstts:backgroundaudio",
	"mstts:voiceconversion",
	"mstts:silence",
	"mstts:viseme",
}

var (
	standardSet      = toSet(StandardTags)
	textOnlySet      = toSet(TextOnlyTags)
	selfContainedSet = toSet(SelfContainedTags)
)

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// IsStandardTag reports membership in StandardTags (case-sensitive)
func IsStandardTag(name string) bool {
	_, ok := standardSet[name]
	return ok
}

// IsTextOnly reports membership in TextOnlyTags
func IsTextOnly(name string) bool {
	_, ok := textOnlySet[name]
	return ok
}

// IsSelfContained reports membership in SelfContainedTags
func IsSelfContained(name string) bool {
	_, ok := selfContainedSet[name]
	return ok
}

// Standard returns a copy of StandardTags
func Standard() []string {
	return slices.Clone(StandardTags)
}
