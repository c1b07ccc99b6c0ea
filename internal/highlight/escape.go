package highlight

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces the five HTML metacharacters with entities in a single
// pass, so existing entities are escaped exactly once more
func Escape(s string) string {
	return escaper.Replace(s)
}
