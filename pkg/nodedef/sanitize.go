package nodedef

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// SanitizeHelp strips help markup down to basic formatting elements so node
// definitions loaded from disk cannot inject scripts into the help popup.
func SanitizeHelp(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(helpSanitizer().Sanitize(trimmed))
}

func helpSanitizer() *bluemonday.Policy {
	helpPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"p", "br", "em", "strong", "b", "i", "code", "pre",
			"ul", "ol", "li", "h1", "h2", "h3",
		)
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		helpPolicy = policy
	})
	return helpPolicy
}
