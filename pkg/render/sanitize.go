package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/danielkjellid/hue/el"
)

var (
	ugcPolicy     *bluemonday.Policy
	ugcPolicyOnce sync.Once
)

// SanitizedRaw creates a raw node from untrusted HTML after stripping anything
// outside bluemonday's user-generated-content policy. Prefer this over el.Raw
// whenever the markup did not originate in your own code.
func SanitizedRaw(html string) *el.Node {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return el.Raw(ugcPolicy.Sanitize(html))
}
