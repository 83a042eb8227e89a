// Package sanitize strips unsafe HTML from user-generated comment
// content before it is stored.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Content sanitizes comment text with the UGC policy: basic formatting
// survives, scripts, event handlers, and javascript: URLs do not.
func Content(s string) string {
	return policy.Sanitize(s)
}
