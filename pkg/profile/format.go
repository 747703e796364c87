package profile

import (
	"strings"
	"time"
)

// Fallback literals shown when a field is absent.
const (
	FallbackName        = "UnKnown"
	FallbackBio         = "No bio available"
	FallbackUnspecified = "Not specified"
	FallbackLink        = "Not existed"
	FallbackDescription = "No description available"
	FallbackLanguage    = "Unknown"
	EmptyRepos          = "No repositories found"
	InvalidDate         = "Invalid Date"
)

// NullAnchor is the link target used when there is nothing to link to.
const NullAnchor = "#"

const (
	dateLayout     = "Jan 2, 2006"
	twitterBaseURL = "https://twitter.com/"
)

// FormatDate renders t as abbreviated month, day and year in UTC,
// e.g. "Jul 16, 2025". The zero time renders as "Invalid Date".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.UTC().Format(dateLayout)
}

// BlogHref returns the link target for a blog value. Values without an
// http:// or https:// scheme are prefixed with https://.
func BlogHref(blog string) string {
	if blog == "" {
		return NullAnchor
	}
	if hasHTTPScheme(blog) {
		return blog
	}
	return "https://" + blog
}

// BlogLabel returns the displayed text for a blog value: the raw value with a
// leading scheme and then a leading "www." removed.
func BlogLabel(blog string) string {
	label := strings.TrimPrefix(blog, "https://")
	label = strings.TrimPrefix(label, "http://")
	label = strings.TrimPrefix(label, "www.")
	return orDefault(label, FallbackLink)
}

// BlogLink combines [BlogHref] and [BlogLabel].
func BlogLink(blog string) Link {
	return Link{Href: BlogHref(blog), Label: BlogLabel(blog)}
}

// TwitterLink points at the canonical profile page of handle.
func TwitterLink(handle string) Link {
	if handle == "" {
		return Link{Href: NullAnchor, Label: FallbackLink}
	}
	return Link{Href: twitterBaseURL + handle, Label: "@" + handle}
}

func hasHTTPScheme(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
