package imagery

import (
	"net/url"
	"regexp"
	"strings"
)

// photoPatterns match identifiers of NASA/agency photographs (space-center,
// ISS expedition and mission photo codes, Flickr photo ids). A URL carrying
// one of them is a picture of something, never the emblem itself.
var photoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)jsc\d{4}e\d{4,}`),
	regexp.MustCompile(`(?i)ksc-?\d{4,}`),
	regexp.MustCompile(`(?i)kls-?\d{4,}`),
	regexp.MustCompile(`(?i)iss\d{3}e\d{4,}`),
	regexp.MustCompile(`(?i)art\d{3}e\d{4,}`),
	regexp.MustCompile(`(?i)(^|[^a-z])s\d{2,3}e\d{5,}`),
	regexp.MustCompile(`(?i)\d{11}[-_][0-9a-f]{10}`),
}

var galleryPaths = []string{
	"/image-detail/",
	"/image-article/",
	"/gallery/",
	"/imagegallery/",
	"/multimedia/",
	"images-assets.nasa.gov",
	"/wp-content/uploads/",
}

var patchKeywords = []string{"patch", "insignia", "logo", "emblem", "badge"}

var trustedHosts = []string{"wikipedia.org", "wikimedia.org"}

// ValidatePatchURL reports whether raw plausibly points at a mission emblem
// rather than a photograph. Paths starting with one of localPrefixes are
// repository assets and always pass the host check.
func ValidatePatchURL(raw string, localPrefixes ...string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	lower := strings.ToLower(raw)

	for _, re := range photoPatterns {
		if re.MatchString(lower) {
			return false
		}
	}

	hasKeyword := containsAny(lower, patchKeywords)
	for _, p := range galleryPaths {
		if strings.Contains(lower, p) && !hasKeyword {
			return false
		}
	}
	if hasKeyword {
		return true
	}

	for _, prefix := range localPrefixes {
		if prefix != "" && strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return true
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range trustedHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
