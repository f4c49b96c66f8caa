package steem

import "strings"

const maxImgURLSize = 1024

// SafeImgURL validates a user-supplied image URL. Anything that is not an
// absolute http(s) URL of sane length is rejected.
func SafeImgURL(url string) (string, bool) {
	if url == "" || len(url) >= maxImgURLSize {
		return "", false
	}
	if !strings.HasPrefix(url, "http") {
		return "", false
	}
	return strings.TrimSpace(url), true
}
