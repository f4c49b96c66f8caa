// Package normalize turns the opaque parts of a raw post (json_metadata,
// body) into clean, storable values. Malformed input always degrades to an
// empty value, never to an error.
package normalize

import (
	"fmt"
	"strings"

	"github.com/Jeffail/gabs"
	"github.com/samber/lo"

	"tfhive/internal/core"
	"tfhive/internal/steem"
)

const (
	maxTags   = 5
	maxTagLen = 32

	// nulPlaceholder replaces NUL bytes, which Postgres text columns reject.
	nulPlaceholder = "[NUL]"

	previewLen = 1024
)

// Result holds everything the normalizer derives from one raw post.
type Result struct {
	// Metadata is the parsed json_metadata object with the image list
	// sanitized. Empty map when the raw string was malformed.
	Metadata map[string]any

	Thumbnail string
	Tags      []string
	IsNSFW    bool

	// Body is the raw body with NUL bytes replaced.
	Body    string
	Preview string
}

// Post normalizes metadata, tags and body of a raw post.
func Post(post *core.RawPost) Result {
	md := parseMetadata(post.JSONMetadata)
	thumbnail := extractThumbnail(md)
	tags := normalizeTags(post.Category, md)

	body := post.Body
	if strings.Contains(body, "\x00") {
		body = strings.ReplaceAll(body, "\x00", nulPlaceholder)
	}

	return Result{
		Metadata:  md,
		Thumbnail: thumbnail,
		Tags:      tags,
		IsNSFW:    lo.Contains(tags, "nsfw"),
		Body:      body,
		Preview:   truncateRunes(body, previewLen),
	}
}

// parseMetadata parses the opaque json_metadata string. Anything that is not
// a JSON object comes back as an empty map.
func parseMetadata(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}

	container, err := gabs.ParseJSON([]byte(raw))
	if err != nil {
		return map[string]any{}
	}

	md, ok := container.Data().(map[string]any)
	if !ok || md == nil {
		return map[string]any{}
	}
	return md
}

// extractThumbnail sanitizes the image list in place and returns the first
// surviving URL. A key with no surviving entries is dropped entirely.
func extractThumbnail(md map[string]any) string {
	images, found := md["image"]
	if !found {
		return ""
	}

	var candidates []any
	if list, ok := images.([]any); ok {
		candidates = list
	} else if images != nil {
		candidates = []any{images}
	}

	var safe []string
	for _, entry := range candidates {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		if url, ok := steem.SafeImgURL(s); ok {
			safe = append(safe, url)
		}
	}

	if len(safe) == 0 {
		delete(md, "image")
		return ""
	}

	md["image"] = safe
	return safe[0]
}

// normalizeTags builds the final tag list: category first, then any metadata
// tags; lowercased, stripped of leading/trailing '#' and spaces, truncated to
// 32 chars, empties dropped, first-seen order, at most five.
func normalizeTags(category string, md map[string]any) []string {
	raw := []any{category}
	if list, ok := md["tags"].([]any); ok {
		raw = append(raw, list...)
	}

	tags := lo.FilterMap(raw, func(tag any, _ int) (string, bool) {
		s := strings.ToLower(strings.Trim(fmt.Sprint(tag), "# "))
		s = truncateRunes(s, maxTagLen)
		return s, s != ""
	})

	tags = lo.Uniq(tags)
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
