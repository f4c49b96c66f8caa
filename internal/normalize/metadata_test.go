package normalize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tfhive/internal/core"
	"tfhive/internal/normalize"
)

func TestPostMetadata(t *testing.T) {
	t.Parallel()

	t.Run("malformed json degrades to empty map", func(t *testing.T) {
		t.Parallel()

		res := normalize.Post(&core.RawPost{Category: "travel", JSONMetadata: "{not json"})
		require.Empty(t, res.Metadata)
		require.Equal(t, []string{"travel"}, res.Tags)
	})

	t.Run("non-object json degrades to empty map", func(t *testing.T) {
		t.Parallel()

		res := normalize.Post(&core.RawPost{JSONMetadata: `["a", "b"]`})
		require.Empty(t, res.Metadata)
	})
}

func TestPostTags(t *testing.T) {
	t.Parallel()

	t.Run("category first, cleaned, deduped, capped at five", func(t *testing.T) {
		t.Parallel()

		post := &core.RawPost{
			Category:     "travel",
			JSONMetadata: `{"tags": ["# Travel", "PHOTOGRAPHY", "", "steemit", "food", "life", "art"]}`,
		}

		res := normalize.Post(post)
		require.Equal(t, []string{"travel", "photography", "steemit", "food", "life"}, res.Tags)
	})

	t.Run("long tags truncate to 32 runes", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 40)
		post := &core.RawPost{
			Category:     "travel",
			JSONMetadata: `{"tags": ["` + long + `"]}`,
		}

		res := normalize.Post(post)
		require.Equal(t, strings.Repeat("x", 32), res.Tags[1])
	})

	t.Run("non-list tags value is ignored", func(t *testing.T) {
		t.Parallel()

		post := &core.RawPost{
			Category:     "travel",
			JSONMetadata: `{"tags": "solo"}`,
		}

		res := normalize.Post(post)
		require.Equal(t, []string{"travel"}, res.Tags)
	})

	t.Run("nsfw tag flags the post", func(t *testing.T) {
		t.Parallel()

		post := &core.RawPost{
			Category:     "fun",
			JSONMetadata: `{"tags": ["NSFW"]}`,
		}

		res := normalize.Post(post)
		require.True(t, res.IsNSFW)
	})
}

func TestPostThumbnail(t *testing.T) {
	t.Parallel()

	t.Run("first safe url wins, list is sanitized", func(t *testing.T) {
		t.Parallel()

		post := &core.RawPost{
			JSONMetadata: `{"image": ["ftp://bad", "https://img.example.com/a.jpg", 42]}`,
		}

		res := normalize.Post(post)
		require.Equal(t, "https://img.example.com/a.jpg", res.Thumbnail)
		require.Equal(t, []string{"https://img.example.com/a.jpg"}, res.Metadata["image"])
	})

	t.Run("scalar image value is coerced to a list", func(t *testing.T) {
		t.Parallel()

		post := &core.RawPost{
			JSONMetadata: `{"image": "https://img.example.com/b.png"}`,
		}

		res := normalize.Post(post)
		require.Equal(t, "https://img.example.com/b.png", res.Thumbnail)
	})

	t.Run("key is dropped when nothing survives", func(t *testing.T) {
		t.Parallel()

		post := &core.RawPost{
			JSONMetadata: `{"image": ["javascript:alert(1)"]}`,
		}

		res := normalize.Post(post)
		require.Empty(t, res.Thumbnail)
		require.NotContains(t, res.Metadata, "image")
	})
}

func TestPostBody(t *testing.T) {
	t.Parallel()

	t.Run("nul bytes are replaced", func(t *testing.T) {
		t.Parallel()

		res := normalize.Post(&core.RawPost{Body: "a\x00b"})
		require.Equal(t, "a[NUL]b", res.Body)
	})

	t.Run("preview truncates at 1024 runes", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("é", 2000)
		res := normalize.Post(&core.RawPost{Body: body})
		require.Equal(t, strings.Repeat("é", 1024), res.Preview)
		require.Equal(t, body, res.Body)
	})
}
