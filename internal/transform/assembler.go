// Package transform runs the full raw-post-to-cache-row computation: one pass
// of every engine, merged into a single denormalized record.
package transform

import (
	"context"
	"encoding/json"
	"log/slog"

	"tfhive/internal/core"
	"tfhive/internal/geo"
	"tfhive/internal/normalize"
	"tfhive/internal/payout"
	"tfhive/internal/scoring"
	"tfhive/internal/stats"
	"tfhive/internal/steem"
)

type Transformer struct {
	Logger   *slog.Logger
	Resolver *geo.Resolver
}

func (t *Transformer) Init(_ context.Context) error {
	t.Logger = t.Logger.With("component", "transform.Transformer")
	return nil
}

// Apply recomputes the cache row for one raw post event. Pure except for the
// resolver's reverse-geocode call; every engine runs exactly once.
func (t *Transformer) Apply(ctx context.Context, event *core.RawPostEvent) (*core.CachedPost, error) {
	post := &event.Post

	norm := normalize.Post(post)

	pay, err := payout.Classify(post)
	if err != nil {
		return nil, err
	}

	agg, err := scoring.AggregateVotes(post)
	if err != nil {
		return nil, err
	}

	st, err := stats.Compute(post)
	if err != nil {
		return nil, err
	}

	isTravelfeed := geo.IsTravelfeed(norm.Tags, norm.Body)

	var loc *geo.Location
	if isTravelfeed {
		loc = t.Resolver.Resolve(ctx, norm.Body)
	}

	created, err := steem.ParseTime(post.Created)
	if err != nil {
		return nil, err
	}

	updated := created
	if post.UpdatedAt != "" {
		if parsed, err := steem.ParseTime(post.UpdatedAt); err == nil {
			updated = parsed
		}
	}

	promoted := 0.0
	if post.Promoted != "" {
		if promoted, err = steem.ParseSBD(post.Promoted); err != nil {
			return nil, err
		}
	}

	mdJSON, err := json.Marshal(norm.Metadata)
	if err != nil {
		return nil, err
	}

	rawJSON, err := json.Marshal(legacyFields(post))
	if err != nil {
		return nil, err
	}

	cached := &core.CachedPost{
		PostID:   event.PostID,
		Author:   post.Author,
		Permlink: post.Permlink,
		Category: post.Category,

		IsTravelfeed:  isTravelfeed,
		CurationScore: st.CurationScore,

		Depth:    int16(post.Depth),
		Children: int16(post.Children),

		AuthorRep:  st.AuthorRep,
		FlagWeight: st.FlagWeight,
		TotalVotes: st.TotalVotes,
		UpVotes:    st.UpVotes,

		Title:   post.Title,
		Preview: norm.Preview,
		ImgURL:  norm.Thumbnail,

		Payout:    agg.Payout,
		Promoted:  promoted,
		CreatedAt: created,
		PayoutAt:  pay.PayoutAt,
		UpdatedAt: updated,
		IsPaidout: pay.IsPaidout,

		IsNSFW:      norm.IsNSFW,
		IsDeclined:  pay.IsDeclined,
		IsFullPower: pay.IsFullPower,
		IsHidden:    st.Hide,
		IsGrayed:    st.Gray,

		RShares: agg.RShares.String(),
		ScTrend: agg.ScTrend,
		ScHot:   agg.ScHot,

		Body:    norm.Body,
		Votes:   agg.CSVotes,
		JSON:    string(mdJSON),
		RawJSON: string(rawJSON),
	}

	if loc != nil {
		cached.Latitude = &loc.Latitude
		cached.Longitude = &loc.Longitude
		cached.OSMType = loc.OSMType
		cached.OSMID = loc.OSMID
		cached.CountryCode = loc.CountryCode
		cached.Subdivision = loc.Subdivision
		cached.City = loc.City
		cached.Suburb = loc.Suburb
	}

	return cached, nil
}

// legacyFields is the pass-through allow-list kept for UIs in raw_json; none
// of it is indexed.
func legacyFields(post *core.RawPost) map[string]any {
	return map[string]any{
		"id":                     post.ID,
		"url":                    post.URL,
		"root_comment":           post.RootComment,
		"root_author":            post.RootAuthor,
		"root_permlink":          post.RootPermlink,
		"root_title":             post.RootTitle,
		"parent_author":          post.ParentAuthor,
		"parent_permlink":        post.ParentPermlink,
		"max_accepted_payout":    post.MaxAcceptedPayout,
		"percent_steem_dollars":  post.PercentSteemDollars,
		"curator_payout_value":   post.CuratorPayoutValue,
		"allow_replies":          post.AllowReplies,
		"allow_votes":            post.AllowVotes,
		"allow_curation_rewards": post.AllowCurationRewards,
		"beneficiaries":          post.Beneficiaries,
	}
}
