package core

// Vote is a single entry of a post's active-vote list, exactly as the chain
// node serializes it. rshares and reputation are decimal strings because the
// node emits values outside the range of a JSON number.
type Vote struct {
	Voter      string `json:"voter"`
	RShares    string `json:"rshares"`
	Percent    int    `json:"percent"`
	Reputation string `json:"reputation"`
}

// Beneficiary is a payout-split entry. Weight is in basis points.
type Beneficiary struct {
	Account string `json:"account"`
	Weight  int    `json:"weight"`
}

// RawPost is one post record as delivered by the sync loop. It is immutable
// for the duration of a transform; the pipeline never writes it back.
//
// Timestamps are kept as the node's bare "2006-01-02T15:04:05" strings and
// parsed where needed.
type RawPost struct {
	ID       int64  `json:"id"`
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Body     string `json:"body"`

	// JSONMetadata is opaque and possibly malformed, see normalize.
	JSONMetadata string `json:"json_metadata"`

	Created     string `json:"created"`
	CashoutTime string `json:"cashout_time"`
	LastPayout  string `json:"last_payout"`
	UpdatedAt   string `json:"last_update"`

	MaxAcceptedPayout   string        `json:"max_accepted_payout"`
	PercentSteemDollars int           `json:"percent_steem_dollars"`
	Beneficiaries       []Beneficiary `json:"beneficiaries"`

	NetRShares       string `json:"net_rshares"`
	ActiveVotes      []Vote `json:"active_votes"`
	AuthorReputation string `json:"author_reputation"`

	TotalPayoutValue   string `json:"total_payout_value"`
	CuratorPayoutValue string `json:"curator_payout_value"`
	PendingPayoutValue string `json:"pending_payout_value"`

	Promoted string `json:"promoted"`
	Depth    int    `json:"depth"`
	Children int    `json:"children"`

	// Legacy fields carried through into raw_json for UIs.
	URL                  string `json:"url"`
	RootComment          int64  `json:"root_comment"`
	RootAuthor           string `json:"root_author"`
	RootPermlink         string `json:"root_permlink"`
	RootTitle            string `json:"root_title"`
	ParentAuthor         string `json:"parent_author"`
	ParentPermlink       string `json:"parent_permlink"`
	AllowReplies         bool   `json:"allow_replies"`
	AllowVotes           bool   `json:"allow_votes"`
	AllowCurationRewards bool   `json:"allow_curation_rewards"`
}

// RawPostEvent is what the sync loop publishes: a raw post plus the stable
// identity it has assigned. One event per on-chain create, edit or vote change.
type RawPostEvent struct {
	PostID    int64   `json:"post_id"`
	AccountID int64   `json:"account_id"`
	IsNew     bool    `json:"is_new"`
	Timestamp int64   `json:"timestamp_us"`
	Post      RawPost `json:"post"`
}
