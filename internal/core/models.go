package core

import (
	"time"
)

// CachedPost is the denormalized cache row produced by the transform, one per
// post, replaced wholesale on every recomputation.
//
// The geo group (Latitude through Suburb) is nullable as a unit: either the
// resolver populated all of it or none of it.
type CachedPost struct {
	PostID   int64  `gorm:"primaryKey;autoIncrement:false;column:post_id"`
	Author   string `gorm:"type:varchar(16);not null;column:author"`
	Permlink string `gorm:"type:varchar(255);not null;column:permlink"`
	Category string `gorm:"type:varchar(255);not null;default:'';column:category"`

	Latitude    *float64 `gorm:"column:latitude"`
	Longitude   *float64 `gorm:"column:longitude"`
	OSMType     *string  `gorm:"type:varchar(1);column:osm_type"`
	OSMID       *int64   `gorm:"column:osm_id"`
	CountryCode *string  `gorm:"type:varchar(2);column:country_code"`
	Subdivision *string  `gorm:"type:varchar(100);column:subdivision"`
	City        *string  `gorm:"type:varchar(100);column:city"`
	Suburb      *string  `gorm:"type:varchar(100);column:suburb"`

	IsTravelfeed  bool `gorm:"not null;default:false;column:is_travelfeed"`
	CurationScore int  `gorm:"not null;default:0;column:curation_score"`

	Depth    int16 `gorm:"type:smallint;not null;default:0;column:depth"`
	Children int16 `gorm:"type:smallint;not null;default:0;column:children"`

	AuthorRep  float64 `gorm:"type:float(6);not null;default:0;column:author_rep"`
	FlagWeight int     `gorm:"not null;default:0;column:flag_weight"`
	TotalVotes int     `gorm:"not null;default:0;column:total_votes"`
	UpVotes    int     `gorm:"not null;default:0;column:up_votes"`

	Title   string `gorm:"type:varchar(255);not null;default:'';column:title"`
	Preview string `gorm:"type:varchar(1024);not null;default:'';column:preview"`
	ImgURL  string `gorm:"type:varchar(1024);not null;default:'';column:img_url"`

	Payout    float64   `gorm:"type:decimal(10,3);not null;default:0;column:payout"`
	Promoted  float64   `gorm:"type:decimal(10,3);not null;default:0;column:promoted"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	PayoutAt  time.Time `gorm:"not null;column:payout_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`
	IsPaidout bool      `gorm:"not null;default:false;column:is_paidout"`

	IsNSFW      bool `gorm:"not null;default:false;column:is_nsfw"`
	IsDeclined  bool `gorm:"not null;default:false;column:is_declined"`
	IsFullPower bool `gorm:"not null;default:false;column:is_full_power"`
	IsHidden    bool `gorm:"not null;default:false;column:is_hidden"`
	IsGrayed    bool `gorm:"not null;default:false;column:is_grayed"`

	// RShares can exceed the signed 64-bit range on high-activity posts, so
	// it travels as a decimal string into a numeric column.
	RShares string  `gorm:"type:numeric(42,0);not null;default:0;column:rshares"`
	ScTrend float64 `gorm:"type:float(6);not null;default:0;column:sc_trend"`
	ScHot   float64 `gorm:"type:float(6);not null;default:0;column:sc_hot"`

	Body    string `gorm:"type:text;column:body"`
	Votes   string `gorm:"type:text;column:votes"`
	JSON    string `gorm:"type:text;column:json"`
	RawJSON string `gorm:"type:text;column:raw_json"`
}

func (CachedPost) TableName() string {
	return "hive_posts_cache"
}

// FeedCacheEntry maps a post into an account's feed.
type FeedCacheEntry struct {
	PostID    int64     `gorm:"primaryKey;autoIncrement:false;column:post_id"`
	AccountID int64     `gorm:"primaryKey;autoIncrement:false;column:account_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
}

func (FeedCacheEntry) TableName() string {
	return "hive_feed_cache"
}
