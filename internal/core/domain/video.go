package domain

// VideoRecord is one enriched upload. Counts default to zero when the API
// omits them. Duration keeps the ISO-8601 encoding from contentDetails so the
// revenue estimator owns the parsing. Records are never mutated after the
// pipeline finishes with them.
type VideoRecord struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Thumbnail        string           `json:"thumbnail"`
	PublishedAt      string           `json:"publishedAt"`
	ViewCount        int64            `json:"viewCount"`
	LikeCount        int64            `json:"likeCount"`
	CommentCount     int64            `json:"commentCount"`
	Duration         string           `json:"duration"`
	EstimatedRevenue float64          `json:"estimatedRevenue"`
	CountryViews     map[string]int64 `json:"country_views,omitempty"`
}
