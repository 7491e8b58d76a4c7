package domain

// ChannelVideosResult is the aggregate outcome of one pipeline run. Exactly
// one of the payload or Error is authoritative, selected by Success.
type ChannelVideosResult struct {
	Success                  bool          `json:"success"`
	ChannelID                string        `json:"channel_id,omitempty"`
	ChannelTitle             string        `json:"channel_title,omitempty"`
	ChannelCreatedAt         string        `json:"channel_created_at,omitempty"`
	TotalChannelViews        int64         `json:"total_channel_views"`
	LifetimeEstimatedRevenue float64       `json:"lifetime_estimated_revenue"`
	Videos                   []VideoRecord `json:"videos"`
	Total                    int           `json:"total"`
	Error                    string        `json:"error,omitempty"`
}

// FailedResult builds a failure outcome carrying only the error message.
func FailedResult(msg string) ChannelVideosResult {
	return ChannelVideosResult{Success: false, Videos: []VideoRecord{}, Error: msg}
}
