package domain

import "regexp"

var (
	handleURLPattern  = regexp.MustCompile(`youtube\.com/@([^/?&]+)`)
	channelURLPattern = regexp.MustCompile(`youtube\.com/channel/([^/?&]+)`)
	directIDPattern   = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)
)

// ChannelSummary holds the channel metadata resolved from the YouTube API.
// CreatedAt is the raw ISO-8601 timestamp as returned by the API.
type ChannelSummary struct {
	ID                string
	Title             string
	CreatedAt         string
	TotalViews        int64
	UploadsPlaylistID string
}

// NormalizeChannelReference turns a user-supplied channel reference (full URL,
// handle or bare ID) into the identifier the YouTube API expects. It is a pure
// string transform and idempotent: anything unrecognized is treated as a bare
// handle and left for the resolver to reject.
func NormalizeChannelReference(ref string) string {
	if m := handleURLPattern.FindStringSubmatch(ref); m != nil {
		return "@" + m[1]
	}
	if m := channelURLPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	if directIDPattern.MatchString(ref) {
		return ref
	}
	if len(ref) > 0 && ref[0] == '@' {
		return ref
	}
	if len(ref) < 2 || ref[:2] != "UC" {
		return "@" + ref
	}
	return ref
}
