package ports

import (
	"context"
	"errors"

	"tuberev/internal/core/domain"
)

var (
	// ErrChannelNotFound covers both a missing channel and any resolver-level
	// API failure that is not one of the typed conditions below.
	ErrChannelNotFound = errors.New("channel not found")
	ErrInvalidAPIKey   = errors.New("invalid youtube api key")
	ErrQuotaExceeded   = errors.New("youtube api quota exceeded")
)

type YoutubePort interface {
	// ResolveChannel looks the channel up by ID when the identifier carries
	// the UC prefix, otherwise by handle.
	ResolveChannel(ctx context.Context, identifier string) (domain.ChannelSummary, error)

	// ListUploads pages through the uploads playlist and returns at most max
	// video IDs in playlist order. A mid-pagination failure discards partial
	// progress and returns only the error.
	ListUploads(ctx context.Context, playlistID string, max int) ([]string, error)

	// FetchVideos retrieves statistics for the given IDs in batches. Records
	// from batches completed before a failure are returned alongside the
	// error; malformed items are skipped, not surfaced.
	FetchVideos(ctx context.Context, videoIDs []string) ([]domain.VideoRecord, error)
}
