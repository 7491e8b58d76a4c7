package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"tuberev/internal/core/domain"
	"tuberev/internal/core/ports"
)

const (
	// pageCeiling is the YouTube hard maximum for playlistItems.list.
	pageCeiling = 50
	// batchCeiling is the maximum number of IDs accepted per videos.list call.
	batchCeiling = 50

	callTimeout = 15 * time.Second
)

type youtubeProvider struct {
	service *youtube.Service
	log     ports.LoggerPort
}

// NewYoutubeProvider builds the shared read-only YouTube collaborator. One
// instance serves all requests.
func NewYoutubeProvider(ctx context.Context, apiKey string, logger ports.LoggerPort) (ports.YoutubePort, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	return &youtubeProvider{service: service, log: logger}, nil
}

func (s *youtubeProvider) ResolveChannel(ctx context.Context, identifier string) (domain.ChannelSummary, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	call := s.service.Channels.List([]string{"contentDetails", "snippet", "statistics"}).Context(callCtx)
	if strings.HasPrefix(identifier, "UC") {
		call = call.Id(identifier)
	} else {
		call = call.ForHandle(strings.TrimPrefix(identifier, "@"))
	}

	response, err := call.Do()
	if err != nil {
		mapped := mapAPIError(err)
		if errors.Is(mapped, ports.ErrInvalidAPIKey) || errors.Is(mapped, ports.ErrQuotaExceeded) {
			return domain.ChannelSummary{}, mapped
		}
		s.log.Error("error while fetching channel", err)
		return domain.ChannelSummary{}, ports.ErrChannelNotFound
	}

	if len(response.Items) == 0 {
		return domain.ChannelSummary{}, ports.ErrChannelNotFound
	}

	channel := response.Items[0]
	summary := domain.ChannelSummary{ID: channel.Id}
	if channel.Snippet != nil {
		summary.Title = channel.Snippet.Title
		summary.CreatedAt = channel.Snippet.PublishedAt
	}
	if channel.Statistics != nil {
		summary.TotalViews = int64(channel.Statistics.ViewCount)
	}
	if channel.ContentDetails != nil && channel.ContentDetails.RelatedPlaylists != nil {
		summary.UploadsPlaylistID = channel.ContentDetails.RelatedPlaylists.Uploads
	}

	if summary.UploadsPlaylistID == "" {
		return domain.ChannelSummary{}, ports.ErrChannelNotFound
	}

	return summary, nil
}

func (s *youtubeProvider) ListUploads(ctx context.Context, playlistID string, max int) ([]string, error) {
	return collectUploads(ctx, s, playlistID, max)
}

func (s *youtubeProvider) FetchVideos(ctx context.Context, videoIDs []string) ([]domain.VideoRecord, error) {
	return collectVideos(ctx, s, s.log, videoIDs)
}

// uploadsPageLister is the single-page slice of the paginator, separated so
// the accumulation loop can be tested without the live API.
type uploadsPageLister interface {
	listPage(ctx context.Context, playlistID, pageToken string, max int64) (ids []string, nextToken string, err error)
}

func (s *youtubeProvider) listPage(ctx context.Context, playlistID, pageToken string, max int64) ([]string, string, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	call := s.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(max).
		Context(callCtx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return nil, "", mapAPIError(err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		ids = append(ids, item.ContentDetails.VideoId)
	}

	return ids, response.NextPageToken, nil
}

// collectUploads walks the uploads playlist with the continuation token until
// max IDs are collected or the source runs out of pages. Failure discards
// everything collected so far; this call is all-or-nothing.
func collectUploads(ctx context.Context, pages uploadsPageLister, playlistID string, max int) ([]string, error) {
	var ids []string
	pageToken := ""

	for len(ids) < max {
		pageSize := int64(min(pageCeiling, max-len(ids)))

		pageIDs, nextToken, err := pages.listPage(ctx, playlistID, pageToken, pageSize)
		if err != nil {
			return nil, fmt.Errorf("error while listing playlist items: %w", err)
		}

		ids = append(ids, pageIDs...)

		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	if len(ids) > max {
		ids = ids[:max]
	}

	return ids, nil
}

// videoBatchFetcher is the single-batch slice of the enricher, separated for
// the same reason as uploadsPageLister.
type videoBatchFetcher interface {
	fetchBatch(ctx context.Context, ids []string) ([]*youtube.Video, error)
}

func (s *youtubeProvider) fetchBatch(ctx context.Context, ids []string) ([]*youtube.Video, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	call := s.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(ids...).
		Context(callCtx)

	response, err := call.Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	return response.Items, nil
}

// collectVideos partitions the IDs into batches of at most batchCeiling and
// parses each returned item. A malformed item is skipped; a failed batch ends
// enrichment but keeps the records from batches already processed.
func collectVideos(ctx context.Context, batches videoBatchFetcher, log ports.LoggerPort, videoIDs []string) ([]domain.VideoRecord, error) {
	records := make([]domain.VideoRecord, 0, len(videoIDs))

	for start := 0; start < len(videoIDs); start += batchCeiling {
		end := min(start+batchCeiling, len(videoIDs))

		items, err := batches.fetchBatch(ctx, videoIDs[start:end])
		if err != nil {
			return records, fmt.Errorf("error while fetching video details: %w", err)
		}

		for _, item := range items {
			record, err := parseVideo(item)
			if err != nil {
				log.Warning(fmt.Sprintf("skipping malformed video item: %v", err))
				continue
			}
			records = append(records, record)
		}
	}

	return records, nil
}

func parseVideo(item *youtube.Video) (domain.VideoRecord, error) {
	if item == nil {
		return domain.VideoRecord{}, fmt.Errorf("nil video item")
	}
	if item.Snippet == nil || item.ContentDetails == nil {
		return domain.VideoRecord{}, fmt.Errorf("video %s missing snippet or content details", item.Id)
	}

	record := domain.VideoRecord{
		ID:          item.Id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		PublishedAt: item.Snippet.PublishedAt,
		Duration:    item.ContentDetails.Duration,
	}

	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
		record.Thumbnail = item.Snippet.Thumbnails.Medium.Url
	}
	if item.Statistics != nil {
		record.ViewCount = int64(item.Statistics.ViewCount)
		record.LikeCount = int64(item.Statistics.LikeCount)
		record.CommentCount = int64(item.Statistics.CommentCount)
	}

	return record, nil
}

// mapAPIError translates googleapi failures into the typed port errors the
// use case understands. Anything unrecognized passes through unchanged.
func mapAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	for _, item := range apiErr.Errors {
		switch item.Reason {
		case "quotaExceeded", "dailyLimitExceeded":
			return ports.ErrQuotaExceeded
		case "keyInvalid":
			return ports.ErrInvalidAPIKey
		}
	}

	if strings.Contains(apiErr.Message, "API key not valid") {
		return ports.ErrInvalidAPIKey
	}

	return err
}
