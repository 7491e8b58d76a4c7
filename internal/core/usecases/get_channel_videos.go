package usecases

import (
	"context"
	"errors"
	"fmt"

	"tuberev/internal/core/domain"
	"tuberev/internal/core/ports"
	"tuberev/internal/core/revenue"
)

// GetChannelVideos runs the whole pipeline for one request: normalize the
// reference, resolve the channel, page through its uploads, enrich the video
// IDs and price each record. The caller is expected to have validated count
// (1-500) already.
func (uc *channelUseCase) GetChannelVideos(ctx context.Context, channelRef string, count int) domain.ChannelVideosResult {
	identifier := domain.NormalizeChannelReference(channelRef)
	uc.log.Info(fmt.Sprintf("fetching videos for channel %s", identifier))

	if !uc.keyConfigured {
		return domain.FailedResult(MsgAPIKeyNotConfigured)
	}

	summary, err := uc.youtube.ResolveChannel(ctx, identifier)
	if err != nil {
		if errors.Is(err, ports.ErrChannelNotFound) {
			return domain.FailedResult(MsgChannelNotFound)
		}
		return domain.FailedResult(mapExternalError(err))
	}

	// Lifetime estimate comes from total channel views with an assumed
	// average duration, not from summing the fetched videos.
	lifetime := revenue.Estimate(summary.TotalViews, assumedChannelDuration, nil)

	videoIDs, err := uc.youtube.ListUploads(ctx, summary.UploadsPlaylistID, count)
	if err != nil {
		uc.log.Error("listing uploads failed", err)
		return domain.FailedResult(mapExternalError(err))
	}

	if len(videoIDs) == 0 {
		return successResult(summary, []domain.VideoRecord{}, lifetime)
	}

	videos, err := uc.youtube.FetchVideos(ctx, videoIDs)
	if err != nil {
		if len(videos) == 0 {
			uc.log.Error("video enrichment failed", err)
			return domain.FailedResult(mapExternalError(err))
		}
		uc.log.Warning(fmt.Sprintf("video enrichment incomplete, keeping %d records: %v", len(videos), err))
	}

	var fetchedTotal float64
	for i := range videos {
		videos[i].CountryViews = uc.distributor.Distribute(videos[i].ViewCount)
		videos[i].EstimatedRevenue = revenue.Estimate(videos[i].ViewCount, videos[i].Duration, videos[i].CountryViews)
		fetchedTotal += videos[i].EstimatedRevenue
	}

	uc.log.Info(fmt.Sprintf("estimated %.2f USD across %d fetched videos (lifetime estimate %.2f)", fetchedTotal, len(videos), lifetime))

	return successResult(summary, videos, lifetime)
}

func successResult(summary domain.ChannelSummary, videos []domain.VideoRecord, lifetime float64) domain.ChannelVideosResult {
	return domain.ChannelVideosResult{
		Success:                  true,
		ChannelID:                summary.ID,
		ChannelTitle:             summary.Title,
		ChannelCreatedAt:         summary.CreatedAt,
		TotalChannelViews:        summary.TotalViews,
		LifetimeEstimatedRevenue: lifetime,
		Videos:                   videos,
		Total:                    len(videos),
	}
}

// mapExternalError translates external failures into the stable user-facing
// vocabulary. Anything untyped surfaces with its description.
func mapExternalError(err error) string {
	switch {
	case errors.Is(err, ports.ErrInvalidAPIKey):
		return MsgInvalidAPIKey
	case errors.Is(err, ports.ErrQuotaExceeded):
		return MsgQuotaExceeded
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}
