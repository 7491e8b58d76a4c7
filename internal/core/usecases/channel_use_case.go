package usecases

import (
	"context"

	"tuberev/internal/core/domain"
	"tuberev/internal/core/ports"
)

// User-facing error vocabulary. The pipeline never raises past its own
// boundary; every failure is one of these messages inside the result.
const (
	MsgAPIKeyNotConfigured = "YouTube API key not configured. Set YOUTUBE_API_KEY in the environment."
	MsgChannelNotFound     = "Channel not found."
	MsgInvalidAPIKey       = "Invalid YouTube API key."
	MsgQuotaExceeded       = "YouTube API quota exceeded."
)

// assumedChannelDuration stands in for the unknowable average video length
// when estimating lifetime revenue from total channel views.
const assumedChannelDuration = "PT10M"

type ChannelUseCase interface {
	GetChannelVideos(ctx context.Context, channelRef string, count int) domain.ChannelVideosResult
}

type channelUseCase struct {
	youtube       ports.YoutubePort
	distributor   ports.ViewDistributorPort
	log           ports.LoggerPort
	keyConfigured bool
}

func NewChannelUseCase(youtube ports.YoutubePort, distributor ports.ViewDistributorPort, logger ports.LoggerPort, keyConfigured bool) ChannelUseCase {
	return &channelUseCase{
		youtube:       youtube,
		distributor:   distributor,
		log:           logger,
		keyConfigured: keyConfigured,
	}
}
