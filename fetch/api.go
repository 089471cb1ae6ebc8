package fetch

import (
	"context"
	"time"

	"google.golang.org/api/youtube/v3"
)

// SearchQuery carries the filter parameters for one page of a video search.
type SearchQuery struct {
	Query          string
	ChannelID      string
	PublishedAfter time.Time
	RegionCode     string
	CategoryID     string
	MaxResults     int64
	PageToken      string
}

// Page is one page of video IDs from a listing endpoint. An empty
// NextPageToken means the source is exhausted.
type Page struct {
	IDs           []string
	NextPageToken string
}

// API is the remote surface the pipeline needs. The production
// implementation is Youtube, tests substitute a fake.
type API interface {
	SearchPage(ctx context.Context, query SearchQuery) (Page, error)
	PlaylistPage(ctx context.Context, playlistID string, maxResults int64, pageToken string) (Page, error)
	FindChannelID(ctx context.Context, name string) (string, error)
	VideoDetails(ctx context.Context, ids []string) ([]*youtube.Video, error)
}
