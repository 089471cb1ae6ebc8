package fetch

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BeCuong18/PT-YT/model"
	"golang.org/x/exp/slog"
)

// Request describes one fetch cycle.
type Request struct {
	Tags       []string
	RegionCode string
	MaxResults int
	Days       float64
	Mode       model.SearchMode
	CategoryID string
}

// Fetcher runs the video-acquisition pipeline against a bound API.
type Fetcher struct {
	api    API
	logger *slog.Logger
	now    func() time.Time
}

func NewFetcher(api API, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		api:    api,
		logger: logger,
		now:    time.Now,
	}
}

// Client is the fetch entry point for callers that hold a bare API key. It
// builds a fresh youtube client per cycle, so a changed key takes effect on
// the next call.
type Client struct {
	logger *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{logger: logger}
}

func (c *Client) FetchVideos(ctx context.Context, apiKey string, req Request) ([]model.VideoData, error) {
	api, err := NewYoutubeAPI(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	return NewFetcher(api, c.logger).FetchVideos(ctx, req)
}

// FetchVideos resolves the request's tags into video IDs according to the
// search mode, fetches full details and returns the normalized set filtered
// to the recency window and sorted by view count. An empty result is not an
// error, it means no matches.
func (f *Fetcher) FetchVideos(ctx context.Context, req Request) ([]model.VideoData, error) {
	publishedAfter := cutoff(f.now(), req.Days)

	var ids []string
	switch req.Mode {
	case model.ModeKeywords:
		found, err := f.search(ctx, SearchQuery{
			Query:          strings.Join(req.Tags, "|"),
			PublishedAfter: publishedAfter,
			RegionCode:     req.RegionCode,
			CategoryID:     req.CategoryID,
		}, req.MaxResults)
		if err != nil {
			return nil, err
		}
		ids = found
	case model.ModeChannels:
		channelIDs := f.ResolveChannelIDs(ctx, req.Tags)
		if len(channelIDs) == 0 {
			return []model.VideoData{}, nil
		}
		perChannel := max(5, (req.MaxResults+len(channelIDs)-1)/len(channelIDs))
		results := make([][]string, len(channelIDs))
		var wg sync.WaitGroup
		for i, channelID := range channelIDs {
			wg.Add(1)
			go func(i int, channelID string) {
				defer wg.Done()
				found, err := f.search(ctx, SearchQuery{
					ChannelID:      channelID,
					PublishedAfter: publishedAfter,
					RegionCode:     req.RegionCode,
					CategoryID:     req.CategoryID,
				}, perChannel)
				if err != nil {
					f.logger.Error("failed to search channel", err, slog.String("channel", channelID))
					return
				}
				results[i] = found
			}(i, channelID)
		}
		wg.Wait()
		ids = mergeUnique(results)
	case model.ModeVideoIDs:
		ids = make([]string, 0, len(req.Tags))
		for _, tag := range req.Tags {
			ids = append(ids, ExtractVideoID(tag))
		}
	case model.ModePlaylist:
		results := make([][]string, len(req.Tags))
		var wg sync.WaitGroup
		for i, tag := range req.Tags {
			wg.Add(1)
			go func(i int, playlistID string) {
				defer wg.Done()
				results[i] = f.playlistItems(ctx, playlistID, req.MaxResults)
			}(i, ExtractPlaylistID(tag))
		}
		wg.Wait()
		ids = mergeUnique(results)
	default:
		return nil, fmt.Errorf("unknown search mode %q", req.Mode)
	}

	if len(ids) == 0 {
		return []model.VideoData{}, nil
	}
	// explicit video IDs are fetched in full, the cap only applies to
	// searched results
	if req.Mode != model.ModeVideoIDs && len(ids) > req.MaxResults {
		ids = ids[:req.MaxResults]
	}

	videos := f.FetchDetails(ctx, ids)

	kept := make([]model.VideoData, 0, len(videos))
	for _, video := range videos {
		if video.PublishedAt.Before(publishedAfter) {
			continue
		}
		kept = append(kept, video)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].ViewCountRaw > kept[j].ViewCountRaw
	})

	return kept, nil
}

// cutoff computes the oldest acceptable publish time. Sub-day windows keep
// their fractional precision, larger windows count back whole days.
func cutoff(now time.Time, days float64) time.Time {
	if days < 1 {
		return now.Add(-time.Duration(days * 24 * float64(time.Hour)))
	}

	return now.AddDate(0, 0, -int(math.Floor(days)))
}

// mergeUnique flattens the per-target ID lists into one list with first-seen
// order preserved. Order matters because the merged list is truncated to the
// result cap afterwards.
func mergeUnique(lists [][]string) []string {
	seen := make(map[string]struct{})
	merged := []string{}
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}

	return merged
}
