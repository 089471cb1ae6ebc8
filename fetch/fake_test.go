package fetch

import (
	"context"
	"io"
	"sync"

	"golang.org/x/exp/slog"
	"google.golang.org/api/youtube/v3"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

// fakeAPI substitutes the remote endpoints in tests. The per-endpoint
// functions can be left nil when a test does not touch that endpoint.
type fakeAPI struct {
	mu sync.Mutex

	searchPage   func(query SearchQuery) (Page, error)
	playlistPage func(playlistID string, maxResults int64, pageToken string) (Page, error)
	channelID    func(name string) (string, error)
	details      func(ids []string) ([]*youtube.Video, error)

	searchCalls   []SearchQuery
	playlistCalls []string
	detailCalls   [][]string
}

func (f *fakeAPI) SearchPage(_ context.Context, query SearchQuery) (Page, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, query)
	f.mu.Unlock()

	return f.searchPage(query)
}

func (f *fakeAPI) PlaylistPage(_ context.Context, playlistID string, maxResults int64, pageToken string) (Page, error) {
	f.mu.Lock()
	f.playlistCalls = append(f.playlistCalls, playlistID)
	f.mu.Unlock()

	return f.playlistPage(playlistID, maxResults, pageToken)
}

func (f *fakeAPI) FindChannelID(_ context.Context, name string) (string, error) {
	return f.channelID(name)
}

func (f *fakeAPI) VideoDetails(_ context.Context, ids []string) ([]*youtube.Video, error) {
	f.mu.Lock()
	batch := make([]string, len(ids))
	copy(batch, ids)
	f.detailCalls = append(f.detailCalls, batch)
	f.mu.Unlock()

	return f.details(ids)
}

func (f *fakeAPI) detailIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := []string{}
	for _, batch := range f.detailCalls {
		all = append(all, batch...)
	}

	return all
}

// simpleVideo builds a details record with just enough fields for the
// orchestrator tests.
func simpleVideo(id, publishedAt string, views uint64) *youtube.Video {
	return &youtube.Video{
		Id: id,
		Snippet: &youtube.VideoSnippet{
			Title:       "video " + id,
			PublishedAt: publishedAt,
			Thumbnails:  &youtube.ThumbnailDetails{Default: &youtube.Thumbnail{Url: "https://i.ytimg.com/" + id + ".jpg"}},
		},
		Statistics:     &youtube.VideoStatistics{ViewCount: views},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT1M"},
	}
}

func videosForIDs(ids []string, publishedAt string) []*youtube.Video {
	videos := make([]*youtube.Video, 0, len(ids))
	for _, id := range ids {
		videos = append(videos, simpleVideo(id, publishedAt, 100))
	}

	return videos
}
