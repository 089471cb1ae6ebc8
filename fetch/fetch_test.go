package fetch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/BeCuong18/PT-YT/model"
	"google.golang.org/api/youtube/v3"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestFetcher(api *fakeAPI) *Fetcher {
	f := NewFetcher(api, testLogger())
	f.now = func() time.Time { return testNow }

	return f
}

func recentStamp(age time.Duration) string {
	return testNow.Add(-age).Format(time.RFC3339)
}

func TestCutoff(t *testing.T) {
	for _, tc := range []struct {
		name string
		days float64
		want time.Time
	}{
		{"whole days", 7, testNow.AddDate(0, 0, -7)},
		{"fractional days above one round down", 7.9, testNow.AddDate(0, 0, -7)},
		{"sub-day windows keep their precision", 1.0 / 24, testNow.Add(-time.Hour)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := cutoff(testNow, tc.days); !got.Equal(tc.want) {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestFetchVideosKeywords(t *testing.T) {
	api := &fakeAPI{
		searchPage: func(query SearchQuery) (Page, error) {
			if query.Query != "cats|dogs" {
				t.Errorf("got query %q, want tags joined with |", query.Query)
			}
			return Page{IDs: []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc"}}, nil
		},
		details: func(ids []string) ([]*youtube.Video, error) {
			return []*youtube.Video{
				simpleVideo("aaaaaaaaaaa", recentStamp(24*time.Hour), 500),
				simpleVideo("bbbbbbbbbbb", recentStamp(48*time.Hour), 10000),
				simpleVideo("ccccccccccc", recentStamp(72*time.Hour), 2000),
			}, nil
		},
	}
	f := newTestFetcher(api)

	videos, err := f.FetchVideos(context.Background(), Request{
		Tags:       []string{"cats", "dogs"},
		MaxResults: 10,
		Days:       7,
		Mode:       model.ModeKeywords,
	})
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}

	wantOrder := []uint64{10000, 2000, 500}
	if len(videos) != len(wantOrder) {
		t.Fatalf("got %d videos, want %d", len(videos), len(wantOrder))
	}
	for i, want := range wantOrder {
		if videos[i].ViewCountRaw != want {
			t.Errorf("videos[%d] has %d views, want %d (descending by views)", i, videos[i].ViewCountRaw, want)
		}
	}
}

func TestFetchVideosKeywordsSearchFailure(t *testing.T) {
	api := &fakeAPI{searchPage: func(SearchQuery) (Page, error) {
		return Page{}, &RequestError{Endpoint: "search", Message: "quota exceeded"}
	}}
	f := newTestFetcher(api)

	_, err := f.FetchVideos(context.Background(), Request{
		Tags:       []string{"cats"},
		MaxResults: 10,
		Days:       7,
		Mode:       model.ModeKeywords,
	})
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("got %v, want a RequestError", err)
	}
}

func TestFetchVideosChannelsDeduplicates(t *testing.T) {
	channelA := "UCaaaaaaaaaaaaaaaaaaaaaa"
	channelB := "UCbbbbbbbbbbbbbbbbbbbbbb"
	api := &fakeAPI{
		searchPage: func(query SearchQuery) (Page, error) {
			switch query.ChannelID {
			case channelA:
				return Page{IDs: []string{"video000001", "video000002", "shared00000"}}, nil
			case channelB:
				return Page{IDs: []string{"shared00000", "video000003"}}, nil
			default:
				return Page{}, fmt.Errorf("unexpected channel %q", query.ChannelID)
			}
		},
		details: func(ids []string) ([]*youtube.Video, error) {
			return videosForIDs(ids, recentStamp(time.Hour)), nil
		},
	}
	f := newTestFetcher(api)

	videos, err := f.FetchVideos(context.Background(), Request{
		Tags:       []string{channelA, channelB},
		MaxResults: 10,
		Days:       7,
		Mode:       model.ModeChannels,
	})
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}

	if len(videos) != 4 {
		t.Fatalf("got %d videos, want 4 (shared id fetched once)", len(videos))
	}
	seen := map[string]int{}
	for _, id := range api.detailIDs() {
		seen[id]++
	}
	if seen["shared00000"] != 1 {
		t.Errorf("shared id appeared %d times in detail fetch, want exactly once", seen["shared00000"])
	}
}

func TestFetchVideosChannelFailureIsIsolated(t *testing.T) {
	channelA := "UCaaaaaaaaaaaaaaaaaaaaaa"
	channelB := "UCbbbbbbbbbbbbbbbbbbbbbb"
	api := &fakeAPI{
		searchPage: func(query SearchQuery) (Page, error) {
			if query.ChannelID == channelA {
				return Page{}, &RequestError{Endpoint: "search", Message: "forbidden"}
			}
			return Page{IDs: []string{"video000001"}}, nil
		},
		details: func(ids []string) ([]*youtube.Video, error) {
			return videosForIDs(ids, recentStamp(time.Hour)), nil
		},
	}
	f := newTestFetcher(api)

	videos, err := f.FetchVideos(context.Background(), Request{
		Tags:       []string{channelA, channelB},
		MaxResults: 10,
		Days:       7,
		Mode:       model.ModeChannels,
	})
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}
	if len(videos) != 1 {
		t.Errorf("got %d videos, want 1 from the surviving channel", len(videos))
	}
}

func TestFetchVideosChannelsNoneResolve(t *testing.T) {
	api := &fakeAPI{channelID: func(string) (string, error) {
		return "", errors.New("boom")
	}}
	f := newTestFetcher(api)

	videos, err := f.FetchVideos(context.Background(), Request{
		Tags:       []string{"@one", "@two"},
		MaxResults: 10,
		Days:       7,
		Mode:       model.ModeChannels,
	})
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("got %d videos, want an empty result", len(videos))
	}
	if len(api.searchCalls) != 0 {
		t.Errorf("got %d search calls, want none when no channel resolves", len(api.searchCalls))
	}
}

func TestFetchVideosRecencyFilter(t *testing.T) {
	api := &fakeAPI{
		searchPage: func(SearchQuery) (Page, error) {
			return Page{IDs: []string{"freshvideo0", "stalevideo0"}}, nil
		},
		details: func(ids []string) ([]*youtube.Video, error) {
			return []*youtube.Video{
				simpleVideo("freshvideo0", recentStamp(24*time.Hour), 100),
				simpleVideo("stalevideo0", recentStamp(8*24*time.Hour), 100),
			}, nil
		},
	}
	f := newTestFetcher(api)

	videos, err := f.FetchVideos(context.Background(), Request{
		Tags:       []string{"cats"},
		MaxResults: 10,
		Days:       7,
		Mode:       model.ModeKeywords,
	})
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}
	if len(videos) != 1 || videos[0].ID != "freshvideo0" {
		t.Errorf("got %v, want only the video inside the recency window", videos)
	}
}

func TestFetchVideosVideoIDsSkipCap(t *testing.T) {
	api := &fakeAPI{
		details: func(ids []string) ([]*youtube.Video, error) {
			return videosForIDs(ids, recentStamp(time.Hour)), nil
		},
	}
	f := newTestFetcher(api)

	videos, err := f.FetchVideos(context.Background(), Request{
		Tags: []string{
			"https://www.youtube.com/watch?v=aaaaaaaaaaa",
			"bbbbbbbbbbb",
			"https://youtu.be/ccccccccccc",
		},
		MaxResults: 2,
		Days:       7,
		Mode:       model.ModeVideoIDs,
	})
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}
	if len(videos) != 3 {
		t.Errorf("got %d videos, want all 3 explicitly named ones despite max=2", len(videos))
	}
}

func TestFetchVideosPlaylistMerges(t *testing.T) {
	api := &fakeAPI{
		playlistPage: func(playlistID string, _ int64, _ string) (Page, error) {
			switch playlistID {
			case "PLaaaaaaaaaaaaaaaaaaaaaa":
				return Page{IDs: []string{"video000001", "shared00000"}}, nil
			default:
				return Page{IDs: []string{"shared00000", "video000002"}}, nil
			}
		},
		details: func(ids []string) ([]*youtube.Video, error) {
			return videosForIDs(ids, recentStamp(time.Hour)), nil
		},
	}
	f := newTestFetcher(api)

	videos, err := f.FetchVideos(context.Background(), Request{
		Tags:       []string{"PLaaaaaaaaaaaaaaaaaaaaaa", "PLbbbbbbbbbbbbbbbbbbbbbb"},
		MaxResults: 10,
		Days:       7,
		Mode:       model.ModePlaylist,
	})
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}
	if len(videos) != 3 {
		t.Errorf("got %d videos, want 3 after dedup across playlists", len(videos))
	}
}

func TestFetchVideosTruncatesBeforeDetails(t *testing.T) {
	ids := make([]string, 30)
	for i := range ids {
		ids[i] = fmt.Sprintf("video%06d", i)
	}
	api := &fakeAPI{
		searchPage: func(SearchQuery) (Page, error) {
			return Page{IDs: ids}, nil
		},
		details: func(ids []string) ([]*youtube.Video, error) {
			return videosForIDs(ids, recentStamp(time.Hour)), nil
		},
	}
	f := newTestFetcher(api)

	videos, err := f.FetchVideos(context.Background(), Request{
		Tags:       []string{"cats"},
		MaxResults: 10,
		Days:       7,
		Mode:       model.ModeKeywords,
	})
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}
	if len(videos) != 10 {
		t.Errorf("got %d videos, want 10", len(videos))
	}
	if got := len(api.detailIDs()); got != 10 {
		t.Errorf("detail fetch saw %d ids, want the truncated 10", got)
	}
}

func TestFetchVideosUnknownMode(t *testing.T) {
	f := newTestFetcher(&fakeAPI{})

	_, err := f.FetchVideos(context.Background(), Request{
		Tags: []string{"cats"},
		Mode: model.SearchMode("NONSENSE"),
	})
	if err == nil {
		t.Fatal("got nil error for an unknown mode")
	}
}

func TestFetchDetailsBatchIsolation(t *testing.T) {
	ids := make([]string, 120)
	for i := range ids {
		ids[i] = fmt.Sprintf("video%06d", i)
	}
	api := &fakeAPI{
		details: func(batch []string) ([]*youtube.Video, error) {
			if batch[0] == "video000050" {
				return nil, &RequestError{Endpoint: "videos", Message: "backend error"}
			}
			return videosForIDs(batch, recentStamp(time.Hour)), nil
		},
	}
	f := newTestFetcher(api)

	videos := f.FetchDetails(context.Background(), ids)
	if len(videos) != 70 {
		t.Errorf("got %d videos, want 70 from the two surviving batches", len(videos))
	}
	if len(api.detailCalls) != 3 {
		t.Errorf("got %d batch calls, want 3", len(api.detailCalls))
	}
}
