package analyze

import (
	"testing"
	"time"

	"github.com/BeCuong18/PT-YT/model"
)

func TestStats(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	videos := []model.VideoData{
		{
			Title:        "Lofi beats to study to",
			Description:  "the best lofi mix",
			ChannelTitle: "Beats Inc",
			ViewCountRaw: 9000,
			PublishedAt:  now.Add(-2 * 24 * time.Hour),
			Caption:      "true",
		},
		{
			Title:        "Morning jazz",
			Description:  "jazz for working",
			ChannelTitle: "Beats Inc",
			ViewCountRaw: 3000,
			PublishedAt:  now.Add(-10 * 24 * time.Hour),
		},
		{
			Title:        "LOFI sleep mix",
			Description:  "eight hours of rain",
			ChannelTitle: "Rainy Days",
			ViewCountRaw: 6000,
			PublishedAt:  now.Add(-3 * 24 * time.Hour),
			Caption:      "true",
		},
	}

	stats := Stats("lofi", videos, now)

	if stats.Total != 3 {
		t.Errorf("got total %d, want 3", stats.Total)
	}
	if stats.HighestViews != 9000 {
		t.Errorf("got highest views %d, want 9000", stats.HighestViews)
	}
	if stats.AvgViews != 6000 {
		t.Errorf("got avg views %d, want 6000", stats.AvgViews)
	}
	if stats.AddedLast7Days != 2 {
		t.Errorf("got %d added last 7 days, want 2", stats.AddedLast7Days)
	}
	if stats.CaptionedCount != 2 {
		t.Errorf("got %d captioned, want 2", stats.CaptionedCount)
	}
	if stats.InTitleCount != 2 {
		t.Errorf("got %d title matches, want 2 (case-insensitive)", stats.InTitleCount)
	}
	if stats.InDescriptionCount != 1 {
		t.Errorf("got %d description matches, want 1", stats.InDescriptionCount)
	}
	if stats.TopChannel != "Beats Inc" {
		t.Errorf("got top channel %q, want Beats Inc (12000 summed views)", stats.TopChannel)
	}
	if len(stats.TopChannels) != 2 {
		t.Fatalf("got %d top channels, want 2", len(stats.TopChannels))
	}
	if stats.TopChannels[0].Views != 12000 || stats.TopChannels[0].Videos != 2 {
		t.Errorf("got top channel share %+v, want 2 videos with 12000 views", stats.TopChannels[0])
	}
}

func TestStatsEmptySet(t *testing.T) {
	stats := Stats("anything", nil, time.Now())

	if stats.Total != 0 || stats.AvgViews != 0 || stats.TopChannel != "" {
		t.Errorf("got %+v, want zero stats for an empty set", stats)
	}
}
