package analyze

import (
	"sort"
	"strings"
	"time"

	"github.com/BeCuong18/PT-YT/model"
)

// VideoStats are the aggregates computed over one fetched video set for a
// search term. They feed both the dashboard and the AI analysis prompt.
type VideoStats struct {
	Total              int
	HighestViews       uint64
	AvgViews           uint64
	AddedLast7Days     int
	CaptionedCount     int
	InTitleCount       int
	InDescriptionCount int
	TopChannel         string
	TopChannels        []model.ChannelShare
}

// Stats reduces a fetched video set. The term match is case-insensitive,
// "added last 7 days" counts back from now.
func Stats(term string, videos []model.VideoData, now time.Time) VideoStats {
	stats := VideoStats{Total: len(videos)}
	if len(videos) == 0 {
		return stats
	}

	term = strings.ToLower(term)
	weekAgo := now.Add(-7 * 24 * time.Hour)
	var totalViews uint64
	channels := map[string]*model.ChannelShare{}
	order := []string{}
	for _, video := range videos {
		totalViews += video.ViewCountRaw
		if video.ViewCountRaw > stats.HighestViews {
			stats.HighestViews = video.ViewCountRaw
		}
		if !video.PublishedAt.Before(weekAgo) {
			stats.AddedLast7Days++
		}
		if video.Caption == "true" {
			stats.CaptionedCount++
		}
		if strings.Contains(strings.ToLower(video.Title), term) {
			stats.InTitleCount++
		}
		if strings.Contains(strings.ToLower(video.Description), term) {
			stats.InDescriptionCount++
		}

		share, ok := channels[video.ChannelTitle]
		if !ok {
			share = &model.ChannelShare{Name: video.ChannelTitle}
			channels[video.ChannelTitle] = share
			order = append(order, video.ChannelTitle)
		}
		share.Videos++
		share.Views += video.ViewCountRaw
	}
	stats.AvgViews = totalViews / uint64(len(videos))

	ranked := make([]model.ChannelShare, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, *channels[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})
	stats.TopChannel = ranked[0].Name
	stats.TopChannels = ranked[:min(3, len(ranked))]

	return stats
}
