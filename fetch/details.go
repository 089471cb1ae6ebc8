package fetch

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/BeCuong18/PT-YT/model"
	"golang.org/x/exp/slog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"google.golang.org/api/youtube/v3"
)

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

var countPrinter = message.NewPrinter(language.English)

// FetchDetails looks up full records for the given IDs in batches of 50 and
// normalizes them. Batches are fetched concurrently and independently: a
// failed batch only drops its own IDs from the result.
func (f *Fetcher) FetchDetails(ctx context.Context, ids []string) []model.VideoData {
	batches := [][]string{}
	for start := 0; start < len(ids); start += pageSize {
		batches = append(batches, ids[start:min(start+pageSize, len(ids))])
	}

	records := make([][]*youtube.Video, len(batches))
	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []string) {
			defer wg.Done()
			items, err := f.api.VideoDetails(ctx, batch)
			if err != nil {
				f.logger.Error("failed to fetch video details", err, slog.Int("batch", i), slog.Int("count", len(batch)))
				return
			}
			records[i] = items
		}(i, batch)
	}
	wg.Wait()

	videos := []model.VideoData{}
	for _, batch := range records {
		for _, item := range batch {
			videos = append(videos, normalize(item))
		}
	}

	return videos
}

func normalize(item *youtube.Video) model.VideoData {
	video := model.VideoData{
		ID:              item.Id,
		Tags:            []string{},
		TopicCategories: []string{},
	}

	if snippet := item.Snippet; snippet != nil {
		video.Title = snippet.Title
		video.Description = snippet.Description
		video.ChannelTitle = snippet.ChannelTitle
		video.ChannelID = snippet.ChannelId
		video.CategoryID = snippet.CategoryId
		video.DefaultAudioLanguage = snippet.DefaultAudioLanguage
		video.DefaultLanguage = snippet.DefaultLanguage
		video.ThumbnailURL = bestThumbnail(snippet.Thumbnails)
		if snippet.Tags != nil {
			video.Tags = snippet.Tags
		}
		if publishedAt, err := time.Parse(time.RFC3339, snippet.PublishedAt); err == nil {
			video.PublishedAt = publishedAt
		}
	}

	var views, likes, comments uint64
	if stats := item.Statistics; stats != nil {
		views, likes, comments = stats.ViewCount, stats.LikeCount, stats.CommentCount
	}
	video.ViewCountRaw = views
	video.LikeCountRaw = likes
	video.CommentCountRaw = comments
	video.ViewCount = formatCount(views)
	video.LikeCount = formatCount(likes)
	video.CommentCount = formatCount(comments)
	video.EngagementRate = engagementRate(views, likes, comments)

	if details := item.ContentDetails; details != nil {
		video.Duration = formatDuration(details.Duration)
		video.Definition = details.Definition
		video.Caption = details.Caption
		video.LicensedContent = details.LicensedContent
		video.Projection = details.Projection
	}
	if status := item.Status; status != nil {
		video.MadeForKids = status.MadeForKids
		video.Embeddable = status.Embeddable
		video.PublicStatsViewable = status.PublicStatsViewable
	}
	if topics := item.TopicDetails; topics != nil && topics.TopicCategories != nil {
		video.TopicCategories = topics.TopicCategories
	}
	video.RecordingLocation = recordingLocation(item.RecordingDetails)

	return video
}

func bestThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	for _, thumb := range []*youtube.Thumbnail{thumbnails.Maxres, thumbnails.High, thumbnails.Medium, thumbnails.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}

	return ""
}

func engagementRate(views, likes, comments uint64) string {
	if views == 0 {
		return "0.00"
	}

	return strconv.FormatFloat(float64(likes+comments)/float64(views)*100, 'f', 2, 64)
}

// formatDuration renders an ISO 8601 duration code as h:mm:ss, or m:ss when
// there is no hour component.
func formatDuration(code string) string {
	m := durationPattern.FindStringSubmatch(code)
	if m == nil {
		return "0:00"
	}
	hours, _ := strconv.Atoi(zeroWhenEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroWhenEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroWhenEmpty(m[3]))
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}

	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func zeroWhenEmpty(s string) string {
	if s == "" {
		return "0"
	}

	return s
}

func formatCount(count uint64) string {
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return countPrinter.Sprintf("%d", count)
	}
}

func recordingLocation(recording *youtube.VideoRecordingDetails) string {
	if recording == nil {
		return ""
	}
	if recording.LocationDescription != "" {
		return recording.LocationDescription
	}
	if recording.Location != nil {
		return fmt.Sprintf("%v, %v", recording.Location.Latitude, recording.Location.Longitude)
	}

	return ""
}
