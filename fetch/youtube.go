package fetch

import (
	"context"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const detailParts = "snippet,statistics,contentDetails,topicDetails,status,recordingDetails"

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

// NewYoutubeAPI builds the youtube-backed API for one fetch cycle.
func NewYoutubeAPI(ctx context.Context, apiKey string) (*Youtube, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return NewYoutube(client), nil
}

func (y *Youtube) SearchPage(ctx context.Context, query SearchQuery) (Page, error) {
	call := y.Client.Search.
		List([]string{"id"}).
		MaxResults(query.MaxResults).
		Type("video").
		Order("viewCount").
		PublishedAfter(query.PublishedAfter.UTC().Format(time.RFC3339)).
		Context(ctx)

	if query.RegionCode != "" && query.RegionCode != "ALL" {
		call = call.RegionCode(query.RegionCode)
	}
	if query.Query != "" {
		call = call.Q(query.Query)
	}
	if query.ChannelID != "" {
		call = call.ChannelId(query.ChannelID)
	}
	if query.CategoryID != "" && query.CategoryID != "ALL" {
		call = call.VideoCategoryId(query.CategoryID)
	}
	if query.PageToken != "" {
		call = call.PageToken(query.PageToken)
	}

	response, err := call.Do()
	if err != nil {
		return Page{}, newRequestError("search", err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}

	return Page{IDs: ids, NextPageToken: response.NextPageToken}, nil
}

func (y *Youtube) PlaylistPage(ctx context.Context, playlistID string, maxResults int64, pageToken string) (Page, error) {
	call := y.Client.PlaylistItems.
		List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx)

	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return Page{}, newRequestError("playlistItems", err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		ids = append(ids, item.ContentDetails.VideoId)
	}

	return Page{IDs: ids, NextPageToken: response.NextPageToken}, nil
}

func (y *Youtube) FindChannelID(ctx context.Context, name string) (string, error) {
	response, err := y.Client.Search.
		List([]string{"snippet"}).
		Type("channel").
		Q(name).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", newRequestError("search", err)
	}
	if len(response.Items) == 0 || response.Items[0].Id == nil {
		return "", nil
	}

	return response.Items[0].Id.ChannelId, nil
}

func (y *Youtube) VideoDetails(ctx context.Context, ids []string) ([]*youtube.Video, error) {
	response, err := y.Client.Videos.
		List(strings.Split(detailParts, ",")).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, newRequestError("videos", err)
	}

	return response.Items, nil
}
