package model

import "time"

type SearchMode string

const (
	ModeKeywords SearchMode = "KEYWORDS"
	ModeChannels SearchMode = "CHANNELS"
	ModeVideoIDs SearchMode = "VIDEO_IDS"
	ModePlaylist SearchMode = "PLAYLIST"
)

type ChannelIDKind string

const (
	ChannelKindID      ChannelIDKind = "ID"
	ChannelKindHandle  ChannelIDKind = "HANDLE"
	ChannelKindUnknown ChannelIDKind = "UNKNOWN"
)

// ChannelIdentifier is a classified channel reference. Only identifiers of
// kind ID can be used against the remote API directly, the other kinds need
// a lookup first.
type ChannelIdentifier struct {
	Kind  ChannelIDKind
	Value string
}

// VideoData is the normalized form of one fetched video. It is built once
// per fetch cycle and not updated afterwards.
type VideoData struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	ChannelTitle string    `json:"channelTitle"`
	ChannelID    string    `json:"channelId"`
	PublishedAt  time.Time `json:"publishedAt"`
	Duration     string    `json:"duration"`
	Tags         []string  `json:"tags"`
	CategoryID   string    `json:"categoryId"`

	ViewCountRaw    uint64 `json:"viewCountRaw"`
	LikeCountRaw    uint64 `json:"likeCountRaw"`
	CommentCountRaw uint64 `json:"commentCountRaw"`
	ViewCount       string `json:"viewCount"`
	LikeCount       string `json:"likeCount"`
	CommentCount    string `json:"commentCount"`
	EngagementRate  string `json:"engagementRate"`

	Definition           string   `json:"definition"`
	Caption              string   `json:"caption"`
	LicensedContent      bool     `json:"licensedContent"`
	Projection           string   `json:"projection"`
	DefaultAudioLanguage string   `json:"defaultAudioLanguage,omitempty"`
	DefaultLanguage      string   `json:"defaultLanguage,omitempty"`
	TopicCategories      []string `json:"topicCategories"`
	MadeForKids          bool     `json:"madeForKids"`
	Embeddable           bool     `json:"embeddable"`
	PublicStatsViewable  bool     `json:"publicStatsViewable"`
	RecordingLocation    string   `json:"recordingLocation,omitempty"`
}
