package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoAnalysis is what the AI collaborator returns for a single video.
type VideoAnalysis struct {
	PerformanceVerdict string       `json:"performanceVerdict"`
	AudienceHook       string       `json:"audienceHook"`
	RetentionStrategy  string       `json:"retentionStrategy"`
	GrowthPotential    string       `json:"growthPotential"`
	Demographics       Demographics `json:"predictedDemographics"`
}

type Demographics struct {
	AgeGroups          string `json:"ageGroups"`
	GenderDistribution string `json:"genderDistribution"`
	TargetLocations    string `json:"targetLocations"`
}

// KeywordAnalysis combines aggregates computed from a fetched video set with
// the AI collaborator's trend commentary for one search term.
type KeywordAnalysis struct {
	SearchTerm         string           `json:"searchTerm"`
	OverallScore       float64          `json:"overallScore"`
	Volume             float64          `json:"volume"`
	Competition        float64          `json:"competition"`
	HighestViews       uint64           `json:"highestViews"`
	AvgViews           uint64           `json:"avgViews"`
	AddedLast7Days     string           `json:"addedLast7Days"`
	CaptionedCount     string           `json:"ccCount"`
	TimesInTitle       string           `json:"timesInTitle"`
	TimesInDescription string           `json:"timesInDesc"`
	TopChannel         string           `json:"topCreator"`
	TopChannels        []ChannelShare   `json:"topChannels"`
	RelatedKeywords    []RelatedKeyword `json:"relatedKeywords"`
	RisingKeywords     []RisingKeyword  `json:"risingKeywords"`
	TopOpportunities   []Opportunity    `json:"topOpportunities"`
}

type ChannelShare struct {
	Name   string `json:"name"`
	Videos int    `json:"videos"`
	Views  uint64 `json:"views"`
}

type RelatedKeyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

type RisingKeyword struct {
	Term    string `json:"term"`
	Volume  string `json:"volume"`
	Change  string `json:"change"`
	IsUp    bool   `json:"isUp"`
	Topic   string `json:"topic"`
	Country string `json:"country"`
}

type Opportunity struct {
	Term    string  `json:"term"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason"`
	Topic   string  `json:"topic"`
	Country string  `json:"country"`
}

// SavedReport is one stored dashboard report. Reports are keyed by video ID:
// saving a report for an already saved video replaces the old one.
type SavedReport struct {
	ID       uuid.UUID      `json:"id"`
	Video    VideoData      `json:"video"`
	Analysis *VideoAnalysis `json:"analysis,omitempty"`
	SavedAt  time.Time      `json:"savedAt"`
}
