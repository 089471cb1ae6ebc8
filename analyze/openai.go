package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/BeCuong18/PT-YT/model"
	"github.com/sashabaranov/go-openai"
)

const keywordPrompt = `You are a YouTube data analyst. Given a search term and aggregate statistics over recently fetched videos, estimate the term's SEO potential.
Respond with a single JSON object, no prose, no code fences, with exactly these fields:
"overallScore" (number 0-100), "volume" (number), "competition" (number 0-100),
"relatedKeywords" (array of {"term": string, "score": number}),
"risingKeywords" (array of {"term": string, "volume": string, "change": string, "isUp": boolean, "topic": string, "country": string}),
"topOpportunities" (array of {"term": string, "score": number, "reason": string, "topic": string, "country": string}).`

const videoPrompt = `You are a YouTube performance analyst. Given one video's metadata and statistics, explain its performance.
Respond with a single JSON object, no prose, no code fences, with exactly these fields:
"performanceVerdict", "audienceHook", "retentionStrategy", "growthPotential" (strings), and
"predictedDemographics" ({"ageGroups": string, "genderDistribution": string, "targetLocations": string}).`

// KeywordRequest is one AI keyword analysis request.
type KeywordRequest struct {
	Term      string
	Region    string
	Timeframe string
	Category  string
	Model     string
	Videos    []model.VideoData
}

type Analyzer struct {
	client *openai.Client
	model  string
	now    func() time.Time
}

// NewAnalyzer wraps an OpenAI client. defaultModel is used when a request
// does not name a model.
func NewAnalyzer(client *openai.Client, defaultModel string) *Analyzer {
	return &Analyzer{
		client: client,
		model:  defaultModel,
		now:    time.Now,
	}
}

// AnalyzeKeyword computes aggregates over the fetched set and asks the model
// for trend commentary. The aggregates in the result are always the locally
// computed ones, only the score and keyword lists come from the model.
func (a *Analyzer) AnalyzeKeyword(ctx context.Context, req KeywordRequest) (*model.KeywordAnalysis, error) {
	stats := Stats(req.Term, req.Videos, a.now())

	user := fmt.Sprintf(`Search term: %q
Region: %s
Timeframe: %s
Category: %s
Videos fetched: %d
Highest views: %d
Average views: %d
Published in the last 7 days: %d of %d
Search term in title: %d of %d
Top channel by total views: %s`,
		req.Term, req.Region, req.Timeframe, req.Category,
		stats.Total, stats.HighestViews, stats.AvgViews,
		stats.AddedLast7Days, stats.Total,
		stats.InTitleCount, stats.Total,
		stats.TopChannel)

	var parsed struct {
		OverallScore     float64                `json:"overallScore"`
		Volume           float64                `json:"volume"`
		Competition      float64                `json:"competition"`
		RelatedKeywords  []model.RelatedKeyword `json:"relatedKeywords"`
		RisingKeywords   []model.RisingKeyword  `json:"risingKeywords"`
		TopOpportunities []model.Opportunity    `json:"topOpportunities"`
	}
	if err := a.complete(ctx, req.Model, keywordPrompt, user, &parsed); err != nil {
		return nil, err
	}

	return &model.KeywordAnalysis{
		SearchTerm:         req.Term,
		OverallScore:       parsed.OverallScore,
		Volume:             parsed.Volume,
		Competition:        parsed.Competition,
		HighestViews:       stats.HighestViews,
		AvgViews:           stats.AvgViews,
		AddedLast7Days:     outOf(stats.AddedLast7Days, stats.Total),
		CaptionedCount:     outOf(stats.CaptionedCount, stats.Total),
		TimesInTitle:       outOf(stats.InTitleCount, stats.Total),
		TimesInDescription: outOf(stats.InDescriptionCount, stats.Total),
		TopChannel:         stats.TopChannel,
		TopChannels:        stats.TopChannels,
		RelatedKeywords:    parsed.RelatedKeywords,
		RisingKeywords:     parsed.RisingKeywords,
		TopOpportunities:   parsed.TopOpportunities,
	}, nil
}

// AnalyzeVideo asks the model for a performance verdict on a single video.
func (a *Analyzer) AnalyzeVideo(ctx context.Context, video model.VideoData, modelID string) (*model.VideoAnalysis, error) {
	user := fmt.Sprintf(`Title: %s
Channel: %s
Published: %s
Duration: %s
Views: %d
Likes: %d
Comments: %d
Engagement rate: %s%%
Tags: %s
Description:
%s`,
		video.Title, video.ChannelTitle, video.PublishedAt.Format(time.RFC3339),
		video.Duration, video.ViewCountRaw, video.LikeCountRaw, video.CommentCountRaw,
		video.EngagementRate, strings.Join(video.Tags, ", "), video.Description)

	analysis := &model.VideoAnalysis{}
	if err := a.complete(ctx, modelID, videoPrompt, user, analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

func (a *Analyzer) complete(ctx context.Context, modelID, system, user string, out any) error {
	if modelID == "" {
		modelID = a.model
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch analysis: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("analysis response had no choices")
	}

	content := stripFences(resp.Choices[len(resp.Choices)-1].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("failed to parse analysis: %w", err)
	}

	return nil
}

func outOf(n, total int) string {
	return fmt.Sprintf("%d/%d", n, total)
}

// stripFences tolerates models that wrap JSON in a markdown code fence
// despite being told not to.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	return strings.TrimSpace(content)
}
