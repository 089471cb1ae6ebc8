// Package report renders saved reports into downloadable documents.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/BeCuong18/PT-YT/model"
)

// utf8BOM makes spreadsheet tools pick up non-ASCII titles correctly.
const utf8BOM = "\uFEFF"

// CSV renders a saved report as a two-column metric/value sheet.
func CSV(saved *model.SavedReport) ([]byte, error) {
	video := saved.Video

	rows := [][]string{
		{"Metric", "Value"},
		{"Title", video.Title},
		{"Channel", video.ChannelTitle},
		{"Video ID", video.ID},
		{"Published", video.PublishedAt.Format(time.RFC3339)},
		{"Views", strconv.FormatUint(video.ViewCountRaw, 10)},
		{"Likes", strconv.FormatUint(video.LikeCountRaw, 10)},
		{"Comments", strconv.FormatUint(video.CommentCountRaw, 10)},
		{"Engagement rate", video.EngagementRate + "%"},
		{"Duration", video.Duration},
		{"Definition", strings.ToUpper(video.Definition)},
		{"Audio language", video.DefaultAudioLanguage},
		{"Topics", strings.Join(topicNames(video.TopicCategories), ", ")},
		{"Made for kids", yesNo(video.MadeForKids)},
		{"Tags", strings.Join(video.Tags, ", ")},
	}
	if analysis := saved.Analysis; analysis != nil {
		rows = append(rows,
			[]string{"Performance verdict", analysis.PerformanceVerdict},
			[]string{"Audience hook", analysis.AudienceHook},
			[]string{"Retention strategy", analysis.RetentionStrategy},
			[]string{"Growth potential", analysis.GrowthPotential},
			[]string{"Age groups", analysis.Demographics.AgeGroups},
			[]string{"Gender distribution", analysis.Demographics.GenderDistribution},
			[]string{"Target locations", analysis.Demographics.TargetLocations},
		)
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	return buf.Bytes(), nil
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"topics": topicNames,
	"join":   strings.Join,
	"yesNo":  yesNo,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Video report: {{.Video.Title}}</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 52rem; margin: 2rem auto; }
h1 { color: #cc0000; border-bottom: 2px solid #cc0000; padding-bottom: 10px; }
h2 { background: #f0f0f0; padding: 10px; border-left: 5px solid #cc0000; }
table { width: 100%; border-collapse: collapse; }
th { text-align: left; width: 35%; padding: 8px; background: #fafafa; }
td { padding: 8px; border-bottom: 1px solid #eee; }
.tags { color: #444; font-size: small; background: #f9f9f9; padding: 10px; border: 1px dashed #ccc; }
</style>
</head>
<body>
<h1>Video performance report</h1>
<p>Saved {{.SavedAt.Format "2006-01-02 15:04"}}</p>

<h2>General</h2>
<table>
<tr><th>Title</th><td>{{.Video.Title}}</td></tr>
<tr><th>Channel</th><td>{{.Video.ChannelTitle}}</td></tr>
<tr><th>Video ID</th><td>{{.Video.ID}}</td></tr>
<tr><th>Published</th><td>{{.Video.PublishedAt.Format "2006-01-02 15:04"}}</td></tr>
<tr><th>Definition</th><td>{{.Video.Definition}}</td></tr>
<tr><th>Captions</th><td>{{if eq .Video.Caption "true"}}available{{else}}none{{end}}</td></tr>
<tr><th>Made for kids</th><td>{{yesNo .Video.MadeForKids}}</td></tr>
<tr><th>Recording location</th><td>{{if .Video.RecordingLocation}}{{.Video.RecordingLocation}}{{else}}not public{{end}}</td></tr>
</table>

<h2>Performance</h2>
<table>
<tr><th>Views</th><td>{{.Video.ViewCount}}</td></tr>
<tr><th>Likes</th><td>{{.Video.LikeCount}}</td></tr>
<tr><th>Comments</th><td>{{.Video.CommentCount}}</td></tr>
<tr><th>Engagement rate</th><td>{{.Video.EngagementRate}}%</td></tr>
<tr><th>Duration</th><td>{{.Video.Duration}}</td></tr>
</table>

<h2>Topics</h2>
<p>{{join (topics .Video.TopicCategories) ", "}}</p>

<h2>Tags</h2>
<p class="tags">{{join .Video.Tags ", "}}</p>

{{with .Analysis}}
<h2>AI analysis</h2>
<table>
<tr><th>Performance verdict</th><td>{{.PerformanceVerdict}}</td></tr>
<tr><th>Audience hook</th><td>{{.AudienceHook}}</td></tr>
<tr><th>Retention strategy</th><td>{{.RetentionStrategy}}</td></tr>
<tr><th>Growth potential</th><td>{{.GrowthPotential}}</td></tr>
<tr><th>Age groups</th><td>{{.Demographics.AgeGroups}}</td></tr>
<tr><th>Gender distribution</th><td>{{.Demographics.GenderDistribution}}</td></tr>
<tr><th>Target locations</th><td>{{.Demographics.TargetLocations}}</td></tr>
</table>
{{else}}
<p><i>No AI analysis was run for this video.</i></p>
{{end}}
</body>
</html>
`))

// HTML renders a saved report as a standalone document.
func HTML(saved *model.SavedReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, saved); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return buf.Bytes(), nil
}

// topicNames shortens topic category URLs to their trailing segment.
func topicNames(categories []string) []string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		if i := strings.LastIndex(category, "/"); i >= 0 {
			category = category[i+1:]
		}
		names = append(names, category)
	}

	return names
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
