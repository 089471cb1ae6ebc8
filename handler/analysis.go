package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/BeCuong18/PT-YT/analyze"
	"github.com/BeCuong18/PT-YT/model"
	"golang.org/x/exp/slog"
)

// Analyzer is the AI analysis collaborator.
type Analyzer interface {
	AnalyzeKeyword(ctx context.Context, req analyze.KeywordRequest) (*model.KeywordAnalysis, error)
	AnalyzeVideo(ctx context.Context, video model.VideoData, modelID string) (*model.VideoAnalysis, error)
}

type AnalysisAPI struct {
	analyzer Analyzer
	logger   *slog.Logger
}

func NewAnalysisAPI(analyzer Analyzer, logger *slog.Logger) *AnalysisAPI {
	return &AnalysisAPI{
		analyzer: analyzer,
		logger:   logger,
	}
}

func (a *AnalysisAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodPost && head == "keyword":
		a.Keyword(w, r)
	case r.Method == http.MethodPost && head == "video":
		a.Video(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the analysis api", r.Method, head))
	}
}

func (a *AnalysisAPI) Keyword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SearchTerm string            `json:"searchTerm"`
		Region     string            `json:"region"`
		Timeframe  string            `json:"timeframe"`
		Category   string            `json:"category"`
		Model      string            `json:"model"`
		Videos     []model.VideoData `json:"videos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	analysis, err := a.analyzer.AnalyzeKeyword(r.Context(), analyze.KeywordRequest{
		Term:      body.SearchTerm,
		Region:    body.Region,
		Timeframe: body.Timeframe,
		Category:  body.Category,
		Model:     body.Model,
		Videos:    body.Videos,
	})
	if err != nil {
		a.returnErr(w, http.StatusBadGateway, "keyword analysis failed", err)
		return
	}

	a.respond(w, analysis)
}

func (a *AnalysisAPI) Video(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Video model.VideoData `json:"video"`
		Model string          `json:"model"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	analysis, err := a.analyzer.AnalyzeVideo(r.Context(), body.Video, body.Model)
	if err != nil {
		a.returnErr(w, http.StatusBadGateway, "video analysis failed", err)
		return
	}

	a.respond(w, analysis)
}

func (a *AnalysisAPI) respond(w http.ResponseWriter, analysis any) {
	jsonBody, err := json.Marshal(analysis)
	if err != nil {
		a.returnErr(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(jsonBody)
}

func (a *AnalysisAPI) returnErr(w http.ResponseWriter, status int, message string, err error) {
	a.logger.Error(message, err)
	Error(w, status, message, err)
}
