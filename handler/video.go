package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/BeCuong18/PT-YT/fetch"
	"github.com/BeCuong18/PT-YT/model"
	"github.com/BeCuong18/PT-YT/storage"
	"golang.org/x/exp/slog"
)

// VideoFetcher runs one fetch cycle with the given API key.
type VideoFetcher interface {
	FetchVideos(ctx context.Context, apiKey string, req fetch.Request) ([]model.VideoData, error)
}

type VideoAPI struct {
	fetcher     VideoFetcher
	settingRepo storage.SettingRepository
	logger      *slog.Logger
}

func NewVideoAPI(fetcher VideoFetcher, settingRepo storage.SettingRepository, logger *slog.Logger) *VideoAPI {
	return &VideoAPI{
		fetcher:     fetcher,
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (v *VideoAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && head == "":
		v.Fetch(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the video api", r.Method, head))
	}
}

// Fetch runs a fetch cycle from query parameters: mode, tags (comma
// separated), region, max, days, category and an optional key that
// overrides the stored API key.
func (v *VideoAPI) Fetch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := fetch.Request{
		Mode:       model.SearchMode(q.Get("mode")),
		RegionCode: q.Get("region"),
		CategoryID: q.Get("category"),
		MaxResults: 100,
		Days:       30,
	}
	for _, tag := range strings.Split(q.Get("tags"), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			req.Tags = append(req.Tags, tag)
		}
	}
	if len(req.Tags) == 0 {
		Error(w, http.StatusBadRequest, "invalid request", errors.New("at least one tag is required"))
		return
	}
	if raw := q.Get("max"); raw != "" {
		maxResults, err := strconv.Atoi(raw)
		if err != nil || maxResults < 1 {
			Error(w, http.StatusBadRequest, "invalid request", fmt.Errorf("invalid max %q", raw))
			return
		}
		req.MaxResults = maxResults
	}
	if raw := q.Get("days"); raw != "" {
		days, err := strconv.ParseFloat(raw, 64)
		if err != nil || days <= 0 {
			Error(w, http.StatusBadRequest, "invalid request", fmt.Errorf("invalid days %q", raw))
			return
		}
		req.Days = days
	}

	apiKey := q.Get("key")
	if apiKey == "" {
		stored, err := v.settingRepo.Setting(storage.SettingAPIKey)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			v.returnErr(w, http.StatusInternalServerError, "could not read stored api key", err)
			return
		}
		apiKey = stored
	}

	videos, err := v.fetcher.FetchVideos(r.Context(), apiKey, req)
	switch {
	case errors.Is(err, fetch.ErrNoAPIKey):
		Error(w, http.StatusBadRequest, "missing api key", err)
		return
	case err != nil:
		var reqErr *fetch.RequestError
		if errors.As(err, &reqErr) {
			v.returnErr(w, http.StatusBadGateway, "fetch cycle failed", err)
			return
		}
		v.returnErr(w, http.StatusInternalServerError, "fetch cycle failed", err)
		return
	}

	jsonBody, err := json.Marshal(videos)
	if err != nil {
		v.returnErr(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(jsonBody)
}

func (v *VideoAPI) returnErr(w http.ResponseWriter, status int, message string, err error, details ...any) {
	v.logger.Error(message, err, slog.String("details", fmt.Sprintf("%+v", details)))
	Error(w, status, message, err, details...)
}
