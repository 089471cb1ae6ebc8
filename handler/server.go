package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/BeCuong18/PT-YT/storage"
	"golang.org/x/exp/slog"
)

type Server struct {
	apis   map[string]http.Handler
	logger *slog.Logger
}

func NewServer(fetcher VideoFetcher, analyzer Analyzer, settingRepo storage.SettingRepository, reportRepo storage.ReportRepository, logger *slog.Logger) *Server {
	return &Server{
		apis: map[string]http.Handler{
			"video":    NewVideoAPI(fetcher, settingRepo, logger),
			"analysis": NewAnalysisAPI(analyzer, logger),
			"report":   NewReportAPI(reportRepo, logger),
			"setting":  NewSettingAPI(settingRepo, logger),
		},
		logger: logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	originalPath := r.URL.Path
	rec := httptest.NewRecorder() // records the response to be able to mix writing headers and content

	// route to api
	head, tail := ShiftPath(r.URL.Path)
	if len(head) == 0 {
		rec.Header().Add("Content-Type", "application/json")
		Index(rec)
		returnResponse(w, rec)
		return
	}
	api, ok := s.apis[head]
	if !ok {
		rec.Header().Add("Content-Type", "application/json")
		Error(rec, http.StatusNotFound, "not found", fmt.Errorf("%s is not a valid path", r.URL.Path))
	} else {
		r.URL.Path = tail
		api.ServeHTTP(rec, r)
	}

	returnResponse(w, rec)
	s.logger.Info("request served", slog.String("path", originalPath), slog.Int("status", rec.Code))
}

func returnResponse(w http.ResponseWriter, rec *httptest.ResponseRecorder) {
	for k, v := range rec.Header() {
		w.Header()[k] = v
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(rec.Code)
	w.Write(rec.Body.Bytes())
}
