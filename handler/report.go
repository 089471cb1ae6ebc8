package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BeCuong18/PT-YT/model"
	"github.com/BeCuong18/PT-YT/report"
	"github.com/BeCuong18/PT-YT/storage"
	"golang.org/x/exp/slog"
)

type ReportAPI struct {
	reportRepo storage.ReportRepository
	logger     *slog.Logger
}

func NewReportAPI(reportRepo storage.ReportRepository, logger *slog.Logger) *ReportAPI {
	return &ReportAPI{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (a *ReportAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	videoID, tail := ShiftPath(r.URL.Path)
	sub, _ := ShiftPath(tail)

	switch {
	case r.Method == http.MethodGet && videoID == "":
		a.List(w, r)
	case r.Method == http.MethodPut && videoID != "" && sub == "":
		a.Save(w, r, videoID)
	case r.Method == http.MethodDelete && videoID != "" && sub == "":
		a.Delete(w, r, videoID)
	case r.Method == http.MethodGet && videoID != "" && sub == "export":
		a.Export(w, r, videoID)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the report api", r.Method, r.URL.Path))
	}
}

func (a *ReportAPI) List(w http.ResponseWriter, _ *http.Request) {
	reports, err := a.reportRepo.FindAll()
	if err != nil {
		a.returnErr(w, http.StatusInternalServerError, "could not list reports", err)
		return
	}

	jsonBody, err := json.Marshal(reports)
	if err != nil {
		a.returnErr(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(jsonBody)
}

func (a *ReportAPI) Save(w http.ResponseWriter, r *http.Request, videoID string) {
	var body struct {
		Video    model.VideoData      `json:"video"`
		Analysis *model.VideoAnalysis `json:"analysis"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if body.Video.ID != videoID {
		Error(w, http.StatusBadRequest, "invalid request body", fmt.Errorf("video id %q does not match path %q", body.Video.ID, videoID))
		return
	}

	saved := &model.SavedReport{
		Video:    body.Video,
		Analysis: body.Analysis,
		SavedAt:  time.Now(),
	}
	if err := a.reportRepo.Save(saved); err != nil {
		a.returnErr(w, http.StatusInternalServerError, "could not save report", err)
		return
	}

	Message(w, http.StatusOK, "report saved")
}

func (a *ReportAPI) Delete(w http.ResponseWriter, _ *http.Request, videoID string) {
	if err := a.reportRepo.Delete(videoID); err != nil {
		a.returnErr(w, http.StatusInternalServerError, "could not delete report", err)
		return
	}

	Message(w, http.StatusOK, "report deleted")
}

func (a *ReportAPI) Export(w http.ResponseWriter, r *http.Request, videoID string) {
	saved, err := a.reportRepo.FindByVideoID(videoID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		Error(w, http.StatusNotFound, "not found", err)
		return
	case err != nil:
		a.returnErr(w, http.StatusInternalServerError, "could not load report", err)
		return
	}

	format := r.URL.Query().Get("format")
	var body []byte
	var contentType, filename string
	switch format {
	case "csv":
		body, err = report.CSV(saved)
		contentType = "text/csv; charset=utf-8"
		filename = fmt.Sprintf("report-%s.csv", videoID)
	case "html", "":
		body, err = report.HTML(saved)
		contentType = "text/html; charset=utf-8"
		filename = fmt.Sprintf("report-%s.html", videoID)
	default:
		Error(w, http.StatusBadRequest, "invalid request", fmt.Errorf("unknown export format %q", format))
		return
	}
	if err != nil {
		a.returnErr(w, http.StatusInternalServerError, "could not render report", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (a *ReportAPI) returnErr(w http.ResponseWriter, status int, message string, err error) {
	a.logger.Error(message, err)
	Error(w, status, message, err)
}
