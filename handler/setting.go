package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/BeCuong18/PT-YT/storage"
	"golang.org/x/exp/slog"
)

type SettingAPI struct {
	settingRepo storage.SettingRepository
	logger      *slog.Logger
}

func NewSettingAPI(settingRepo storage.SettingRepository, logger *slog.Logger) *SettingAPI {
	return &SettingAPI{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (a *SettingAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, _ := ShiftPath(r.URL.Path)
	if name == "" {
		Error(w, http.StatusNotFound, "not found", errors.New("a setting name is required"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		a.Get(w, name)
	case http.MethodPut:
		a.Set(w, r, name)
	case http.MethodDelete:
		a.Remove(w, name)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s was not registered in the setting api", r.Method))
	}
}

func (a *SettingAPI) Get(w http.ResponseWriter, name string) {
	value, err := a.settingRepo.Setting(name)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		Error(w, http.StatusNotFound, "not found", err)
		return
	case err != nil:
		a.returnErr(w, http.StatusInternalServerError, "could not read setting", err)
		return
	}

	jsonBody, err := json.Marshal(struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}{Name: name, Value: value})
	if err != nil {
		a.returnErr(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(jsonBody)
}

func (a *SettingAPI) Set(w http.ResponseWriter, r *http.Request, name string) {
	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := a.settingRepo.SetSetting(name, body.Value); err != nil {
		a.returnErr(w, http.StatusInternalServerError, "could not save setting", err)
		return
	}

	Message(w, http.StatusOK, "setting saved")
}

func (a *SettingAPI) Remove(w http.ResponseWriter, name string) {
	if err := a.settingRepo.RemoveSetting(name); err != nil {
		a.returnErr(w, http.StatusInternalServerError, "could not remove setting", err)
		return
	}

	Message(w, http.StatusOK, "setting removed")
}

func (a *SettingAPI) returnErr(w http.ResponseWriter, status int, message string, err error) {
	a.logger.Error(message, err)
	Error(w, status, message, err)
}
