package storage

import (
	"errors"

	"github.com/BeCuong18/PT-YT/model"
)

var ErrNotFound = errors.New("not found")

// SettingRepository is a small key-value store for user settings, currently
// just the YouTube API key.
type SettingRepository interface {
	Setting(name string) (string, error)
	SetSetting(name, value string) error
	RemoveSetting(name string) error
}

// ReportRepository stores the bounded saved-report list: most recent first,
// keyed by video ID so re-saving replaces, trimmed to MaxSavedReports.
type ReportRepository interface {
	Save(report *model.SavedReport) error
	FindAll() ([]*model.SavedReport, error)
	FindByVideoID(videoID string) (*model.SavedReport, error)
	Delete(videoID string) error
}

const MaxSavedReports = 50

const SettingAPIKey = "youtube_api_key"
