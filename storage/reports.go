package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/BeCuong18/PT-YT/model"
	"github.com/google/uuid"
)

type PostgresReportRepository struct {
	postgres *Postgres
}

func NewPostgresReportRepository(postgres *Postgres) *PostgresReportRepository {
	return &PostgresReportRepository{postgres: postgres}
}

// Save upserts on video ID and trims the list back to MaxSavedReports,
// dropping the oldest.
func (r *PostgresReportRepository) Save(report *model.SavedReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if _, err := r.postgres.db.Exec(`
INSERT INTO report (id, video_id, data, saved_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (video_id) DO UPDATE
SET data = EXCLUDED.data, saved_at = EXCLUDED.saved_at`,
		report.ID, report.Video.ID, data, report.SavedAt); err != nil {
		return err
	}

	_, err = r.postgres.db.Exec(`
DELETE FROM report WHERE id NOT IN (
SELECT id FROM report ORDER BY saved_at DESC LIMIT $1
)`, MaxSavedReports)

	return err
}

func (r *PostgresReportRepository) FindAll() ([]*model.SavedReport, error) {
	rows, err := r.postgres.db.Query(`SELECT data FROM report ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []*model.SavedReport{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		report := &model.SavedReport{}
		if err := json.Unmarshal(data, report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

func (r *PostgresReportRepository) FindByVideoID(videoID string) (*model.SavedReport, error) {
	var data []byte
	err := r.postgres.db.QueryRow(`SELECT data FROM report WHERE video_id = $1`, videoID).Scan(&data)
	switch {
	case err == sql.ErrNoRows:
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}

	report := &model.SavedReport{}
	if err := json.Unmarshal(data, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return report, nil
}

func (r *PostgresReportRepository) Delete(videoID string) error {
	_, err := r.postgres.db.Exec(`DELETE FROM report WHERE video_id = $1`, videoID)

	return err
}
