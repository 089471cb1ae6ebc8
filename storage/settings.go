package storage

import "database/sql"

type PostgresSettingRepository struct {
	postgres *Postgres
}

func NewPostgresSettingRepository(postgres *Postgres) *PostgresSettingRepository {
	return &PostgresSettingRepository{postgres: postgres}
}

func (s *PostgresSettingRepository) Setting(name string) (string, error) {
	var value string
	err := s.postgres.db.QueryRow(`SELECT value FROM setting WHERE name = $1`, name).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return "", ErrNotFound
	case err != nil:
		return "", err
	}

	return value, nil
}

func (s *PostgresSettingRepository) SetSetting(name, value string) error {
	_, err := s.postgres.db.Exec(`
INSERT INTO setting (name, value) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`, name, value)

	return err
}

func (s *PostgresSettingRepository) RemoveSetting(name string) error {
	_, err := s.postgres.db.Exec(`DELETE FROM setting WHERE name = $1`, name)

	return err
}
