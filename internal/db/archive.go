package db

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ArchivedSchedule is one accepted schedule version recorded for history.
// The file store stays canonical for the player host; the archive is the
// durable record of what was installed when.
type ArchivedSchedule struct {
	ID         int       `db:"id" json:"id"`
	Version    string    `db:"version" json:"version"`
	Document   []byte    `db:"document" json:"document"`
	ReceivedAt time.Time `db:"received_at" json:"received_at"`
}

func InsertScheduleVersion(version string, document []byte) (ArchivedSchedule, error) {
	var a ArchivedSchedule
	const q = `
	INSERT INTO schedule_versions (version, document, received_at)
	VALUES ($1, $2, now())
	RETURNING id, version, document, received_at;`
	if err := DB.Get(&a, q, version, document); err != nil {
		log.Error().Err(err).Str("version", version).Msg("InsertScheduleVersion failed")
		return ArchivedSchedule{}, err
	}
	return a, nil
}

func ListScheduleVersions(limit int) ([]ArchivedSchedule, error) {
	var out []ArchivedSchedule
	const q = `
	SELECT id, version, document, received_at
	  FROM schedule_versions
	 ORDER BY received_at DESC
	 LIMIT $1;`
	if err := DB.Select(&out, q, limit); err != nil {
		log.Error().Err(err).Msg("ListScheduleVersions failed")
		return nil, err
	}
	return out, nil
}

func GetScheduleVersion(version string) (ArchivedSchedule, error) {
	var a ArchivedSchedule
	err := DB.Get(&a, `
	SELECT id, version, document, received_at
	  FROM schedule_versions
	 WHERE version = $1
	 ORDER BY received_at DESC
	 LIMIT 1;`, version)
	if err != nil {
		log.Error().Err(err).Str("version", version).Msg("GetScheduleVersion failed")
	}
	return a, err
}
