package sqlc

import (
	"database/sql"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

// DbManager owns the connection used by the analytics of finished games.
type DbManager struct {
	db        *sql.DB
	Analytics *AnalyticsManager
}

func NewDbManager(db *sql.DB) *DbManager {
	return &DbManager{
		db:        db,
		Analytics: NewAnalyticsManager(New(db)),
	}
}

func (m *DbManager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}
