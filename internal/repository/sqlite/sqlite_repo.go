package sqlite

import (
	"time"

	"github.com/garnizeh/careboard/internal/db"
	"github.com/garnizeh/careboard/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn *db.DB
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.DoctorRepo = (*SQLiteRepo)(nil)
var _ repository.QueryRepo = (*SQLiteRepo)(nil)
var _ repository.ReplyRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB) *SQLiteRepo {
	return &SQLiteRepo{conn: conn}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
