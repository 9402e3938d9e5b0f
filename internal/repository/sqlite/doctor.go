package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/garnizeh/careboard/internal/models"
	"github.com/garnizeh/careboard/pkg/repository"
)

func (r *SQLiteRepo) CreateDoctor(ctx context.Context, d *models.Doctor) (int64, error) {
	if d == nil {
		return 0, fmt.Errorf("doctor is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO doctors (name, phone, username, password_hash, created) VALUES (?, ?, ?, ?, ?)`, d.Name, d.Phone, d.Username, d.PasswordHash, now())
	if err != nil {
		// sqlite reports the unique index on username as a constraint error;
		// surface it as the tagged sentinel so callers don't have to guess.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, repository.ErrDuplicateUsername
		}

		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetDoctorByUsername(ctx context.Context, username string) (*models.Doctor, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, phone, username, password_hash, created FROM doctors WHERE username = ?`, username)
	var d models.Doctor
	var pw sql.NullString
	if err := row.Scan(&d.ID, &d.Name, &d.Phone, &d.Username, &pw, &d.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if pw.Valid {
		d.PasswordHash = pw.String
	}

	return &d, nil
}

func (r *SQLiteRepo) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, phone, username, created FROM doctors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Doctor
	for rows.Next() {
		var d models.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.Username, &d.Created); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
