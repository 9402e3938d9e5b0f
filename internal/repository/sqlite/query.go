package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/careboard/internal/models"
)

func (r *SQLiteRepo) CreateQuery(ctx context.Context, q *models.PatientQuery) (int64, error) {
	if q == nil {
		return 0, fmt.Errorf("query is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO patient_queries (name, age, symptoms, doctor_id, query_token, created) VALUES (?, ?, ?, ?, ?, ?)`, q.Name, q.Age, q.Symptoms, q.DoctorID, q.QueryToken, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListQueriesByDoctor(ctx context.Context, doctorID int64) ([]models.PatientQuery, error) {
	return r.listQueries(ctx, `SELECT id, name, age, symptoms, doctor_id, query_token, created FROM patient_queries WHERE doctor_id = ? ORDER BY id`, doctorID)
}

// ListQueriesByName matches on the exact name string. Patients have no
// account, so the name is the only correlation key the system has; two
// patients sharing a name see each other's queries.
func (r *SQLiteRepo) ListQueriesByName(ctx context.Context, name string) ([]models.PatientQuery, error) {
	return r.listQueries(ctx, `SELECT id, name, age, symptoms, doctor_id, query_token, created FROM patient_queries WHERE name = ? ORDER BY id`, name)
}

func (r *SQLiteRepo) listQueries(ctx context.Context, query string, args ...any) ([]models.PatientQuery, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PatientQuery
	for rows.Next() {
		var q models.PatientQuery
		if err := rows.Scan(&q.ID, &q.Name, &q.Age, &q.Symptoms, &q.DoctorID, &q.QueryToken, &q.Created); err != nil {
			return nil, err
		}
		out = append(out, q)
	}

	return out, rows.Err()
}
