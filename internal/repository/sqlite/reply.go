package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/careboard/internal/models"
)

func (r *SQLiteRepo) CreateReply(ctx context.Context, rp *models.Reply) (int64, error) {
	if rp == nil {
		return 0, fmt.Errorf("reply is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO replies (query_token, reply_text, created) VALUES (?, ?, ?)`, rp.QueryToken, rp.ReplyText, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// FirstReplyByToken returns the first-inserted reply for a token, or nil when
// none exists. Later replies to the same token stay in the table but are
// never surfaced by any read path.
func (r *SQLiteRepo) FirstReplyByToken(ctx context.Context, token string) (*models.Reply, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, query_token, reply_text, created FROM replies WHERE query_token = ? ORDER BY id LIMIT 1`, token)
	var rp models.Reply
	if err := row.Scan(&rp.ID, &rp.QueryToken, &rp.ReplyText, &rp.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &rp, nil
}
