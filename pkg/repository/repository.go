package repository

import (
	"context"
	"errors"

	"github.com/garnizeh/careboard/internal/models"
)

// ErrDuplicateUsername is returned by CreateDoctor when the username is
// already taken. Callers must be able to tell this apart from any other
// storage failure, so it is never folded into a generic error.
var ErrDuplicateUsername = errors.New("username already exists")

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type DoctorRepo interface {
	CreateDoctor(ctx context.Context, d *models.Doctor) (int64, error)
	GetDoctorByUsername(ctx context.Context, username string) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
}

type QueryRepo interface {
	CreateQuery(ctx context.Context, q *models.PatientQuery) (int64, error)
	ListQueriesByDoctor(ctx context.Context, doctorID int64) ([]models.PatientQuery, error)
	ListQueriesByName(ctx context.Context, name string) ([]models.PatientQuery, error)
}

type ReplyRepo interface {
	CreateReply(ctx context.Context, rp *models.Reply) (int64, error)
	FirstReplyByToken(ctx context.Context, token string) (*models.Reply, error)
}
