package mock

import (
	"context"

	"github.com/garnizeh/careboard/internal/models"
	"github.com/garnizeh/careboard/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	DoctorRepo *mockDoctorRepo
	QueryRepo  *mockQueryRepo
	ReplyRepo  *mockReplyRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		DoctorRepo: &mockDoctorRepo{},
		QueryRepo:  &mockQueryRepo{},
		ReplyRepo:  &mockReplyRepo{},
	}
}

type mockDoctorRepo struct {
	Doctors   []models.Doctor
	CreateErr error
	ListErr   error
	nextID    int64
}

func (m *mockDoctorRepo) CreateDoctor(ctx context.Context, d *models.Doctor) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	for _, existing := range m.Doctors {
		if existing.Username == d.Username {
			return 0, repository.ErrDuplicateUsername
		}
	}
	m.nextID++
	stored := *d
	stored.ID = m.nextID
	m.Doctors = append(m.Doctors, stored)
	return stored.ID, nil
}

func (m *mockDoctorRepo) GetDoctorByUsername(ctx context.Context, username string) (*models.Doctor, error) {
	for i := range m.Doctors {
		if m.Doctors[i].Username == username {
			d := m.Doctors[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (m *mockDoctorRepo) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Doctors, nil
}

type mockQueryRepo struct {
	Queries   []models.PatientQuery
	CreateErr error
	nextID    int64
}

func (m *mockQueryRepo) CreateQuery(ctx context.Context, q *models.PatientQuery) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *q
	stored.ID = m.nextID
	m.Queries = append(m.Queries, stored)
	return stored.ID, nil
}

func (m *mockQueryRepo) ListQueriesByDoctor(ctx context.Context, doctorID int64) ([]models.PatientQuery, error) {
	var out []models.PatientQuery
	for _, q := range m.Queries {
		if q.DoctorID == doctorID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *mockQueryRepo) ListQueriesByName(ctx context.Context, name string) ([]models.PatientQuery, error) {
	var out []models.PatientQuery
	for _, q := range m.Queries {
		if q.Name == name {
			out = append(out, q)
		}
	}
	return out, nil
}

type mockReplyRepo struct {
	Replies   []models.Reply
	CreateErr error
	nextID    int64
}

func (m *mockReplyRepo) CreateReply(ctx context.Context, rp *models.Reply) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *rp
	stored.ID = m.nextID
	m.Replies = append(m.Replies, stored)
	return stored.ID, nil
}

func (m *mockReplyRepo) FirstReplyByToken(ctx context.Context, token string) (*models.Reply, error) {
	for i := range m.Replies {
		if m.Replies[i].QueryToken == token {
			rp := m.Replies[i]
			return &rp, nil
		}
	}
	return nil, nil
}
