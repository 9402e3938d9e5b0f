package api

import (
	"encoding/json"
	"net/http"

	"github.com/garnizeh/careboard/internal/models"
	"github.com/garnizeh/careboard/pkg/repository"
	"github.com/google/uuid"
)

type PatientsHandler struct {
	doctorRepo repository.DoctorRepo
	queryRepo  repository.QueryRepo
	replyRepo  repository.ReplyRepo
}

func NewPatientsHandler(dr repository.DoctorRepo, qr repository.QueryRepo, rr repository.ReplyRepo) *PatientsHandler {
	return &PatientsHandler{doctorRepo: dr, queryRepo: qr, replyRepo: rr}
}

type doctorOption struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ListDoctors returns the selectable doctors with name and phone, so clients
// can render "Dr. {name} ({phone})" options.
func (h *PatientsHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorRepo.ListDoctors(r.Context())
	if err != nil {
		http.Error(w, "Failed to list doctors", http.StatusInternalServerError)
		return
	}

	out := make([]doctorOption, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, doctorOption{ID: d.ID, Name: d.Name, Phone: d.Phone})
	}

	writeJSON(w, out, http.StatusOK)
}

type submitQueryRequest struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Symptoms string `json:"symptoms"`
	DoctorID int64  `json:"doctor_id"`
}

type submitQueryResponse struct {
	ID         int64  `json:"id"`
	QueryToken string `json:"query_token"`
}

// SubmitQuery stores a patient query addressed to one doctor and returns the
// freshly generated query token. Name and symptoms may be empty; the only
// validated inputs are the age range and the doctor selection.
func (h *PatientsHandler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	var req submitQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Age < 1 || req.Age > 120 {
		http.Error(w, "Age must be between 1 and 120", http.StatusBadRequest)
		return
	}
	if req.DoctorID <= 0 {
		http.Error(w, "Missing doctor_id", http.StatusBadRequest)
		return
	}

	query := models.PatientQuery{
		Name:       req.Name,
		Age:        req.Age,
		Symptoms:   req.Symptoms,
		DoctorID:   req.DoctorID,
		QueryToken: uuid.NewString(),
	}

	id, err := h.queryRepo.CreateQuery(r.Context(), &query)
	if err != nil {
		http.Error(w, "Failed to store query", http.StatusInternalServerError)
		return
	}

	writeJSON(w, submitQueryResponse{ID: id, QueryToken: query.QueryToken}, http.StatusCreated)
}

type queryWithReply struct {
	models.PatientQuery
	Reply *models.Reply `json:"reply"`
}

// ListQueries returns every query whose stored name exactly equals the name
// parameter, each paired with the first reply for its token (or null when the
// doctor hasn't answered). Matching is by name string, not by any patient
// identity: same-named patients see each other's queries.
func (h *PatientsHandler) ListQueries(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	queries, err := h.queryRepo.ListQueriesByName(r.Context(), name)
	if err != nil {
		http.Error(w, "Failed to list queries", http.StatusInternalServerError)
		return
	}

	out := make([]queryWithReply, 0, len(queries))
	for _, q := range queries {
		reply, err := h.replyRepo.FirstReplyByToken(r.Context(), q.QueryToken)
		if err != nil {
			http.Error(w, "Failed to load replies", http.StatusInternalServerError)
			return
		}
		out = append(out, queryWithReply{PatientQuery: q, Reply: reply})
	}

	writeJSON(w, out, http.StatusOK)
}
