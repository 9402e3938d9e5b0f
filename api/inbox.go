package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/garnizeh/careboard/internal/models"
	"github.com/garnizeh/careboard/pkg/repository"
)

type InboxHandler struct {
	queryRepo repository.QueryRepo
	replyRepo repository.ReplyRepo
}

func NewInboxHandler(qr repository.QueryRepo, rr repository.ReplyRepo) *InboxHandler {
	return &InboxHandler{queryRepo: qr, replyRepo: rr}
}

// ListInbox returns every patient query addressed to the logged-in doctor in
// insertion order. The doctor id comes from the JWT, never from the request.
func (h *InboxHandler) ListInbox(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := doctorIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	queries, err := h.queryRepo.ListQueriesByDoctor(r.Context(), doctorID)
	if err != nil {
		http.Error(w, "Failed to list queries", http.StatusInternalServerError)
		return
	}
	if queries == nil {
		queries = []models.PatientQuery{}
	}

	writeJSON(w, queries, http.StatusOK)
}

type sendReplyRequest struct {
	QueryToken string `json:"query_token"`
	ReplyText  string `json:"reply_text"`
}

type sendReplyResponse struct {
	ID int64 `json:"id"`
}

// SendReply stores a reply for a query token. Re-sending is allowed and adds
// another row; the read path only ever surfaces the first-inserted one.
func (h *InboxHandler) SendReply(w http.ResponseWriter, r *http.Request) {
	var req sendReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.QueryToken) == "" {
		http.Error(w, "Missing query_token", http.StatusBadRequest)
		return
	}

	reply := models.Reply{QueryToken: req.QueryToken, ReplyText: req.ReplyText}
	id, err := h.replyRepo.CreateReply(r.Context(), &reply)
	if err != nil {
		http.Error(w, "Failed to store reply", http.StatusInternalServerError)
		return
	}

	writeJSON(w, sendReplyResponse{ID: id}, http.StatusCreated)
}
