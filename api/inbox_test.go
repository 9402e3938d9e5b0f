package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/garnizeh/careboard/api"
	"github.com/garnizeh/careboard/internal/models"
	"github.com/garnizeh/careboard/pkg/repository/mock"
)

func withDoctorID(r *http.Request, id int64) *http.Request {
	ctx := context.WithValue(r.Context(), api.CtxDoctorID, id)
	return r.WithContext(ctx)
}

func TestListInbox(t *testing.T) {
	mocks := mock.NewMocks()
	handler := api.NewInboxHandler(mocks.QueryRepo, mocks.ReplyRepo)

	ctx := context.Background()
	queries := []*models.PatientQuery{
		{Name: "Bob", Age: 30, Symptoms: "cough", DoctorID: 1, QueryToken: "token-1"},
		{Name: "Cara", Age: 44, Symptoms: "headache", DoctorID: 2, QueryToken: "token-2"},
		{Name: "Dan", Age: 61, Symptoms: "fever", DoctorID: 1, QueryToken: "token-3"},
	}
	for _, q := range queries {
		if _, err := mocks.QueryRepo.CreateQuery(ctx, q); err != nil {
			t.Fatalf("CreateQuery error: %v", err)
		}
	}

	// doctor 1 sees only queries addressed to them, in insertion order
	req := withDoctorID(httptest.NewRequest(http.MethodGet, "/inbox", nil), 1)
	w := httptest.NewRecorder()
	handler.ListInbox(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var got []models.PatientQuery
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal inbox: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Bob" || got[1].Name != "Dan" {
		t.Fatalf("unexpected inbox: %#v", got)
	}

	// doctor without queries gets an empty array, not null
	req3 := withDoctorID(httptest.NewRequest(http.MethodGet, "/inbox", nil), 3)
	w3 := httptest.NewRecorder()
	handler.ListInbox(w3, req3)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w3.Code)
	}
	if body := w3.Body.String(); !bytes.Contains([]byte(body), []byte("[]")) {
		t.Fatalf("expected empty array body, got %s", body)
	}
}

func TestListInbox_MissingIdentity(t *testing.T) {
	mocks := mock.NewMocks()
	handler := api.NewInboxHandler(mocks.QueryRepo, mocks.ReplyRepo)

	req := httptest.NewRequest(http.MethodGet, "/inbox", nil)
	w := httptest.NewRecorder()
	handler.ListInbox(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without doctor identity, got %d", w.Code)
	}
}

func TestSendReply(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"InvalidRequest", "not a json", http.StatusBadRequest},
		{"MissingToken", map[string]string{"reply_text": "rest"}, http.StatusBadRequest},
		{"Success", map[string]string{"query_token": "token-1", "reply_text": "rest and fluids"}, http.StatusCreated},
		{"EmptyTextAllowed", map[string]string{"query_token": "token-1"}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			handler := api.NewInboxHandler(mocks.QueryRepo, mocks.ReplyRepo)

			b, _ := json.Marshal(tt.body)
			req := withDoctorID(httptest.NewRequest(http.MethodPost, "/inbox/replies", bytes.NewReader(b)), 1)
			w := httptest.NewRecorder()
			handler.SendReply(w, req)

			res := w.Result()
			defer res.Body.Close()
			data, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d got %d body=%s", tt.wantStatus, res.StatusCode, string(data))
			}
		})
	}
}

func TestSendReply_ResendKeepsFirst(t *testing.T) {
	mocks := mock.NewMocks()
	handler := api.NewInboxHandler(mocks.QueryRepo, mocks.ReplyRepo)
	ctx := context.Background()

	send := func(text string) {
		b, _ := json.Marshal(map[string]string{"query_token": "token-1", "reply_text": text})
		req := withDoctorID(httptest.NewRequest(http.MethodPost, "/inbox/replies", bytes.NewReader(b)), 1)
		w := httptest.NewRecorder()
		handler.SendReply(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("send reply: expected 201 got %d", w.Code)
		}
	}

	// both sends succeed; the read path keeps returning the first one
	send("rest and fluids")
	send("actually, see a specialist")

	rp, err := mocks.ReplyRepo.FirstReplyByToken(ctx, "token-1")
	if err != nil {
		t.Fatalf("FirstReplyByToken error: %v", err)
	}
	if rp == nil || rp.ReplyText != "rest and fluids" {
		t.Fatalf("expected first reply to win, got %#v", rp)
	}
}
