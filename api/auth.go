package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/garnizeh/careboard/internal/credentials"
	"github.com/garnizeh/careboard/internal/models"
	"github.com/garnizeh/careboard/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	doctorRepo    repository.DoctorRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(dr repository.DoctorRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{doctorRepo: dr, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID int64 `json:"id"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string      `json:"token"`
	Doctor loginDoctor `json:"doctor"`
}

type loginDoctor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Register creates a doctor account. There is no uniqueness pre-check: the
// insert runs unconditionally and the store's unique index on username
// rejects duplicates.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Phone == "" || req.Username == "" || req.Password == "" {
		http.Error(w, "Fill all fields", http.StatusBadRequest)
		return
	}

	hash, err := credentials.Hash(req.Password)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	doctor := models.Doctor{
		Name:         req.Name,
		Phone:        req.Phone,
		Username:     req.Username,
		PasswordHash: hash,
	}

	id, err := h.doctorRepo.CreateDoctor(r.Context(), &doctor)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			http.Error(w, "Username already exists", http.StatusConflict)
			return
		}

		// anything else is a storage failure, not a conflict
		http.Error(w, "Error creating doctor", http.StatusInternalServerError)
		return
	}

	writeJSON(w, registerResponse{ID: id}, http.StatusCreated)
}

// Login authenticates a doctor and issues a JWT carrying the doctor id. The
// failure message never distinguishes an unknown username from a wrong
// password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	doctor, err := credentials.Verify(r.Context(), h.doctorRepo, req.Username, req.Password)
	if err != nil {
		http.Error(w, "Error verifying credentials", http.StatusInternalServerError)
		return
	}
	if doctor == nil {
		http.Error(w, "Invalid login", http.StatusUnauthorized)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"doctor_id": doctor.ID,
		"username":  doctor.Username,
		"exp":       time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, loginResponse{
		Token:  tokenStr,
		Doctor: loginDoctor{ID: doctor.ID, Name: doctor.Name},
	}, http.StatusOK)
}
