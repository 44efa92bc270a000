package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stemify/apiserver/internal/services"
	"github.com/stemify/apiserver/internal/store"
	"github.com/stemify/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// Session tokens are valid for a week from issuance. Nothing in this
// system verifies them afterwards; clients hold them for the frontend.
const sessionTokenTTL = 7 * 24 * time.Hour

const bcryptCost = 12

const invalidCredentialsMessage = "Invalid email or password"

var validate = validator.New()

// AuthHandler provides the signup and signin endpoints.
type AuthHandler struct {
	userService *services.UserService
	secret      []byte
	tokenTTL    time.Duration
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(userService *services.UserService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		secret:      []byte(jwtSecret),
		tokenTTL:    sessionTokenTTL,
	}
}

// AuthRouter registers the auth routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, jwtSecret string) {
	handler := NewAuthHandler(userService, jwtSecret)

	r.Post("/signup", handler.Signup)
	r.Post("/signin", handler.Signin)
}

// Signup registers a new student account and returns a session token.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Number = strings.TrimSpace(req.Number)
	req.ParentName = strings.TrimSpace(req.ParentName)
	req.ParentNumber = strings.TrimSpace(req.ParentNumber)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.School = strings.TrimSpace(req.School)
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	// The insert is atomic: uniqueness lives in the store, so two
	// concurrent signups with the same email cannot both succeed. A
	// student-id collision just means an unlucky draw; try again.
	var user types.User
	for attempt := 0; ; attempt++ {
		user, err = h.userService.Create(r.Context(), types.User{
			StudentID:    newStudentID(time.Now()),
			Name:         req.Name,
			Number:       req.Number,
			ParentName:   req.ParentName,
			ParentNumber: req.ParentNumber,
			Email:        req.Email,
			PasswordHash: string(hashed),
			School:       req.School,
		})
		if err == nil {
			break
		}
		if errors.Is(err, store.ErrDuplicateStudentID) {
			if attempt < maxStudentIDAttempts-1 {
				continue
			}
			writeError(w, http.StatusInternalServerError, "Could not allocate a student id")
			return
		}
		respondError(w, err)
		return
	}

	token, err := issueToken(user.ID, h.secret, h.tokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user.Public()})
}

// Signin verifies credentials and returns a fresh session token.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.userService.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same message as a wrong password so the response does
			// not reveal whether the email exists.
			writeError(w, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}
		respondError(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	}

	token, err := issueToken(user.ID, h.secret, h.tokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: user.Public()})
}

type SignupRequest struct {
	Name         string `json:"name" validate:"required"`
	Number       string `json:"number" validate:"required"`
	ParentName   string `json:"parentName" validate:"required"`
	ParentNumber string `json:"parentNumber" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Password     string `json:"password" validate:"required"`
	School       string `json:"school" validate:"required"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  types.PublicUser `json:"user"`
}

func issueToken(userID int, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
