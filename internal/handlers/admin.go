package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/stemify/apiserver/internal/services"
	"github.com/stemify/apiserver/types"
)

const adminKeyQueryParam = "adminKey"
const adminKeyHeader = "x-admin-key"

// AdminHandler provides the shared-secret student listing.
type AdminHandler struct {
	userService *services.UserService
	adminKey    string
}

// NewAdminHandler constructs an AdminHandler with the provided dependencies.
func NewAdminHandler(userService *services.UserService, adminKey string) *AdminHandler {
	return &AdminHandler{
		userService: userService,
		adminKey:    adminKey,
	}
}

// AdminRouter registers admin routes on the given router.
func AdminRouter(r chi.Router, userService *services.UserService, adminKey string) {
	handler := NewAdminHandler(userService, adminKey)

	r.Get("/students", handler.ListStudents)
}

// ListStudents returns every registered account, newest first.
func (h *AdminHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(r.URL.Query().Get(adminKeyQueryParam))
	if key == "" {
		key = strings.TrimSpace(r.Header.Get(adminKeyHeader))
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.adminKey)) != 1 {
		writeError(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	users, err := h.userService.ListNewestFirst(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	students := make([]types.StudentRecord, 0, len(users))
	for _, user := range users {
		students = append(students, user.Record())
	}

	writeJSON(w, http.StatusOK, StudentListResponse{
		Count:    len(students),
		Students: students,
	})
}

type StudentListResponse struct {
	Count    int                   `json:"count"`
	Students []types.StudentRecord `json:"students"`
}
