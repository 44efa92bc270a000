package handlers

import "net/http"

// Index describes the API surface at the root path.
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, IndexResponse{
		Message: "STEMify registration API",
		Endpoints: map[string]string{
			"POST /signup":        "Register a new student account",
			"POST /signin":        "Sign in with email and password",
			"GET /admin/students": "List registered students (admin key required)",
			"GET /healthz":        "Liveness probe",
		},
	})
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers any unmatched method and path pair.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}
