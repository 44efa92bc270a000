package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stemify/apiserver/internal/services"
	"github.com/stemify/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminKey = "super-secret"

func newAdminRouter(repo *fakeUserRepo) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/admin", func(r chi.Router) {
		AdminRouter(r, services.NewUserService(repo), testAdminKey)
	})
	return router
}

func seedStudents(repo *fakeUserRepo) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, email := range []string{"first@x.com", "second@x.com", "third@x.com"} {
		repo.users = append(repo.users, types.User{
			ID:           i + 1,
			StudentID:    "STEM-20260801-AAAAA" + string(rune('0'+i)),
			Name:         "Student",
			Number:       "0100",
			ParentName:   "Parent",
			ParentNumber: "0200",
			Email:        email,
			PasswordHash: "x",
			School:       "Cairo High",
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		})
	}
	repo.nextID = len(repo.users)
}

func TestListStudents(t *testing.T) {
	repo := &fakeUserRepo{}
	seedStudents(repo)
	router := newAdminRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/students?adminKey="+testAdminKey, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp StudentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	require.Len(t, resp.Students, 3)

	// Newest first.
	assert.Equal(t, "third@x.com", resp.Students[0].Email)
	assert.Equal(t, "second@x.com", resp.Students[1].Email)
	assert.Equal(t, "first@x.com", resp.Students[2].Email)

	for _, student := range resp.Students {
		assert.NotEmpty(t, student.StudentID)
		assert.NotEmpty(t, student.ParentName)
		assert.False(t, student.CreatedAt.IsZero())
	}

	// The raw body must never contain password material.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestListStudentsHeaderKey(t *testing.T) {
	repo := &fakeUserRepo{}
	seedStudents(repo)
	router := newAdminRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/students", nil)
	req.Header.Set("x-admin-key", testAdminKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListStudentsRejectsBadKey(t *testing.T) {
	repo := &fakeUserRepo{}
	seedStudents(repo)
	router := newAdminRouter(repo)

	cases := []struct {
		name    string
		request func() *http.Request
	}{
		{"missing", func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/admin/students", nil)
		}},
		{"wrong query", func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/admin/students?adminKey=nope", nil)
		}},
		{"wrong header", func() *http.Request {
			req := httptest.NewRequest(http.MethodGet, "/admin/students", nil)
			req.Header.Set("x-admin-key", "nope")
			return req
		}},
		{"key in wrong field", func() *http.Request {
			req := httptest.NewRequest(http.MethodGet, "/admin/students", nil)
			req.Header.Set("Authorization", "Bearer "+testAdminKey)
			return req
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, tc.request())
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}

func TestListStudentsEmptyStore(t *testing.T) {
	router := newAdminRouter(&fakeUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/admin/students?adminKey="+testAdminKey, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StudentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Students)
}

func TestListStudentsStoreError(t *testing.T) {
	repo := &fakeUserRepo{listErr: assert.AnError}
	router := newAdminRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/students?adminKey="+testAdminKey, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), assert.AnError.Error())
}
