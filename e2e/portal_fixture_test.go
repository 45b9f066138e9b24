//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// fakePortal serves the portal endpoints the console uses
type fakePortal struct {
	mu         sync.Mutex
	staff      bool
	subscribed [][2]int
	logouts    int
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func startPortal(t *testing.T, staff bool) (*fakePortal, string) {
	t.Helper()
	p := &fakePortal{staff: staff}

	r := chi.NewRouter()
	r.Route("/api/accounts", func(r chi.Router) {
		r.Post("/login/", func(w http.ResponseWriter, r *http.Request) {
			var in struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in.Password != "secret" {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "auth_failed", "message": "Invalid credentials"})
				return
			}
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "e2e-token", Path: "/"})
			writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
		})
		r.Post("/logout/", func(w http.ResponseWriter, r *http.Request) {
			p.mu.Lock()
			p.logouts++
			p.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})
		r.Get("/users/me/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"id": 10, "username": "admin", "first_name": "Root", "last_name": "Admin", "is_staff": p.staff})
		})
		r.Get("/profiles/me/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
		})
		r.Get("/profiles/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"results": []map[string]any{
				{"id": 1, "branch": "cardio", "user": map[string]any{"id": 11, "first_name": "Ivan", "last_name": "Petrov", "email": "ivan@corp.example"}},
				{"id": 2, "branch": "oncology", "user": map[string]any{"id": 12, "first_name": "Olga", "last_name": "Sidorova", "email": "olga@corp.example"}},
				{"id": 3, "branch": "head", "user": map[string]any{"id": 13, "first_name": "Anna", "last_name": "Kim", "email": "anna@corp.example"}},
			}})
		})
	})
	r.Route("/api/courses", func(r chi.Router) {
		r.Get("/courses/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 7, "title": "Phishing basics", "category": "phishing"},
				{"id": 8, "title": "Strong passwords", "category": "password_sec"},
			})
		})
		r.Get("/progress/admin_progress/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "status": "completed", "progress_percent": 100,
					"user":   map[string]any{"id": 11, "firstname": "Ivan", "lastname": "Petrov"},
					"course": map[string]any{"id": 7, "title": "Phishing basics"}},
				{"id": 2, "status": "in_progress", "progress_percent": 40,
					"user":   map[string]any{"id": 12, "firstname": "Olga", "lastname": "Sidorova"},
					"course": map[string]any{"id": 8, "title": "Strong passwords"}},
			})
		})
		r.Post("/progress/subscribe/", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-CSRFToken") != "e2e-token" {
				writeJSON(w, http.StatusForbidden, map[string]any{"detail": "CSRF Failed"})
				return
			}
			var in struct {
				UserID   int `json:"user_id"`
				CourseID int `json:"course_id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&in)
			p.mu.Lock()
			p.subscribed = append(p.subscribed, [2]int{in.UserID, in.CourseID})
			p.mu.Unlock()
			writeJSON(w, http.StatusCreated, map[string]any{"id": 99, "status": "not_started",
				"user":   map[string]any{"id": in.UserID},
				"course": map[string]any{"id": in.CourseID}})
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return p, srv.URL
}

func (p *fakePortal) Subscribed() [][2]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][2]int(nil), p.subscribed...)
}

func (p *fakePortal) Logouts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.logouts
}
