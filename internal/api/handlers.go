// Package api exposes HTTP handlers for the signup service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/signup/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.activityScoped)
	mux.HandleFunc("/healthz", healthz)
}

// root redirects the bare path to the static frontend.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "unknown path")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	h.listActivities(w, r)
}

// activityScoped dispatches the two roster mutations:
//
//	POST   /activities/{name}/signup?email=...
//	DELETE /activities/{name}/participants/{email}
//
// ServeMux decodes percent-escapes before matching, so activity names with
// spaces arrive intact.
func (h *Handler) activityScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")

	if name, ok := strings.CutSuffix(rest, "/signup"); ok {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.signup(w, r, name)
		return
	}

	if name, email, ok := splitParticipantPath(rest); ok {
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.unregister(w, r, name, email)
		return
	}

	writeError(w, http.StatusNotFound, "not_found", "unknown path")
}

// splitParticipantPath parses "{name}/participants/{email}". The email is the
// final segment; the activity name may itself contain spaces but not slashes.
func splitParticipantPath(rest string) (name, email string, ok bool) {
	idx := strings.LastIndex(rest, "/participants/")
	if idx <= 0 {
		return "", "", false
	}
	name = rest[:idx]
	email = rest[idx+len("/participants/"):]
	if email == "" || strings.Contains(email, "/") {
		return "", "", false
	}
	return name, email, true
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	out := make(map[string]ActivityView, len(catalog))
	for name, activity := range catalog {
		out[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	if err := h.service.Signup(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			writeError(w, http.StatusBadRequest, "already_registered", "Student already signed up for this activity")
		case errors.Is(err, domain.ErrActivityFull):
			writeError(w, http.StatusBadRequest, "activity_full", "Activity is full")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name, email string) {
	if err := h.service.Unregister(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrParticipantNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Participant not found in this activity")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// ActivityView is the wire representation of a catalog entry.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse carries the confirmation text for a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
	}
}
