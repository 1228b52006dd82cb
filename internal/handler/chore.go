package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
	"github.com/dukerupert/chorequest/internal/service"
)

type ChoreHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewChoreHandler(svc *service.Service, logger *slog.Logger) *ChoreHandler {
	return &ChoreHandler{svc: svc, logger: logger}
}

type choreRequest struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Points       int       `json:"points"`
	Icon         string    `json:"icon"`
	DueDate      time.Time `json:"dueDate"`
	AssignedToID int64     `json:"assignedToId"`
}

func (req *choreRequest) toInput() service.NewChore {
	return service.NewChore{
		Name:         req.Name,
		Description:  req.Description,
		Points:       req.Points,
		Icon:         req.Icon,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
	}
}

// List shows the family's chores to parents and only the caller's own to
// children.
func (h *ChoreHandler) List(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	chores, err := h.svc.ChoresFor(id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if chores == nil {
		chores = []model.Chore{}
	}

	writeJSON(w, http.StatusOK, chores)
}

// Create adds a chore (parent only; family forced to the caller's).
func (h *ChoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	var req choreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	chore, err := h.svc.CreateChore(id, req.toInput())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, chore)
}

func (h *ChoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	choreID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req choreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	chore, err := h.svc.UpdateChore(id, choreID, req.toInput())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, chore)
}

func (h *ChoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	choreID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeleteChore(id, choreID); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Complete marks the caller's own chore done and credits its points.
func (h *ChoreHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	choreID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	chore, err := h.svc.CompleteChore(id.FamilyID, id.UserID, choreID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, chore)
}
