package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
	"github.com/dukerupert/chorequest/internal/service"
)

// ExternalHandler serves the API-key surface for smart-home hubs and other
// integrations. Callers are scoped to a single family and act on behalf of
// its children.
type ExternalHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewExternalHandler(svc *service.Service, logger *slog.Logger) *ExternalHandler {
	return &ExternalHandler{svc: svc, logger: logger}
}

// Chores lists the key's family chores, optionally filtered to one child
// via ?child_id=.
func (h *ExternalHandler) Chores(w http.ResponseWriter, r *http.Request) {
	scope, _ := auth.FamilyScopeFromContext(r.Context())

	var (
		chores []model.Chore
		err    error
	)
	if raw := r.URL.Query().Get("child_id"); raw != "" {
		childID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid child_id")
			return
		}
		chores, err = h.svc.ChoresForChild(scope.FamilyID, childID)
	} else {
		chores, err = h.svc.FamilyChores(scope.FamilyID)
	}
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if chores == nil {
		chores = []model.Chore{}
	}

	writeJSON(w, http.StatusOK, chores)
}

// Complete marks a chore done on behalf of a child in the key's family.
// The chore must be assigned to that child.
func (h *ExternalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	scope, _ := auth.FamilyScopeFromContext(r.Context())
	choreID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		ChildID int64 `json:"child_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.ChildID == 0 {
		writeFieldErrors(w, []FieldError{{Field: "child_id", Message: "required"}})
		return
	}

	chore, err := h.svc.CompleteChore(scope.FamilyID, req.ChildID, choreID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, chore)
}
