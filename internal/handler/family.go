package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
	"github.com/dukerupert/chorequest/internal/service"
)

type FamilyHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewFamilyHandler(svc *service.Service, logger *slog.Logger) *FamilyHandler {
	return &FamilyHandler{svc: svc, logger: logger}
}

// Create is the unauthenticated signup bootstrap: a new family with a
// generated API key.
func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeFieldErrors(w, []FieldError{{Field: "name", Message: "required"}})
		return
	}

	family, err := h.svc.CreateFamily(req.Name)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, family)
}

// Get returns the caller's own family; any other id is forbidden.
func (h *FamilyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	familyID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	family, err := h.svc.GetFamily(id, familyID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, family)
}

// Members lists the caller's family members.
func (h *FamilyHandler) Members(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	familyID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	members, err := h.svc.FamilyMembers(id, familyID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if members == nil {
		members = []model.User{}
	}

	writeJSON(w, http.StatusOK, members)
}
