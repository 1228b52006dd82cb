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

type UserHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewUserHandler(svc *service.Service, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

type createUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	RoleType    string `json:"roleType"`
	FamilyID    int64  `json:"familyId"`
	AvatarColor string `json:"avatarColor"`
}

func (req *createUserRequest) validate() []FieldError {
	var fields []FieldError
	if strings.TrimSpace(req.Username) == "" {
		fields = append(fields, FieldError{Field: "username", Message: "required"})
	}
	if req.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "required"})
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		fields = append(fields, FieldError{Field: "displayName", Message: "required"})
	}
	if !model.Role(req.RoleType).Valid() {
		fields = append(fields, FieldError{Field: "roleType", Message: "must be parent or child"})
	}
	if req.FamilyID == 0 {
		fields = append(fields, FieldError{Field: "familyId", Message: "required"})
	}
	return fields
}

// Create registers a family member. Unauthenticated: it is used right
// after family creation, before any session exists.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if fields := req.validate(); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	user, err := h.svc.CreateUser(service.NewUser{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		RoleType:    model.Role(req.RoleType),
		FamilyID:    req.FamilyID,
		AvatarColor: req.AvatarColor,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// List returns the members of the caller's family.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	members, err := h.svc.FamilyMembers(id, id.FamilyID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if members == nil {
		members = []model.User{}
	}

	writeJSON(w, http.StatusOK, members)
}
