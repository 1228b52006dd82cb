package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
	"github.com/dukerupert/chorequest/internal/service"
)

type AchievementHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewAchievementHandler(svc *service.Service, logger *slog.Logger) *AchievementHandler {
	return &AchievementHandler{svc: svc, logger: logger}
}

// List returns the global badge catalog.
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.svc.Achievements()
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if achievements == nil {
		achievements = []model.Achievement{}
	}

	writeJSON(w, http.StatusOK, achievements)
}

// ListForUser returns a family member's earned badges, oldest first.
func (h *AchievementHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	userID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	earned, err := h.svc.UserAchievements(id, userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if earned == nil {
		earned = []model.EarnedAchievement{}
	}

	writeJSON(w, http.StatusOK, earned)
}

// Award grants a badge to a family member manually (parent only).
func (h *AchievementHandler) Award(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	userID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		AchievementID int64 `json:"achievementId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.AchievementID == 0 {
		writeFieldErrors(w, []FieldError{{Field: "achievementId", Message: "required"}})
		return
	}

	ua, err := h.svc.AwardAchievement(id, userID, req.AchievementID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, ua)
}
