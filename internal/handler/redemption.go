package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
	"github.com/dukerupert/chorequest/internal/service"
)

type RedemptionHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewRedemptionHandler(svc *service.Service, logger *slog.Logger) *RedemptionHandler {
	return &RedemptionHandler{svc: svc, logger: logger}
}

// Create redeems a reward for the session user. The user id is always the
// caller's own; points are debited immediately.
func (h *RedemptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	var req struct {
		RewardID int64 `json:"rewardId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.RewardID == 0 {
		writeFieldErrors(w, []FieldError{{Field: "rewardId", Message: "required"}})
		return
	}

	redemption, err := h.svc.RedeemReward(id, req.RewardID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, redemption)
}

func (h *RedemptionHandler) List(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	redemptions, err := h.svc.RedemptionsFor(id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	if redemptions == nil {
		redemptions = []model.Redemption{}
	}

	writeJSON(w, http.StatusOK, redemptions)
}

// Approve marks a family member's redemption approved (parent only).
func (h *RedemptionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	redemptionID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	redemption, err := h.svc.ApproveRedemption(id, redemptionID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, redemption)
}
