// Package service implements the domain state transitions: completing
// chores, redeeming and approving rewards, awarding achievements, and
// family signup. It composes store reads/writes, enforces business
// invariants, and raises typed errors for the HTTP layer to translate.
package service

import (
	"log/slog"

	"github.com/dukerupert/chorequest/internal/store"
)

// Notifier receives family-scoped domain events for live sync. Delivery
// is best-effort and must never affect the outcome of an operation.
type Notifier interface {
	Notify(familyID int64, entity, action string, id int64)
}

type Service struct {
	families     *store.FamilyStore
	users        *store.UserStore
	chores       *store.ChoreStore
	rewards      *store.RewardStore
	redemptions  *store.RedemptionStore
	achievements *store.AchievementStore
	notifier     Notifier
	logger       *slog.Logger
}

func New(
	families *store.FamilyStore,
	users *store.UserStore,
	chores *store.ChoreStore,
	rewards *store.RewardStore,
	redemptions *store.RedemptionStore,
	achievements *store.AchievementStore,
	notifier Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		families:     families,
		users:        users,
		chores:       chores,
		rewards:      rewards,
		redemptions:  redemptions,
		achievements: achievements,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *Service) notify(familyID int64, entity, action string, id int64) {
	if s.notifier != nil {
		s.notifier.Notify(familyID, entity, action, id)
	}
}
