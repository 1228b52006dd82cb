package store

import (
	"testing"

	"github.com/dukerupert/chorequest/internal/model"
)

func TestRewardCRUD(t *testing.T) {
	db := openTestDB(t)
	family := createTestFamily(t, db)
	rs := NewRewardStore(db)

	reward, err := rs.Create("Ice cream", "One scoop", 30, "cone", family.ID)
	if err != nil {
		t.Fatalf("create reward: %v", err)
	}
	if reward.PointsCost != 30 {
		t.Errorf("cost = %d, want 30", reward.PointsCost)
	}
	if !reward.IsAvailable {
		t.Error("new reward should be available")
	}

	updated, err := rs.Update(reward.ID, "Ice cream", "Two scoops", 45, "cone", false)
	if err != nil {
		t.Fatalf("update reward: %v", err)
	}
	if updated.PointsCost != 45 || updated.IsAvailable {
		t.Errorf("updated = cost %d available %v, want 45/false", updated.PointsCost, updated.IsAvailable)
	}

	if err := rs.Delete(reward.ID); err != nil {
		t.Fatalf("delete reward: %v", err)
	}
	got, err := rs.GetByID(reward.ID)
	if err != nil {
		t.Fatalf("get deleted reward: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted reward")
	}
}

func TestRewardListAvailableByFamily(t *testing.T) {
	db := openTestDB(t)
	family := createTestFamily(t, db)
	other := createTestFamily(t, db)
	rs := NewRewardStore(db)

	visible, err := rs.Create("Visible", "", 10, "", family.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	hidden, err := rs.Create("Hidden", "", 10, "", family.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := rs.Update(hidden.ID, "Hidden", "", 10, "", false); err != nil {
		t.Fatalf("hide reward: %v", err)
	}
	if _, err := rs.Create("Elsewhere", "", 10, "", other.ID); err != nil {
		t.Fatalf("create: %v", err)
	}

	rewards, err := rs.ListAvailableByFamily(family.ID)
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(rewards) != 1 || rewards[0].ID != visible.ID {
		t.Fatalf("list = %+v, want just reward %d", rewards, visible.ID)
	}
}

func TestRedemptionCreateAndApprove(t *testing.T) {
	db := openTestDB(t)
	family := createTestFamily(t, db)
	child := createTestUser(t, db, "child", model.RoleChild, family.ID)
	rs := NewRewardStore(db)
	ds := NewRedemptionStore(db)

	reward, err := rs.Create("Movie", "", 50, "", family.ID)
	if err != nil {
		t.Fatalf("create reward: %v", err)
	}

	redemption, err := ds.Create(child.ID, reward.ID, 50)
	if err != nil {
		t.Fatalf("create redemption: %v", err)
	}
	if redemption.IsApproved {
		t.Error("new redemption should be pending")
	}
	if redemption.PointsSpent != 50 {
		t.Errorf("points spent = %d, want 50", redemption.PointsSpent)
	}

	ok, err := ds.Approve(redemption.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !ok {
		t.Fatal("first approval should win")
	}

	ok, err = ds.Approve(redemption.ID)
	if err != nil {
		t.Fatalf("second approve: %v", err)
	}
	if ok {
		t.Fatal("second approval should lose")
	}

	got, err := ds.GetByID(redemption.ID)
	if err != nil {
		t.Fatalf("get redemption: %v", err)
	}
	if !got.IsApproved {
		t.Error("redemption should be approved")
	}
}

// Redemptions snapshot the cost: deleting the reward leaves them readable.
func TestRedemptionSurvivesRewardDeletion(t *testing.T) {
	db := openTestDB(t)
	family := createTestFamily(t, db)
	child := createTestUser(t, db, "child", model.RoleChild, family.ID)
	rs := NewRewardStore(db)
	ds := NewRedemptionStore(db)

	reward, err := rs.Create("Limited", "", 20, "", family.ID)
	if err != nil {
		t.Fatalf("create reward: %v", err)
	}
	redemption, err := ds.Create(child.ID, reward.ID, 20)
	if err != nil {
		t.Fatalf("create redemption: %v", err)
	}
	if err := rs.Delete(reward.ID); err != nil {
		t.Fatalf("delete reward: %v", err)
	}

	got, err := ds.GetByID(redemption.ID)
	if err != nil {
		t.Fatalf("get redemption: %v", err)
	}
	if got == nil || got.PointsSpent != 20 {
		t.Fatalf("got %+v, want surviving redemption with 20 points spent", got)
	}
}

func TestRedemptionListByFamily(t *testing.T) {
	db := openTestDB(t)
	family := createTestFamily(t, db)
	other := createTestFamily(t, db)
	sam := createTestUser(t, db, "sam", model.RoleChild, family.ID)
	riley := createTestUser(t, db, "riley", model.RoleChild, family.ID)
	outsider := createTestUser(t, db, "outsider", model.RoleChild, other.ID)
	rs := NewRewardStore(db)
	ds := NewRedemptionStore(db)

	reward, err := rs.Create("Treat", "", 10, "", family.ID)
	if err != nil {
		t.Fatalf("create reward: %v", err)
	}
	foreign, err := rs.Create("Foreign", "", 10, "", other.ID)
	if err != nil {
		t.Fatalf("create reward: %v", err)
	}

	if _, err := ds.Create(sam.ID, reward.ID, 10); err != nil {
		t.Fatalf("create redemption: %v", err)
	}
	if _, err := ds.Create(riley.ID, reward.ID, 10); err != nil {
		t.Fatalf("create redemption: %v", err)
	}
	if _, err := ds.Create(outsider.ID, foreign.ID, 10); err != nil {
		t.Fatalf("create redemption: %v", err)
	}

	redemptions, err := ds.ListByFamily(family.ID)
	if err != nil {
		t.Fatalf("list by family: %v", err)
	}
	if len(redemptions) != 2 {
		t.Fatalf("got %d redemptions, want 2", len(redemptions))
	}

	byUser, err := ds.ListByUser(sam.ID)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 1 {
		t.Fatalf("got %d redemptions for sam, want 1", len(byUser))
	}
}
