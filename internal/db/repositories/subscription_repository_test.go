package repositories

import (
	"context"
	"testing"

	"planescheduler/flightline/internal/constants"
	models "planescheduler/flightline/internal/models/gorm"
)

func TestSubscribe_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db)

	aircraft := &models.Aircraft{TailNumber: "N12345", Make: "Cessna", Model: "172S"}
	user := &models.User{Username: "watcher", Email: "watcher@example.com", Password: "x", Privileges: constants.PrivilegeUser}
	if err := db.Create(aircraft).Error; err != nil {
		t.Fatalf("Failed to seed aircraft: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := repo.Subscribe(context.Background(), user.ID, aircraft.ID); err != nil {
			t.Fatalf("Subscribe attempt %d failed: %v", i+1, err)
		}
	}

	ids, err := repo.ListAircraftIDs(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListAircraftIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != aircraft.ID {
		t.Errorf("Expected single subscription to %d, got %v", aircraft.ID, ids)
	}
}

func TestSubscriberEmails_JoinsUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db)

	aircraft := &models.Aircraft{TailNumber: "N12345", Make: "Cessna", Model: "172S"}
	if err := db.Create(aircraft).Error; err != nil {
		t.Fatalf("Failed to seed aircraft: %v", err)
	}

	subscribed := &models.User{Username: "watcher", Email: "watcher@example.com", Password: "x", Privileges: constants.PrivilegeUser}
	bystander := &models.User{Username: "other", Email: "other@example.com", Password: "x", Privileges: constants.PrivilegeUser}
	for _, u := range []*models.User{subscribed, bystander} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("Failed to seed user: %v", err)
		}
	}

	if err := repo.Subscribe(context.Background(), subscribed.ID, aircraft.ID); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	emails, err := repo.SubscriberEmails(context.Background(), aircraft.ID)
	if err != nil {
		t.Fatalf("SubscriberEmails failed: %v", err)
	}
	if len(emails) != 1 || emails[0] != "watcher@example.com" {
		t.Errorf("Expected only the subscriber's email, got %v", emails)
	}
}

func TestUnsubscribe(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db)

	aircraft := &models.Aircraft{TailNumber: "N12345", Make: "Cessna", Model: "172S"}
	user := &models.User{Username: "watcher", Email: "watcher@example.com", Password: "x", Privileges: constants.PrivilegeUser}
	if err := db.Create(aircraft).Error; err != nil {
		t.Fatalf("Failed to seed aircraft: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	if err := repo.Subscribe(context.Background(), user.ID, aircraft.ID); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if err := repo.Unsubscribe(context.Background(), user.ID, aircraft.ID); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}

	ids, err := repo.ListAircraftIDs(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListAircraftIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Expected no subscriptions, got %v", ids)
	}
}
