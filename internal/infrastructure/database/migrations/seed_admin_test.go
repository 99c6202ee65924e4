package migrations_test

import (
	"testing"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/database/migrations"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/security"
	"github.com/PavaniTiago/survey-builder-api/internal/testutil"
)

func TestSeedAdminIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)

	created, err := migrations.SeedAdmin(db, "admin", "admin@example.com", "changeme")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !created {
		t.Fatal("expected the admin to be created")
	}

	created, err = migrations.SeedAdmin(db, "admin", "admin@example.com", "other")
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if created {
		t.Error("second seed should not insert a row")
	}

	if n := testutil.Count(t, db, &entities.User{}, ""); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}

	var admin entities.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("seeded user should be an admin")
	}
	if !security.CheckPassword(admin.PasswordHash, "changeme") {
		t.Error("first password should be kept")
	}
}
