// Package main seeds deterministic fixtures for live end-to-end tests.
//
// This command is test-environment only and is intentionally idempotent.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entactivitytype "github.com/marwaELABIDI/ferme-platform/ent/activitytype"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	entuser "github.com/marwaELABIDI/ferme-platform/ent/user"
	"github.com/marwaELABIDI/ferme-platform/internal/config"
	"github.com/marwaELABIDI/ferme-platform/internal/infrastructure"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

const (
	defaultAdminEmail      = "e2e-admin@localhost"
	defaultAdminPassword   = "e2e-admin-123"
	defaultSupervisorEmail = "e2e-supervisor@localhost"
	defaultClientEmail     = "e2e-client@localhost"
	defaultUserPassword    = "e2e-user-123"

	defaultFieldName     = "e2e-field"
	defaultFieldCapacity = 200.0
	defaultActivityName  = "e2e-activity"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "e2e-seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	if _, err := ensureUser(ctx, client, defaultAdminEmail, "E2E Admin", defaultAdminPassword, entuser.RoleADMIN); err != nil {
		return err
	}
	if _, err := ensureUser(ctx, client, defaultSupervisorEmail, "E2E Supervisor", defaultUserPassword, entuser.RoleSUPERVISOR); err != nil {
		return err
	}
	if _, err := ensureUser(ctx, client, defaultClientEmail, "E2E Client", defaultUserPassword, entuser.RoleCLIENT); err != nil {
		return err
	}
	if err := ensureField(ctx, client); err != nil {
		return err
	}
	if err := ensureActivityType(ctx, client); err != nil {
		return err
	}

	logger.Info("E2E fixtures are ready")
	return nil
}

// ensureUser creates or returns the fixture account with the given email.
func ensureUser(ctx context.Context, client *ent.Client, email, fullName, password string, role entuser.Role) (*ent.User, error) {
	existing, err := client.User.Query().
		Where(entuser.EmailEQ(email)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query user %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", email, err)
	}

	u, err := client.User.Create().
		SetID(fixtureID("user", email)).
		SetEmail(email).
		SetFullName(fullName).
		SetPasswordHash(string(hash)).
		SetRole(role).
		SetEnabled(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", email, err)
	}
	return u, nil
}

// ensureField creates the fixture field with full free capacity.
func ensureField(ctx context.Context, client *ent.Client) error {
	exists, err := client.Field.Query().
		Where(entfield.NameEQ(defaultFieldName)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query field %s: %w", defaultFieldName, err)
	}
	if exists {
		return nil
	}

	_, err = client.Field.Create().
		SetID(fixtureID("field", defaultFieldName)).
		SetName(defaultFieldName).
		SetLocation("e2e").
		SetTotalCapacity(defaultFieldCapacity).
		SetFreeCapacity(defaultFieldCapacity).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create field %s: %w", defaultFieldName, err)
	}
	return nil
}

// ensureActivityType creates the fixture activity type.
func ensureActivityType(ctx context.Context, client *ent.Client) error {
	exists, err := client.ActivityType.Query().
		Where(entactivitytype.NameEQ(defaultActivityName)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query activity type %s: %w", defaultActivityName, err)
	}
	if exists {
		return nil
	}

	_, err = client.ActivityType.Create().
		SetID(fixtureID("activity", defaultActivityName)).
		SetName(defaultActivityName).
		SetDescription("deterministic e2e fixture").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create activity type %s: %w", defaultActivityName, err)
	}
	return nil
}

// fixtureID derives a stable, readable fixture ID. Deterministic IDs
// keep reruns idempotent even when uniqueness checks race.
func fixtureID(kind, name string) string {
	slug := strings.NewReplacer("@", "-", ".", "-", " ", "-").Replace(strings.ToLower(name))
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return fmt.Sprintf("e2e-%s-%s", kind, slug)
}
