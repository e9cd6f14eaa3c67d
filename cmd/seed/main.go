// Package main provides data seeding for the farm platform.
//
// Seeding is idempotent: existing rows are skipped, so the command can
// run on every deploy. A YAML dataset referenced by SEED_DATASET adds
// demo fields, accounts and activity types on top of the default admin.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entuser "github.com/marwaELABIDI/ferme-platform/ent/user"
	"github.com/marwaELABIDI/ferme-platform/internal/config"
	"github.com/marwaELABIDI/ferme-platform/internal/infrastructure"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
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

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before seeding.
	// This command only performs idempotent data bootstrap.

	if err := seedDefaultAdmin(ctx, client); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if path := os.Getenv("SEED_DATASET"); path != "" {
		if err := seedDataset(ctx, client, path); err != nil {
			return fmt.Errorf("seed dataset %s: %w", path, err)
		}
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedDefaultAdmin creates the default admin account (admin@localhost/admin).
func seedDefaultAdmin(ctx context.Context, client *ent.Client) error {
	adminID := "user-default-admin"
	hashBytes, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = client.User.Create().
		SetID(adminID).
		SetEmail("admin@localhost").
		SetFullName("Default Administrator").
		SetPasswordHash(string(hashBytes)).
		SetRole(entuser.RoleADMIN).
		SetEnabled(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Default admin already exists, skipping")
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	logger.Info("Seeded default admin user", zap.String("email", "admin@localhost"))
	return nil
}

// dataset is the YAML demo dataset shape.
type dataset struct {
	Users []struct {
		Email    string `yaml:"email"`
		FullName string `yaml:"full_name"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
	Fields []struct {
		Name          string  `yaml:"name"`
		Location      string  `yaml:"location"`
		TotalCapacity float64 `yaml:"total_capacity"`
		SoilType      string  `yaml:"soil_type"`
	} `yaml:"fields"`
	ActivityTypes []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"activity_types"`
}

// seedDataset loads a YAML demo dataset and inserts it idempotently.
func seedDataset(ctx context.Context, client *ent.Client, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}

	for _, u := range ds.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		_, err = client.User.Create().
			SetID(newID()).
			SetEmail(u.Email).
			SetFullName(u.FullName).
			SetPasswordHash(string(hash)).
			SetRole(entuser.Role(u.Role)).
			SetEnabled(true).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("User already exists, skipping", zap.String("email", u.Email))
				continue
			}
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
		logger.Info("Seeded user", zap.String("email", u.Email), zap.String("role", u.Role))
	}

	for _, f := range ds.Fields {
		builder := client.Field.Create().
			SetID(newID()).
			SetName(f.Name).
			SetTotalCapacity(f.TotalCapacity).
			SetFreeCapacity(f.TotalCapacity)
		if f.Location != "" {
			builder.SetLocation(f.Location)
		}
		if f.SoilType != "" {
			builder.SetSoilType(f.SoilType)
		}
		if _, err := builder.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Field already exists, skipping", zap.String("name", f.Name))
				continue
			}
			return fmt.Errorf("create field %s: %w", f.Name, err)
		}
		logger.Info("Seeded field", zap.String("name", f.Name), zap.Float64("total_capacity", f.TotalCapacity))
	}

	for _, at := range ds.ActivityTypes {
		builder := client.ActivityType.Create().
			SetID(newID()).
			SetName(at.Name)
		if at.Description != "" {
			builder.SetDescription(at.Description)
		}
		if _, err := builder.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Activity type already exists, skipping", zap.String("name", at.Name))
				continue
			}
			return fmt.Errorf("create activity type %s: %w", at.Name, err)
		}
		logger.Info("Seeded activity type", zap.String("name", at.Name))
	}

	return nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
