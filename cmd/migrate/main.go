package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/bloomandblossom/florist-backend/pkg/config"
	"github.com/bloomandblossom/florist-backend/pkg/db"
	"github.com/bloomandblossom/florist-backend/pkg/db/models"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
	"github.com/bloomandblossom/florist-backend/pkg/migrate"
	"github.com/bloomandblossom/florist-backend/pkg/security"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	// Flags
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|create|validate|seed")
	dir := flag.String("dir", migrate.DefaultDir, "goose migrations directory")

	// Command-specific flags
	name := flag.String("name", "", "migration name (for create)")
	version := flag.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	adminUser := flag.String("admin-user", "admin", "admin username (for seed)")

	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(context.Background(), map[string]any{
		"env": cfg.App.Env,
		"cmd": *cmd,
		"dir": *dir,
	})

	// Commands that do NOT require DB
	switch *cmd {
	case "create":
		if *name == "" {
			fmt.Fprintln(os.Stderr, "missing -name for create")
			os.Exit(1)
		}
		logg.Info(ctx, "migrate ready")
		path, err := migrate.CreateSQLMigration(*dir, *name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create migration: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("created migration:", path)
		return

	case "validate":
		logg.Info(ctx, "migrate ready")
		if err := migrate.ValidateDir(*dir); err != nil {
			fmt.Fprintf(os.Stderr, "migration validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migration validation passed")
		return
	}

	// Everything else needs DB
	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	requireResource(ctx, logg, "sql database", err)

	logg.Info(ctx, "migrate ready")

	switch *cmd {
	case "up":
		if err := migrate.Run(ctx, sqlDB, *dir, "up"); err != nil {
			fmt.Fprintf(os.Stderr, "goose up failed: %v\n", err)
			os.Exit(1)
		}

	case "down":
		if err := migrate.Run(ctx, sqlDB, *dir, "down"); err != nil {
			fmt.Fprintf(os.Stderr, "goose down failed: %v\n", err)
			os.Exit(1)
		}

	case "status":
		if err := migrate.Run(ctx, sqlDB, *dir, "status"); err != nil {
			fmt.Fprintf(os.Stderr, "goose status failed: %v\n", err)
			os.Exit(1)
		}

	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "missing -version for version command")
			os.Exit(1)
		}
		if err := migrate.MigrateToVersion(ctx, sqlDB, *dir, *version); err != nil {
			fmt.Fprintf(os.Stderr, "goose version migrate failed: %v\n", err)
			os.Exit(1)
		}

	case "seed":
		if err := seed(ctx, logg, cfg, dbClient, *adminUser); err != nil {
			fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
}

// seed creates the initial admin user, the default category set, and the
// store profile singleton. It is idempotent: existing rows are left alone.
// A freshly generated admin password is printed to stdout exactly once.
func seed(ctx context.Context, logg *logger.Logger, cfg *config.Config, dbClient *db.Client, adminUser string) error {
	gdb := dbClient.DB().WithContext(ctx)

	var userCount int64
	if err := gdb.Model(&models.User{}).Where("username = ?", adminUser).Count(&userCount).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if userCount == 0 {
		password, err := security.GenerateTempPassword(16)
		if err != nil {
			return fmt.Errorf("generate admin password: %w", err)
		}
		hash, err := security.HashPassword(password, cfg.Password)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		user := models.User{
			Username:     adminUser,
			PasswordHash: hash,
			Role:         enums.RoleAdmin,
		}
		if err := gdb.Create(&user).Error; err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}
		fmt.Printf("created admin user %q with password: %s\n", adminUser, password)
		logg.Info(ctx, "seeded admin user")
	}

	defaults := []models.Category{
		{Name: "Buketler", DisplayOrder: 1, IsActive: true},
		{Name: "Saksı Bitkileri", DisplayOrder: 2, IsActive: true},
		{Name: "Orkideler", DisplayOrder: 3, IsActive: true},
		{Name: "Hediye Sepetleri", DisplayOrder: 4, IsActive: true},
	}
	for i := range defaults {
		var count int64
		if err := gdb.Model(&models.Category{}).Where("name = ?", defaults[i].Name).Count(&count).Error; err != nil {
			return fmt.Errorf("check category %q: %w", defaults[i].Name, err)
		}
		if count > 0 {
			continue
		}
		if err := gdb.Create(&defaults[i]).Error; err != nil {
			return fmt.Errorf("create category %q: %w", defaults[i].Name, err)
		}
	}

	var profileCount int64
	if err := gdb.Model(&models.StoreProfile{}).Count(&profileCount).Error; err != nil {
		return fmt.Errorf("check store profile: %w", err)
	}
	if profileCount == 0 {
		profile := models.StoreProfile{StoreName: "Bloom & Blossom"}
		if err := gdb.Create(&profile).Error; err != nil {
			return fmt.Errorf("create store profile: %w", err)
		}
		logg.Info(ctx, "seeded store profile")
	}

	logg.Info(ctx, "seed complete")
	return nil
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
