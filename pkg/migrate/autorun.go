package migrate

import (
	"context"
	"fmt"

	"github.com/JonathanI21/Courses-solidaires-2/pkg/config"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/db"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/logger"
	"github.com/JonathanI21/Courses-solidaires-2/pkg/seed"
)

// MaybeRunDev executes migrations automatically when the app is running in
// dev mode and the feature flag is enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	dialect, err := Dialect(cfg.DB.Driver)
	if err != nil {
		return err
	}
	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	meta := map[string]any{"env": cfg.App.Env, "dir": DefaultDir, "dialect": dialect}
	ctx = logg.WithFields(ctx, meta)
	logg.Info(ctx, "running Goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, dialect, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "Goose migrations completed")
	return nil
}

// MaybeSeedDev loads the reference catalog when the app is running in dev
// mode and the flag is enabled. Seeding is idempotent, so repeated restarts
// are safe.
func MaybeSeedDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoSeed {
		return nil
	}

	loader, err := seed.NewLoader(client.DB())
	if err != nil {
		return err
	}

	logg.Info(ctx, "loading reference catalog (dev auto-seed)")
	if err := loader.Apply(ctx); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	logg.Info(ctx, "reference catalog loaded")
	return nil
}
