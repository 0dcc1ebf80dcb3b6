package cmd

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mattgaskey/brewblog-api/configs"
	"github.com/mattgaskey/brewblog-api/pkg/repository"
)

// The canonical style list. Styles are seeded once at deployment and have no
// API write surface.
var seedStyles = []string{
	"Pale Ale",
	"IPA",
	"Wheat",
	"Amber",
	"Red",
	"Porter",
	"Stout",
	"Sour",
	"Pilsner",
}

type SeedCmd struct {
	ConfigFile string `default:".brewblog.toml" help:"Path to config file" short:"c"`
}

func (s *SeedCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	ctx := context.Background()

	count, err := repo.CountStyles(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		logger.Info("styles already seeded", zap.Int64("count", count))

		return nil
	}

	var errs error

	for _, name := range seedStyles {
		if _, err := repo.AddStyle(ctx, name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		logger.Error("error seeding styles", zap.Error(errs))

		return errs
	}

	logger.Info("seeded styles", zap.Int("count", len(seedStyles)))

	return nil
}
