package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/mattgaskey/brewblog-api/configs"
	"github.com/mattgaskey/brewblog-api/pkg/auth"
	"github.com/mattgaskey/brewblog-api/pkg/repository"
	"github.com/mattgaskey/brewblog-api/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".brewblog.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	keys, err := keyProvider(conf, logger)
	if err != nil {
		logger.Error("error loading signing keys", zap.Error(err))

		return err
	}

	authManager := auth.NewManager(conf, keys, logger)
	router := server.New(repo, authManager, logger).Router()

	address := fmt.Sprintf(":%d", conf.Server.Port)

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           configureCORS(router),
	}

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

// keyProvider picks static key material in test mode and remote JWKS
// retrieval otherwise.
func keyProvider(conf *configs.Config, logger *zap.Logger) (auth.KeyProvider, error) {
	if conf.Auth.TestMode {
		logger.Warn("auth test mode enabled, using static key pair", zap.String("file", conf.Auth.TestPublicKeyFile))

		return auth.NewStaticKeyProvider(conf.Auth.TestPublicKeyFile)
	}

	return auth.NewJWKSProvider(conf.Auth.Domain), nil
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"content-length",
			"content-type",
			"date",
			"origin",
			"referer",
			"user-agent",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}
