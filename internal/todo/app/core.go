package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
)

// secretSize is the number of random bytes in a generated pepper or
// signing secret.
const secretSize = 32

// Core is the store and service graph shared by the server and todoctl.
type Core struct {
	Store *sqlite.Store
	Users *service.UserService
	Todos *service.TodoService
}

// OpenCore opens the database, applies migrations and builds the services.
func OpenCore(cfg Config, logger *slog.Logger) (*Core, error) {
	pepper, err := cryptox.LoadOrGenerateSecret(cfg.PepperFile, secretSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	secret, err := signingSecret(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing secret: %w", err)
	}

	var opts []jwtx.CodecOption
	if cfg.TokenTTL > 0 {
		opts = append(opts, jwtx.WithTTL(cfg.TokenTTL))
	}
	codec, err := jwtx.NewCodec([]byte(secret), cfg.Issuer, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build token codec: %w", err)
	}

	db, err := sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	logger.Info("database migrations applied successfully", "file", cfg.DatabaseFile)

	return &Core{
		Store: db,
		Users: &service.UserService{
			Store:  db,
			Hasher: cryptox.NewArgon2Hasher(pepper),
			Tokens: codec,
		},
		Todos: &service.TodoService{Store: db},
	}, nil
}

func (c *Core) Close() error {
	return c.Store.Close()
}

func signingSecret(cfg Config) (string, error) {
	if cfg.JWTSecret != "" {
		return cfg.JWTSecret, nil
	}
	return cryptox.LoadOrGenerateSecret(cfg.SecretFile, secretSize)
}
