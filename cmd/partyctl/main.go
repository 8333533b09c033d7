// partyctl — операторская утилита party-one: диагностика профилей,
// чистка «сиротских» учёток, загрузка каталога членств и прямой доступ
// к документному хранилищу.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pribylovaa/party-one/internal/app"
	"github.com/pribylovaa/party-one/internal/config"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/service"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// operator — операции сервисного слоя, доступные из утилиты.
type operator interface {
	ProfileStatus(ctx context.Context, uid uuid.UUID) (*service.ProfileStatus, error)
	ClearProfile(ctx context.Context, uid uuid.UUID) error
	PurgeOrphans(ctx context.Context, grace time.Duration, dryRun bool) ([]models.User, error)
}

// documentStore — прямой доступ к документному хранилищу.
type documentStore interface {
	GetDocument(ctx context.Context, coll, id string, out any) error
	SetDocument(ctx context.Context, coll, id string, doc any, merge bool) error
	ListCollection(ctx context.Context, coll, sortKey string, out any) error
	PutMembership(ctx context.Context, ms models.Membership, order int) error
}

// env — состояние, общее для всех команд. В тестах ops и docs
// подставляются заранее, и подключение к хранилищам пропускается.
type env struct {
	configPath string
	timeout    time.Duration

	log   *slog.Logger
	ops   operator
	docs  documentStore
	close func()
}

func main() {
	if err := newRootCmd(&env{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(e *env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "partyctl",
		Short: "party-one operator tool",
		Long: `partyctl works directly against party-one storage.

It uses the same configuration file as the party-one service
(--config or CONFIG_PATH).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.open(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.close != nil {
				e.close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&e.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().DurationVar(&e.timeout, "timeout", 30*time.Second, "per-command deadline")

	rootCmd.AddCommand(
		newProfileCmd(e),
		newUsersCmd(e),
		newMembershipsCmd(e),
		newDocsCmd(e),
	)

	return rootCmd
}

func (e *env) open(ctx context.Context) error {
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	if e.ops != nil && e.docs != nil {
		return nil
	}

	path := e.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	e.log = setupLogger(cfg.Env)

	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	a, err := app.Open(openCtx, cfg, e.log)
	if err != nil {
		return err
	}

	e.ops = a.Service(nil)
	e.docs = a.Mongo
	e.close = func() { a.Close(context.Background()) }

	return nil
}

// context возвращает контекст команды с дедлайном --timeout.
func (e *env) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, e.timeout)
}

// Логи утилиты идут в stderr, чтобы не мешать выводу команд.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func parseUserID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", s, err)
	}

	return id, nil
}
