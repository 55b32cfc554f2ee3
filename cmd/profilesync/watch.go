package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"profilesync/config"
	"profilesync/internal/delivery"
	"profilesync/internal/delivery/worker"
	"profilesync/internal/delivery/worker/handler"
	"profilesync/internal/domain/entity"
	"profilesync/internal/infra/cache"
	logs "profilesync/internal/infra/log"
	"profilesync/internal/infra/remote"
	"profilesync/internal/usecase"
	"profilesync/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type sessionParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	SyncUC usecase.ProfileSyncUsecase
	UserID uuid.UUID
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	user := fs.String("user", "", "User id (defaults to remote.userId)")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse watch flags")
	}

	app := fx.New(
		injectInfra(*user),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			openSession,
			startServer,
		),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	app.Run()

	return nil
}

func injectInfra(user string) fx.Option {
	return fx.Provide(
		config.New,
		func() io.Writer { return os.Stderr },
		logs.New,
		context.Background,
		func(cfg *config.Config) (uuid.UUID, error) {
			return resolveUserID(user, cfg)
		},
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			remote.NewClient,
			remote.NewProfileStore,
			cache.NewProfileCache,
			newViewListener,
			impl.NewProfileSyncService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// newViewListener logs every view the sync engine publishes.
func newViewListener(logger *slog.Logger) usecase.ViewListener {
	return func(change usecase.ViewChange, view entity.View) {
		logger.Info("profile view",
			slog.String("change", string(change)),
			slog.String("name", view.Profile.Name),
			slog.Int("friends", view.Profile.FriendsCount),
			slog.Any("links_order", view.Profile.SocialLinksOrder),
			slog.Int("habilities", len(view.Profile.Habilities)),
			slog.Int("completion", view.Notification.CompletionPercentage),
			slog.String("message", view.Notification.Message),
		)
	}
}

// openSession loads the profile when the app starts and discards it on stop.
func openSession(params sessionParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := params.SyncUC.Open(ctx, params.UserID)

			return err
		},
		OnStop: func(ctx context.Context) error {
			params.SyncUC.Close()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
