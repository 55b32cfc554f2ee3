package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"profilesync/config"
	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/service"
	"profilesync/internal/infra/cache"
	logs "profilesync/internal/infra/log"
	"profilesync/internal/infra/remote"
	"profilesync/internal/usecase"
	"profilesync/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// action runs one subcommand against an open app.
type action func(ctx context.Context, a *app) error

type command struct {
	// opensSession loads the profile before the action and prints the
	// resulting view after it.
	opensSession bool
	// quiet skips that final print for actions that print on their own.
	quiet bool
	flags func(fs *flag.FlagSet) action
}

var commands = map[string]command{
	"register": {flags: func(fs *flag.FlagSet) action {
		name := fs.String("name", "", "Display name")
		email := fs.String("email", "", "E-mail address")

		return func(ctx context.Context, a *app) error {
			out, err := a.client.Register(ctx, &usecase.RegisterInput{Name: *name, Email: *email})
			if err != nil {
				return err
			}

			return a.print(out)
		}
	}},
	"show": {opensSession: true, quiet: true, flags: func(fs *flag.FlagSet) action {
		return func(ctx context.Context, a *app) error {
			status, err := a.sync.SubscriptionStatus(ctx)
			if err != nil {
				return err
			}

			return a.print(struct {
				entity.View
				Subscription entity.SubscriptionStatus `json:"subscription"`
			}{a.sync.View(), status})
		}
	}},
	"set-name": {opensSession: true, flags: func(fs *flag.FlagSet) action {
		name := fs.String("name", "", "Display name")

		return func(ctx context.Context, a *app) error {
			return a.sync.UpdateName(ctx, *name)
		}
	}},
	"set-about": {opensSession: true, flags: func(fs *flag.FlagSet) action {
		text := fs.String("text", "", "About text")

		return func(ctx context.Context, a *app) error {
			return a.sync.UpdateAbout(ctx, *text)
		}
	}},
	"set-links": {opensSession: true, flags: func(fs *flag.FlagSet) action {
		values := map[entity.LinkField]*string{}
		for _, field := range entity.DefaultLinksOrder {
			values[field] = fs.String(string(field), "", "URL for "+string(field))
		}

		return func(ctx context.Context, a *app) error {
			input, err := linksInput(fs, values)
			if err != nil {
				return err
			}

			return a.sync.UpdateLinks(ctx, input)
		}
	}},
	"set-location": {opensSession: true, flags: func(fs *flag.FlagSet) action {
		location := fs.String("location", "", "Location")
		visibility := fs.String("visibility", "", "PUBLIC, STATE_ONLY or PRIVATE")

		return func(ctx context.Context, a *app) error {
			var vis *entity.Visibility
			if *visibility != "" {
				v, ok := entity.ParseVisibility(*visibility)
				if !ok {
					return errors.Errorf("unknown visibility %q", *visibility)
				}
				vis = &v
			}

			return a.sync.UpdateLocation(ctx, *location, vis)
		}
	}},
	"reorder": {opensSession: true, flags: func(fs *flag.FlagSet) action {
		order := fs.String("order", "", "Comma separated links, e.g. github,linkedin,portfolio,instagram,twitter")

		return func(ctx context.Context, a *app) error {
			return a.sync.UpdateLinksOrder(ctx, parseOrder(*order))
		}
	}},
	"move-link": {opensSession: true, flags: func(fs *flag.FlagSet) action {
		from := fs.Int("from", 0, "Current position (0-based)")
		to := fs.Int("to", 0, "Target position (0-based)")

		return func(ctx context.Context, a *app) error {
			return a.sync.MoveLink(ctx, *from, *to)
		}
	}},
	"add-skill": {opensSession: true, flags: func(fs *flag.FlagSet) action {
		label := fs.String("label", "", "Hability label")

		return func(ctx context.Context, a *app) error {
			return a.sync.AddHability(ctx, *label)
		}
	}},
	"remove-skill": {opensSession: true, flags: func(fs *flag.FlagSet) action {
		label := fs.String("label", "", "Hability label")

		return func(ctx context.Context, a *app) error {
			return a.sync.RemoveHability(ctx, *label)
		}
	}},
}

// app is the wiring of a one-shot command: the HTTP store behind a fresh sync engine.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	client *remote.Client
	sync   usecase.ProfileSyncUsecase
	out    io.Writer
}

func newApp(out io.Writer) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg, Output: os.Stderr})
	if err != nil {
		return nil, err
	}

	client := remote.NewClient(cfg, logger)

	return &app{
		cfg:    cfg,
		logger: logger,
		client: client,
		sync: impl.NewProfileSyncService(impl.ProfileSyncParams{
			Store:  remote.NewProfileStore(client),
			Cache:  cache.NewProfileCache(),
			Logger: logger,
		}),
		out: out,
	}, nil
}

// run opens a session when the command needs one, runs it and prints the
// resulting view.
func (a *app) run(ctx context.Context, user string, cmd command, do action) error {
	if !cmd.opensSession {
		return do(ctx, a)
	}

	userID, err := resolveUserID(user, a.cfg)
	if err != nil {
		return err
	}

	if _, err := a.sync.Open(ctx, userID); err != nil {
		return err
	}
	defer a.sync.Close()

	if err := do(ctx, a); err != nil {
		return err
	}
	if cmd.quiet {
		return nil
	}

	return a.print(a.sync.View())
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

func resolveUserID(flagValue string, cfg *config.Config) (uuid.UUID, error) {
	raw := flagValue
	if raw == "" {
		raw = cfg.Remote.UserID
	}
	if raw == "" {
		return uuid.Nil, errors.New("-user flag or remote.userId is required")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid user id %q", raw)
	}

	return userID, nil
}

// parseOrder splits a comma separated list without validating it; the sync
// engine reports violations.
func parseOrder(raw string) []entity.LinkField {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
	}

	return entity.ParseLinksOrder(parts)
}

// linksInput keeps only the link flags given on the command line, so an
// explicit empty value clears the link.
func linksInput(fs *flag.FlagSet, values map[entity.LinkField]*string) (service.LinksInput, error) {
	var input service.LinksInput
	set := 0

	fs.Visit(func(f *flag.Flag) {
		v, ok := values[entity.LinkField(f.Name)]
		if !ok {
			return
		}
		set++

		switch entity.LinkField(f.Name) {
		case entity.LinkLinkedIn:
			input.LinkedIn = v
		case entity.LinkGitHub:
			input.GitHub = v
		case entity.LinkPortfolio:
			input.Portfolio = v
		case entity.LinkInstagram:
			input.Instagram = v
		case entity.LinkTwitter:
			input.Twitter = v
		}
	})

	if set == 0 {
		return input, errors.New("at least one link flag is required")
	}

	return input, nil
}
