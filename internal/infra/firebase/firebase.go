// Package firebase creates the Firebase clients shared by the process.
// The app is initialised once at startup and injected everywhere else.
package firebase

import (
	"context"
	"log/slog"

	"displaygram/config"
	"displaygram/internal/domain/constants"
	"displaygram/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Clients holds the Firebase service clients. A client is nil when no
// configured component needs it.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
}

// Params defines the required parameters
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New initialises the Firebase app and the clients the configuration asks for.
func New(params Params) (*Clients, error) {
	cfg := params.Config
	needFirestore := cfg.Persistence.Driver == constants.PersistenceDriverFirestore
	needAuth := cfg.Identity.Provider == constants.IdentityProviderFirebase
	if !needFirestore && !needAuth {
		params.Logger.Info("Firebase not required by configuration, skipping initialisation")

		return &Clients{}, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	clients := &Clients{}
	if needFirestore {
		clients.Firestore, err = app.Firestore(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get Firestore client")
		}
	}
	if needAuth {
		clients.Auth, err = app.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get Auth client")
		}
	}

	params.Logger.Info("Firebase initialised",
		slog.String("project_id", cfg.Firebase.ProjectID),
		slog.Bool("firestore", needFirestore),
		slog.Bool("auth", needAuth),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if clients.Firestore == nil {
				return nil
			}

			return clients.Firestore.Close()
		},
	})

	return clients, nil
}
