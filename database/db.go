package database

import (
	"context"
	"fmt"
	"log"

	"jeevanrakshak/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

var (
	// FirebaseApp is the initialized Firebase application.
	FirebaseApp *firebase.App
	// RealtimeDB is the global realtime database client.
	RealtimeDB *db.Client
	// AuthClient verifies Firebase ID tokens.
	AuthClient *auth.Client
)

// InitDB initializes the Firebase app along with its realtime database and auth clients.
func InitDB() {
	ctx := context.Background()
	app, err := NewFirebaseApp(ctx, config.AppConfig)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting realtime database client: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting auth client: %v", err)
	}

	FirebaseApp = app
	RealtimeDB = dbClient
	AuthClient = authClient
	log.Println("Connected to Firebase successfully!")
}

// NewFirebaseApp builds a Firebase app for the configured project.
func NewFirebaseApp(ctx context.Context, cfg config.Config) (*firebase.App, error) {
	if cfg.FirebaseDatabaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL is not set")
	}
	fbConfig := &firebase.Config{
		DatabaseURL:   cfg.FirebaseDatabaseURL,
		StorageBucket: cfg.FirebaseBucket,
	}

	var opts []option.ClientOption
	if cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}
	return firebase.NewApp(ctx, fbConfig, opts...)
}

// Ping reads a small node to confirm the realtime database answers.
func Ping(ctx context.Context) error {
	if RealtimeDB == nil {
		return fmt.Errorf("realtime database is not initialized")
	}
	var v interface{}
	return RealtimeDB.NewRef("health").Get(ctx, &v)
}
