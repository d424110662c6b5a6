// utils/firebase.go
package utils

import (
	"context"
	"log"

	"labura/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	FirebaseApp        *firebase.App
	FirebaseAuthClient *auth.Client
)

// FirebaseInit initializes the Firebase App and Auth client. The Auth
// client is the surface used for email action links and display-attribute
// updates on the managed identity records.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	FirebaseApp = app
	FirebaseAuthClient = client
}
