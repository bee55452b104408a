package utils

import (
	"context"
	"log"

	"inkwell/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMClient is nil when no Firebase credentials are configured; push
// notifications are then skipped and only the stored records remain.
var FCMClient *messaging.Client

// FirebaseInit wires up the FCM messaging client if credentials are present.
func FirebaseInit() {
	credsFile := config.AppConfig.FirebaseCredentialsFile
	if credsFile == "" {
		GetLogger().Warn("firebase credentials not configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credsFile))
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
	FCMClient = client
}
