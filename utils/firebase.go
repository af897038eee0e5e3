// utils/firebase.go
package utils

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"carenest/config"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client.
// When no credentials path is configured, FCM pushes stay disabled and the
// websocket hub is the only push channel.
func FirebaseInit() {
	credsPath := config.AppConfig.FirebaseCredentialsPath
	if credsPath == "" {
		log.Println("firebase: no credentials configured, FCM pushes disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(credsPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}

	FCMClient = client
}
