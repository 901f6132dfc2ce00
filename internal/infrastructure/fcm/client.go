// Package fcm delivers invoice notifications through Firebase Cloud
// Messaging. The server sends; the browser CRM registers its device tokens
// through the push endpoint and renders the notification itself.
package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/shineinfosolutions/crm-api/internal/application/notify"
)

// Client implements notify.MessageSender on top of the Firebase Admin SDK.
type Client struct {
	messaging *messaging.Client
}

// NewClient initializes the Firebase app from a service-account credentials
// file and returns a messaging client. projectID may be empty when the
// credentials file already names the project.
func NewClient(ctx context.Context, credentialsFile, projectID string) (*Client, error) {
	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("fcm: initialize app: %w", err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("fcm: messaging client: %w", err)
	}

	return &Client{messaging: mc}, nil
}

// Send pushes one message to one device token. A token Firebase reports as
// no longer registered maps to notify.ErrUnregistered so the caller can
// prune it.
func (c *Client) Send(ctx context.Context, token string, msg notify.Message) error {
	_, err := c.messaging.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		// Data mirrors the notification payload so the service worker can
		// render it when the page is in the background.
		Data: map[string]string{
			"title": msg.Title,
			"body":  msg.Body,
		},
	})
	if err != nil {
		if messaging.IsUnregistered(err) {
			return notify.ErrUnregistered
		}
		return fmt.Errorf("fcm: send to token: %w", err)
	}
	return nil
}
