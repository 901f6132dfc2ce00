package notify

import (
	"context"
	"errors"
)

// ErrUnregistered reports that a device token is no longer valid and should
// be dropped from the registry.
var ErrUnregistered = errors.New("device token is not registered")

// Message is one push notification. Title and Body are delivered both as a
// notification payload and as data fields, so clients that only read
// data.title/data.body (the background service worker) still display it.
type Message struct {
	Title string
	Body  string
}

// MessageSender delivers one message to one device token.
type MessageSender interface {
	Send(ctx context.Context, token string, msg Message) error
}
