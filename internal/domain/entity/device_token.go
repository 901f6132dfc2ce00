package entity

import "time"

// DeviceToken is a registered FCM device token. Registration is idempotent
// on the token value; LastSeenAt tracks the latest re-registration.
type DeviceToken struct {
	Token      string
	CreatedAt  time.Time
	LastSeenAt time.Time
}
