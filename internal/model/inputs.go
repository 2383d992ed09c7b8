package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Create inputs carry caller-supplied fields only; keys and server-side
// timestamps are assigned by the services. Patch structs use pointer fields
// so absent fields are never applied.

// CreateUser is the input for registering a user.
type CreateUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch is a partial user update.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// CreateSong is the input for adding a song to the catalog.
type CreateSong struct {
	Title           string         `json:"title"`
	Artist          string         `json:"artist"`
	BPM             int            `json:"bpm"`
	DurationSeconds int            `json:"durationSeconds"`
	BeatmapData     map[string]any `json:"beatmapData"`
	AudioPath       string         `json:"audioPath"`
	CoverPath       *string        `json:"coverPath"`
	Version         *string        `json:"version"`     // default "1.0"
	IsPublished     *bool          `json:"isPublished"` // default false
}

// SongPatch is a partial song update.
type SongPatch struct {
	Title           *string        `json:"title"`
	Artist          *string        `json:"artist"`
	BPM             *int           `json:"bpm"`
	DurationSeconds *int           `json:"durationSeconds"`
	BeatmapData     map[string]any `json:"beatmapData"`
	AudioPath       *string        `json:"audioPath"`
	CoverPath       *string        `json:"coverPath"`
	Version         *string        `json:"version"`
	IsPublished     *bool          `json:"isPublished"`
}

// CreateSession is the input for starting a gameplay session.
type CreateSession struct {
	UserID        uuid.UUID  `json:"userId"`
	SongID        uuid.UUID  `json:"songId"`
	SongVersion   string     `json:"songVersion"`
	ClientVersion string     `json:"clientVersion"`
	EndedAt       *time.Time `json:"endedAt"`
	DeviceInfo    *string    `json:"deviceInfo"`
	IsSynced      *bool      `json:"isSynced"` // default false
}

// SessionPatch is a partial session update. Only the fields a client may
// change after start are exposed.
type SessionPatch struct {
	EndedAt    *time.Time `json:"endedAt"`
	DeviceInfo *string    `json:"deviceInfo"`
	IsSynced   *bool      `json:"isSynced"`
}

// CreatePerformance is the input for submitting a session's scored result.
// The session id comes from the request path, not the body.
type CreatePerformance struct {
	Score      int64          `json:"score"`
	Accuracy   float64        `json:"accuracy"`
	MaxCombo   *int           `json:"maxCombo"`
	Modifiers  map[string]any `json:"modifiers"`
	ReplayHash *string        `json:"replayHash"`
	Signature  *string        `json:"signature"`
}

// CreatePurchase is the input for recording a purchase.
type CreatePurchase struct {
	UserID           uuid.UUID `json:"userId"`
	SongID           uuid.UUID `json:"songId"`
	PriceCents       int64     `json:"priceCents"`
	Currency         *string   `json:"currency"` // default "USD"
	PaymentProcessor *string   `json:"paymentProcessor"`
	PaymentReference *string   `json:"paymentReference"`
	Refunded         *bool     `json:"refunded"` // default false
}

// PurchasePatch is a partial purchase update.
type PurchasePatch struct {
	PriceCents       *int64  `json:"priceCents"`
	Currency         *string `json:"currency"`
	PaymentProcessor *string `json:"paymentProcessor"`
	PaymentReference *string `json:"paymentReference"`
	Refunded         *bool   `json:"refunded"`
}

// CreateAdmin is the input for granting an administrative role.
type CreateAdmin struct {
	UserID uuid.UUID `json:"userId"`
	Role   AdminRole `json:"role"`
}

// AdminPatch changes an admin's role; an absent role leaves the record untouched.
type AdminPatch struct {
	Role *AdminRole `json:"role"`
}

// CreateEntitlement is the input for granting an entitlement directly.
type CreateEntitlement struct {
	UserID uuid.UUID         `json:"userId"`
	SongID uuid.UUID         `json:"songId"`
	Source EntitlementSource `json:"source"`
}
