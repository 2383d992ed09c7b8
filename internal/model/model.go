// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// EntitlementSource records how a user obtained the right to play a song.
type EntitlementSource string

const (
	SourcePurchase EntitlementSource = "purchase"
	SourcePromo    EntitlementSource = "promo"
	SourceAdmin    EntitlementSource = "admin"
	SourceDefault  EntitlementSource = "default"
)

// Valid reports whether s is a known entitlement source.
func (s EntitlementSource) Valid() bool {
	switch s {
	case SourcePurchase, SourcePromo, SourceAdmin, SourceDefault:
		return true
	}
	return false
}

// AdminRole is the privilege level of an admin record.
type AdminRole string

const (
	RoleEditor     AdminRole = "editor"
	RolePublisher  AdminRole = "publisher"
	RoleSuperadmin AdminRole = "superadmin"
)

// Valid reports whether r is a known admin role.
func (r AdminRole) Valid() bool {
	switch r {
	case RoleEditor, RolePublisher, RoleSuperadmin:
		return true
	}
	return false
}

// User is a registered player account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // unique, case-sensitive
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Song is a playable track with its beatmap and asset paths.
type Song struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Artist          string         `json:"artist"`
	BPM             int            `json:"bpm"`
	DurationSeconds int            `json:"durationSeconds"`
	BeatmapData     map[string]any `json:"beatmapData"` // opaque blob, never interpreted here
	AudioPath       string         `json:"audioPath"`
	CoverPath       *string        `json:"coverPath,omitempty"`
	Version         string         `json:"version"`
	IsPublished     bool           `json:"isPublished"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// Entitlement grants a user the right to play a song. At most one exists
// per (userId, songId) pair.
type Entitlement struct {
	UserID    uuid.UUID         `json:"userId"`
	SongID    uuid.UUID         `json:"songId"`
	Source    EntitlementSource `json:"source"`
	GrantedAt time.Time         `json:"grantedAt"`
}

// EntitlementKey builds the composite table key for a (user, song) pair.
func EntitlementKey(userID, songID uuid.UUID) string {
	return userID.String() + "/" + songID.String()
}

// GameplaySession is one playthrough of a song by a user.
type GameplaySession struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	SongID        uuid.UUID  `json:"songId"`
	SongVersion   string     `json:"songVersion"`
	ClientVersion string     `json:"clientVersion"`
	StartedAt     time.Time  `json:"startedAt"`
	EndedAt       *time.Time `json:"endedAt,omitempty"`
	DeviceInfo    *string    `json:"deviceInfo,omitempty"`
	IsSynced      bool       `json:"isSynced"`
}

// SessionView is a GameplaySession with its performance metric attached at
// read time. The relation is a projection, not stored state.
type SessionView struct {
	GameplaySession
	Performance *PerformanceMetric `json:"performance,omitempty"`
}

// PerformanceMetric is the scored result of a session. Keyed by session id,
// immutable once submitted.
type PerformanceMetric struct {
	SessionID   uuid.UUID      `json:"sessionId"`
	Score       int64          `json:"score"`
	Accuracy    float64        `json:"accuracy"`
	MaxCombo    *int           `json:"maxCombo,omitempty"`
	Modifiers   map[string]any `json:"modifiers,omitempty"`
	SubmittedAt time.Time      `json:"submittedAt"`
	ReplayHash  *string        `json:"replayHash,omitempty"`
	Signature   *string        `json:"signature,omitempty"`
}

// Purchase records a paid acquisition of a song by a user.
type Purchase struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	SongID           uuid.UUID `json:"songId"`
	PriceCents       int64     `json:"priceCents"`
	Currency         string    `json:"currency"`
	PaymentProcessor *string   `json:"paymentProcessor,omitempty"`
	PaymentReference *string   `json:"paymentReference,omitempty"`
	PurchasedAt      time.Time `json:"purchasedAt"`
	Refunded         bool      `json:"refunded"`
}

// Admin assigns an administrative role to a user. A user holds at most one
// admin record; the record has its own id separate from the user's.
type Admin struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Role      AdminRole `json:"role"`
	GrantedAt time.Time `json:"grantedAt"`
}
