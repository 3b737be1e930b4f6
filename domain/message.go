// Package domain contains core concepts of the anonymous chat client.
// This file defines the Message shape shared with the backing store.
// Messages are immutable and only ever appended.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sender is the display identity attached to a message at send time.
type Sender struct {
	DisplayName string `json:"displayName"`
	AvatarRef   string `json:"avatarRef,omitempty"`
}

// Message represents an immutable chat entry.
// CreatedAt is the display ordering key; ID disambiguates ties.
type Message struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	Sender        Sender    `json:"sender"`
	SourceAddress string    `json:"sourceAddress"`
	CreatedAt     time.Time `json:"createdAt"`
}
