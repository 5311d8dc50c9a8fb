package models

import "time"

// Trip represents a trip whose shared expenses are tracked together.
// Deleting a trip deletes all of its expenses.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string `json:"id"`

	// Name is the display name of the trip (e.g., "Goa 2025").
	Name string `json:"name"`

	// Participants is the list of participant names on this trip.
	// Names are case-sensitive and compared by exact string equality.
	Participants []string `json:"participants"`

	// CreatedAt is when the trip was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the trip was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
