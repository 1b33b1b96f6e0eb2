package models

import "time"

// User is a parent account. Children ride; parents drive.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Child belongs to a parent account and gets assigned to trip slots.
type Child struct {
	ID       string `bson:"id" json:"id"`
	ParentID string `bson:"parentId" json:"parentId"`
	Name     string `bson:"name" json:"name"`
}

// ReminderPayload is the asynq payload for an upcoming-trip reminder.
type ReminderPayload struct {
	SlotID   string `json:"slotId"`
	GroupID  string `json:"groupId"`
	FireDate string `json:"fireDate"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}
