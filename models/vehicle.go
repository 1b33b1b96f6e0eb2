package models

import "time"

// Vehicle is a family car volunteered for trips. Capacity is the number of
// child seats usable by default; a per-trip seat override can shrink or
// grow the usable count within policy bounds.
type Vehicle struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Capacity  int       `bson:"capacity" json:"capacity"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
