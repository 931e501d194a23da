// Package models defines server-side data models persisted in the database.
package models

import "time"

type User struct {
	ID             string
	Username       string
	Email          string
	FullName       string
	HashedPassword string
	IsActive       bool
	IsSuperuser    bool
	CreatedAt      time.Time
}
