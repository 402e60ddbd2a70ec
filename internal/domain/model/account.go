package model

import "time"

// Account represents a registered user of the shop.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	Email        string
	CreatedAt    time.Time
}

// Registration carries the fields submitted on sign up.
type Registration struct {
	Username string
	Password string
	Name     string
	Email    string
}
