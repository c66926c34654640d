package models

import "time"

type Role struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoleClaim struct {
	ID         uint
	RoleID     uint
	ClaimType  string
	ClaimValue string
}

type User struct {
	ID            string
	UserName      string
	Email         string
	PasswordHash  string
	SecurityStamp string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
