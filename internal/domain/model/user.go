package model

import "time"

type Role string

const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'normal'" json:"role"`
	TokenVersion int       `gorm:"not null;default:0" json:"token_version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
