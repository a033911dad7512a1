package model

import "time"

type User struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"column:password_hash;not null"`
	FullName     *string `gorm:"type:varchar(255)"`
	Phone        *string `gorm:"type:varchar(30)"`
	Address      *string `gorm:"type:varchar(500)"`
	RoleID       int64   `gorm:"not null;index"`
	Role         Role    `gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time
}
