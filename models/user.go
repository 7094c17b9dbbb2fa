package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uk_email" json:"-"`
	Bio       string    `gorm:"column:bio;type:varchar(500);not null;default:''" json:"bio"`
	AvatarURL string    `gorm:"column:avatar_url;type:varchar(500);not null;default:''" json:"avatar_url"`
	Role      string    `gorm:"column:role;type:varchar(16);not null;default:'USER'" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
