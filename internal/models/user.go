package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleTrainer = "trainer"
	RoleMember  = "member"
)

// Roles lists every role an account can carry, in the order the
// admin screens present them.
var Roles = []string{RoleAdmin, RoleManager, RoleTrainer, RoleMember}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'member'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
