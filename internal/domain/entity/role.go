package entity

// Role names seeded at migration. DefaultRoleID is the role assigned to
// self-registered users.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"

	DefaultRoleID uint = 2
)

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
