package entity

// User owns to-dos and may collaborate on others. The email doubles as the
// login username. Owned to-dos are resolved by query, not by a back-pointer
// collection.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	RoleID    uint   `json:"-"`
	Role      Role   `json:"role"`
}
