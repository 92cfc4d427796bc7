package entity

// Task belongs to one to-do. The state is nullable until assigned.
type Task struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"not null" json:"name"`
	Priority Priority `gorm:"type:varchar(16);not null" json:"priority"`
	TodoID   uint     `json:"todoId"`
	StateID  *uint    `json:"-"`
	State    *State   `json:"state,omitempty"`
}
