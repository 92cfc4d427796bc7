package entity

import "time"

// ToDo is a list of tasks owned by one user and optionally shared with
// collaborators. A to-do with no tasks is valid. Tasks are resolved by query
// on TodoID.
type ToDo struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	CreatedAt     time.Time `json:"createdAt"`
	OwnerID       uint      `json:"ownerId"`
	Owner         User      `gorm:"foreignKey:OwnerID" json:"owner"`
	Collaborators []User    `gorm:"many2many:todo_collaborators;joinForeignKey:TodoID;joinReferences:UserID" json:"collaborators"`
}

func (ToDo) TableName() string {
	return "todos"
}
