package entity

// State is the workflow status of a task ("To do", "In progress", "Done").
// Reference data shared across all tasks, seeded at migration.
type State struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
