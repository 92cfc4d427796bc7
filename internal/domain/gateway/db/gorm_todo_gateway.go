package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todolist-api/internal/domain/entity"
)

type GormToDoGateway struct {
	DB *gorm.DB
}

var _ ToDoGateway = (*GormToDoGateway)(nil)

func NewGormToDoGateway(db *gorm.DB) *GormToDoGateway {
	return &GormToDoGateway{DB: db}
}

func (gateway *GormToDoGateway) FindAll() ([]entity.ToDo, error) {
	var todos []entity.ToDo
	err := gateway.DB.
		Preload("Owner.Role").
		Preload("Collaborators.Role").
		Order("id").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormToDoGateway) FindByID(id uint) (*entity.ToDo, error) {
	var todo entity.ToDo
	err := gateway.DB.
		Preload("Owner.Role").
		Preload("Collaborators.Role").
		First(&todo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// FindByUserID returns to-dos the user owns or collaborates on, ordered by id.
func (gateway *GormToDoGateway) FindByUserID(userID uint) ([]entity.ToDo, error) {
	var todos []entity.ToDo
	err := gateway.DB.
		Preload("Owner.Role").
		Preload("Collaborators.Role").
		Distinct("todos.*").
		Joins("LEFT JOIN todo_collaborators ON todo_collaborators.todo_id = todos.id").
		Where("todos.owner_id = ? OR todo_collaborators.user_id = ?", userID, userID).
		Order("todos.id").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormToDoGateway) Create(todo entity.ToDo) (*entity.ToDo, error) {
	if err := gateway.DB.Omit(clause.Associations).Create(&todo).Error; err != nil {
		return nil, err
	}
	return gateway.FindByID(todo.ID)
}

func (gateway *GormToDoGateway) Update(todo entity.ToDo) (*entity.ToDo, error) {
	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		var existing entity.ToDo
		if err := tx.First(&existing, todo.ID).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&todo).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return gateway.FindByID(todo.ID)
}

func (gateway *GormToDoGateway) DeleteByID(id uint) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		todo := entity.ToDo{ID: id}
		if err := tx.Model(&todo).Association("Collaborators").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&entity.ToDo{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoRows
		}
		return nil
	})
}

// AddCollaborator relies on the join table's composite primary key to keep
// membership a set.
func (gateway *GormToDoGateway) AddCollaborator(todoID, userID uint) error {
	todo := entity.ToDo{ID: todoID}
	return gateway.DB.Model(&todo).Association("Collaborators").Append(&entity.User{ID: userID})
}

func (gateway *GormToDoGateway) RemoveCollaborator(todoID, userID uint) error {
	todo := entity.ToDo{ID: todoID}
	return gateway.DB.Model(&todo).Association("Collaborators").Delete(&entity.User{ID: userID})
}
