package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todolist-api/internal/domain/entity"
)

type GormTaskGateway struct {
	DB *gorm.DB
}

var _ TaskGateway = (*GormTaskGateway)(nil)

func NewGormTaskGateway(db *gorm.DB) *GormTaskGateway {
	return &GormTaskGateway{DB: db}
}

func (gateway *GormTaskGateway) FindAll() ([]entity.Task, error) {
	var tasks []entity.Task
	if err := gateway.DB.Preload("State").Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (gateway *GormTaskGateway) FindByID(id uint) (*entity.Task, error) {
	var task entity.Task
	err := gateway.DB.Preload("State").First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (gateway *GormTaskGateway) FindByTodoID(todoID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	err := gateway.DB.
		Preload("State").
		Where("todo_id = ?", todoID).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (gateway *GormTaskGateway) Create(task entity.Task) (*entity.Task, error) {
	if err := gateway.DB.Omit(clause.Associations).Create(&task).Error; err != nil {
		return nil, err
	}
	return gateway.FindByID(task.ID)
}

func (gateway *GormTaskGateway) Update(task entity.Task) (*entity.Task, error) {
	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		var existing entity.Task
		if err := tx.First(&existing, task.ID).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&task).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return gateway.FindByID(task.ID)
}

func (gateway *GormTaskGateway) DeleteByID(id uint) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entity.Task{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoRows
		}
		return nil
	})
}
