package db

import (
	"errors"

	"gorm.io/gorm"

	"todolist-api/internal/domain/entity"
)

type GormStateGateway struct {
	DB *gorm.DB
}

var _ StateGateway = (*GormStateGateway)(nil)

func NewGormStateGateway(db *gorm.DB) *GormStateGateway {
	return &GormStateGateway{DB: db}
}

func (gateway *GormStateGateway) FindAll() ([]entity.State, error) {
	var states []entity.State
	if err := gateway.DB.Order("id").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (gateway *GormStateGateway) FindByID(id uint) (*entity.State, error) {
	var state entity.State
	err := gateway.DB.First(&state, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// FindByName matches the state name exactly.
func (gateway *GormStateGateway) FindByName(name string) (*entity.State, error) {
	var state entity.State
	err := gateway.DB.Where("name = ?", name).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (gateway *GormStateGateway) Create(state entity.State) (*entity.State, error) {
	if err := gateway.DB.Create(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func (gateway *GormStateGateway) Update(state entity.State) (*entity.State, error) {
	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		var existing entity.State
		if err := tx.First(&existing, state.ID).Error; err != nil {
			return err
		}
		return tx.Save(&state).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (gateway *GormStateGateway) DeleteByID(id uint) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entity.State{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoRows
		}
		return nil
	})
}
