package db

import (
	"errors"

	"gorm.io/gorm"

	"todolist-api/internal/domain/entity"
)

type GormRoleGateway struct {
	DB *gorm.DB
}

var _ RoleGateway = (*GormRoleGateway)(nil)

func NewGormRoleGateway(db *gorm.DB) *GormRoleGateway {
	return &GormRoleGateway{DB: db}
}

func (gateway *GormRoleGateway) FindAll() ([]entity.Role, error) {
	var roles []entity.Role
	if err := gateway.DB.Order("id").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (gateway *GormRoleGateway) FindByID(id uint) (*entity.Role, error) {
	var role entity.Role
	err := gateway.DB.First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (gateway *GormRoleGateway) Create(role entity.Role) (*entity.Role, error) {
	if err := gateway.DB.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (gateway *GormRoleGateway) Update(role entity.Role) (*entity.Role, error) {
	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		var existing entity.Role
		if err := tx.First(&existing, role.ID).Error; err != nil {
			return err
		}
		return tx.Save(&role).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (gateway *GormRoleGateway) DeleteByID(id uint) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entity.Role{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoRows
		}
		return nil
	})
}
