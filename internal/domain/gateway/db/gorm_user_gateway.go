package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todolist-api/internal/domain/entity"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindAll() ([]entity.User, error) {
	var users []entity.User
	if err := gateway.DB.Preload("Role").Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (gateway *GormUserGateway) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.Preload("Role").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.Preload("Role").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) Create(user entity.User) (*entity.User, error) {
	if err := gateway.DB.Omit(clause.Associations).Create(&user).Error; err != nil {
		return nil, err
	}
	return gateway.FindByID(user.ID)
}

// Update replaces the row inside one transaction so the existence check and
// the write share the same boundary.
func (gateway *GormUserGateway) Update(user entity.User) (*entity.User, error) {
	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		var existing entity.User
		if err := tx.First(&existing, user.ID).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return gateway.FindByID(user.ID)
}

func (gateway *GormUserGateway) DeleteByID(id uint) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entity.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoRows
		}
		return nil
	})
}
