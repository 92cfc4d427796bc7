package gorm

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todolist-api/internal/domain/entity"
	"todolist-api/pkg/resource"
)

var Db *gorm.DB

func init() {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	var err error
	Db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect Database: %v", err)
	}
}

// Migrate creates or updates the schema for every entity.
func Migrate() error {
	return Db.AutoMigrate(
		&entity.Role{},
		&entity.State{},
		&entity.User{},
		&entity.ToDo{},
		&entity.Task{},
	)
}

// Seed inserts the reference roles and states when the tables are empty.
// Role ids are fixed so the default role for new users stays stable.
func Seed() error {
	var roleCount int64
	if err := Db.Model(&entity.Role{}).Count(&roleCount).Error; err != nil {
		return err
	}
	if roleCount == 0 {
		roles := []entity.Role{
			{ID: 1, Name: entity.RoleAdmin},
			{ID: entity.DefaultRoleID, Name: entity.RoleUser},
		}
		if err := Db.Create(&roles).Error; err != nil {
			return err
		}
	}

	var stateCount int64
	if err := Db.Model(&entity.State{}).Count(&stateCount).Error; err != nil {
		return err
	}
	if stateCount == 0 {
		states := []entity.State{
			{Name: "To do"},
			{Name: "In progress"},
			{Name: "Done"},
		}
		if err := Db.Create(&states).Error; err != nil {
			return err
		}
	}

	return nil
}
