package controller

import (
	"net/http"
	"testing"

	"todolist-api/internal/domain/entity"
)

func TestHome(t *testing.T) {
	f := newFixture()
	controller := NewHomeController(f.echo.Group(""), f.userUseCase, nil)

	adminRole := entity.Role{ID: 1, Name: entity.RoleAdmin}
	userRole := entity.Role{ID: 2, Name: entity.RoleUser}
	admin := f.addUser(1, "Admin", "admin@example.com", adminRole)
	grace := f.addUser(2, "Grace", "grace@example.com", userRole)
	f.addUser(3, "Alan", "alan@example.com", userRole)

	t.Run("Admin sees every user", func(t *testing.T) {
		principal := asPrincipal(admin)
		c, rec := f.request(http.MethodGet, "/home", "", &principal)
		if err := controller.Home(c); err != nil {
			t.Fatalf("Home returned error: %v", err)
		}
		payload := decodeBody(t, rec)
		users, ok := payload["users"].([]interface{})
		if !ok || len(users) != 3 {
			t.Errorf("Expected 3 users, got %v", payload["users"])
		}
	})

	t.Run("Regular user sees only themselves", func(t *testing.T) {
		principal := asPrincipal(grace)
		c, rec := f.request(http.MethodGet, "/home", "", &principal)
		if err := controller.Home(c); err != nil {
			t.Fatalf("Home returned error: %v", err)
		}
		payload := decodeBody(t, rec)
		users, ok := payload["users"].([]interface{})
		if !ok || len(users) != 1 {
			t.Fatalf("Expected 1 user, got %v", payload["users"])
		}
		entry, _ := users[0].(map[string]interface{})
		if entry["email"] != "grace@example.com" {
			t.Errorf("Expected the caller's own record, got %v", entry["email"])
		}
	})
}
