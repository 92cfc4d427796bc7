package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"todolist-api/internal/application/security"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
	"todolist-api/internal/domain/usecase/role"
	"todolist-api/internal/domain/usecase/state"
	"todolist-api/internal/domain/usecase/task"
	"todolist-api/internal/domain/usecase/todo"
	"todolist-api/internal/domain/usecase/user"
)

// In-memory gateways shared by the controller tests. They mirror the gateway
// contract: lookups return nil on a miss, DeleteByID returns db.ErrNoRows
// when nothing was removed.

type memUserGateway struct {
	users  map[uint]entity.User
	nextID uint
}

var _ db.UserGateway = (*memUserGateway)(nil)

func (g *memUserGateway) FindAll() ([]entity.User, error) {
	all := make([]entity.User, 0, len(g.users))
	for _, u := range g.users {
		all = append(all, u)
	}
	return all, nil
}

func (g *memUserGateway) FindByID(id uint) (*entity.User, error) {
	if u, ok := g.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (g *memUserGateway) FindByEmail(email string) (*entity.User, error) {
	for _, u := range g.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (g *memUserGateway) Create(u entity.User) (*entity.User, error) {
	u.ID = g.nextID
	g.nextID++
	g.users[u.ID] = u
	return &u, nil
}

func (g *memUserGateway) Update(u entity.User) (*entity.User, error) {
	if _, ok := g.users[u.ID]; !ok {
		return nil, nil
	}
	g.users[u.ID] = u
	return &u, nil
}

func (g *memUserGateway) DeleteByID(id uint) error {
	if _, ok := g.users[id]; !ok {
		return db.ErrNoRows
	}
	delete(g.users, id)
	return nil
}

type memRoleGateway struct {
	roles map[uint]entity.Role
}

var _ db.RoleGateway = (*memRoleGateway)(nil)

func (g *memRoleGateway) FindAll() ([]entity.Role, error) {
	all := make([]entity.Role, 0, len(g.roles))
	for _, r := range g.roles {
		all = append(all, r)
	}
	return all, nil
}

func (g *memRoleGateway) FindByID(id uint) (*entity.Role, error) {
	if r, ok := g.roles[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (g *memRoleGateway) Create(r entity.Role) (*entity.Role, error) {
	g.roles[r.ID] = r
	return &r, nil
}

func (g *memRoleGateway) Update(r entity.Role) (*entity.Role, error) {
	g.roles[r.ID] = r
	return &r, nil
}

func (g *memRoleGateway) DeleteByID(id uint) error {
	delete(g.roles, id)
	return nil
}

type memStateGateway struct {
	states map[uint]entity.State
}

var _ db.StateGateway = (*memStateGateway)(nil)

func (g *memStateGateway) FindAll() ([]entity.State, error) {
	all := make([]entity.State, 0, len(g.states))
	for _, s := range g.states {
		all = append(all, s)
	}
	return all, nil
}

func (g *memStateGateway) FindByID(id uint) (*entity.State, error) {
	if s, ok := g.states[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (g *memStateGateway) FindByName(name string) (*entity.State, error) {
	for _, s := range g.states {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, nil
}

func (g *memStateGateway) Create(s entity.State) (*entity.State, error) {
	g.states[s.ID] = s
	return &s, nil
}

func (g *memStateGateway) Update(s entity.State) (*entity.State, error) {
	g.states[s.ID] = s
	return &s, nil
}

func (g *memStateGateway) DeleteByID(id uint) error {
	delete(g.states, id)
	return nil
}

type memToDoGateway struct {
	todos  map[uint]entity.ToDo
	nextID uint
}

var _ db.ToDoGateway = (*memToDoGateway)(nil)

func (g *memToDoGateway) FindAll() ([]entity.ToDo, error) {
	all := make([]entity.ToDo, 0, len(g.todos))
	for _, td := range g.todos {
		all = append(all, td)
	}
	return all, nil
}

func (g *memToDoGateway) FindByID(id uint) (*entity.ToDo, error) {
	if td, ok := g.todos[id]; ok {
		return &td, nil
	}
	return nil, nil
}

func (g *memToDoGateway) FindByUserID(userID uint) ([]entity.ToDo, error) {
	var result []entity.ToDo
	for _, td := range g.todos {
		if td.OwnerID == userID {
			result = append(result, td)
			continue
		}
		for _, collaborator := range td.Collaborators {
			if collaborator.ID == userID {
				result = append(result, td)
				break
			}
		}
	}
	return result, nil
}

func (g *memToDoGateway) Create(td entity.ToDo) (*entity.ToDo, error) {
	td.ID = g.nextID
	g.nextID++
	g.todos[td.ID] = td
	return &td, nil
}

func (g *memToDoGateway) Update(td entity.ToDo) (*entity.ToDo, error) {
	if _, ok := g.todos[td.ID]; !ok {
		return nil, nil
	}
	g.todos[td.ID] = td
	return &td, nil
}

func (g *memToDoGateway) DeleteByID(id uint) error {
	if _, ok := g.todos[id]; !ok {
		return db.ErrNoRows
	}
	delete(g.todos, id)
	return nil
}

func (g *memToDoGateway) AddCollaborator(todoID, userID uint) error {
	td := g.todos[todoID]
	td.Collaborators = append(td.Collaborators, entity.User{ID: userID})
	g.todos[todoID] = td
	return nil
}

func (g *memToDoGateway) RemoveCollaborator(todoID, userID uint) error {
	td := g.todos[todoID]
	kept := td.Collaborators[:0]
	for _, collaborator := range td.Collaborators {
		if collaborator.ID != userID {
			kept = append(kept, collaborator)
		}
	}
	td.Collaborators = kept
	g.todos[todoID] = td
	return nil
}

type memTaskGateway struct {
	tasks  map[uint]entity.Task
	nextID uint
}

var _ db.TaskGateway = (*memTaskGateway)(nil)

func (g *memTaskGateway) FindAll() ([]entity.Task, error) {
	all := make([]entity.Task, 0, len(g.tasks))
	for _, task := range g.tasks {
		all = append(all, task)
	}
	return all, nil
}

func (g *memTaskGateway) FindByID(id uint) (*entity.Task, error) {
	if task, ok := g.tasks[id]; ok {
		return &task, nil
	}
	return nil, nil
}

func (g *memTaskGateway) FindByTodoID(todoID uint) ([]entity.Task, error) {
	var result []entity.Task
	for _, task := range g.tasks {
		if task.TodoID == todoID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (g *memTaskGateway) Create(task entity.Task) (*entity.Task, error) {
	task.ID = g.nextID
	g.nextID++
	g.tasks[task.ID] = task
	return &task, nil
}

func (g *memTaskGateway) Update(task entity.Task) (*entity.Task, error) {
	if _, ok := g.tasks[task.ID]; !ok {
		return nil, nil
	}
	g.tasks[task.ID] = task
	return &task, nil
}

func (g *memTaskGateway) DeleteByID(id uint) error {
	if _, ok := g.tasks[id]; !ok {
		return db.ErrNoRows
	}
	delete(g.tasks, id)
	return nil
}

// fixture wires real services over the in-memory gateways, seeded with the
// reference roles and states.
type fixture struct {
	users  *memUserGateway
	todos  *memToDoGateway
	tasks  *memTaskGateway
	states *memStateGateway

	userUseCase  user.UseCase
	roleUseCase  role.UseCase
	stateUseCase state.UseCase
	todoUseCase  todo.UseCase
	taskUseCase  task.UseCase

	echo *echo.Echo
}

func newFixture() *fixture {
	users := &memUserGateway{users: make(map[uint]entity.User), nextID: 1}
	roles := &memRoleGateway{roles: map[uint]entity.Role{
		1: {ID: 1, Name: entity.RoleAdmin},
		2: {ID: 2, Name: entity.RoleUser},
	}}
	states := &memStateGateway{states: map[uint]entity.State{
		1: {ID: 1, Name: "To do"},
		2: {ID: 2, Name: "In progress"},
		3: {ID: 3, Name: "Done"},
	}}
	todos := &memToDoGateway{todos: make(map[uint]entity.ToDo), nextID: 1}
	tasks := &memTaskGateway{tasks: make(map[uint]entity.Task), nextID: 1}

	return &fixture{
		users:        users,
		todos:        todos,
		tasks:        tasks,
		states:       states,
		userUseCase:  user.NewUserUseCase(users),
		roleUseCase:  role.NewRoleUseCase(roles, nil),
		stateUseCase: state.NewStateUseCase(states, nil),
		todoUseCase:  todo.NewToDoUseCase(todos, users),
		taskUseCase:  task.NewTaskUseCase(tasks),
		echo:         echo.New(),
	}
}

func (f *fixture) addUser(id uint, firstName, email string, roleEntity entity.Role) entity.User {
	u := entity.User{
		ID:        id,
		FirstName: firstName,
		LastName:  "Tester",
		Email:     email,
		Password:  mustHash("secret"),
		RoleID:    roleEntity.ID,
		Role:      roleEntity,
	}
	f.users.users[id] = u
	if id >= f.users.nextID {
		f.users.nextID = id + 1
	}
	return u
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func asPrincipal(u entity.User) security.Principal {
	return security.NewPrincipal(u)
}

// request builds an echo context carrying an optional JSON body, path
// params and principal, the way the routing and auth middleware would.
func (f *fixture) request(method, target, body string, principal *security.Principal, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if principal != nil {
		c.Set(security.PrincipalContextKey, *principal)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	return payload
}
