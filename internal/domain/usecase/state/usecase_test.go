package state

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"todolist-api/internal/domain/apperror"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
)

type fakeStateGateway struct {
	states map[uint]entity.State
	nextID uint
	reads  int
}

var _ db.StateGateway = (*fakeStateGateway)(nil)

func newFakeStateGateway() *fakeStateGateway {
	return &fakeStateGateway{states: make(map[uint]entity.State), nextID: 1}
}

func (g *fakeStateGateway) FindAll() ([]entity.State, error) {
	g.reads++
	all := make([]entity.State, 0, len(g.states))
	for _, s := range g.states {
		all = append(all, s)
	}
	return all, nil
}

func (g *fakeStateGateway) FindByID(id uint) (*entity.State, error) {
	g.reads++
	if s, ok := g.states[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (g *fakeStateGateway) FindByName(name string) (*entity.State, error) {
	g.reads++
	for _, s := range g.states {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, nil
}

func (g *fakeStateGateway) Create(state entity.State) (*entity.State, error) {
	state.ID = g.nextID
	g.nextID++
	g.states[state.ID] = state
	return &state, nil
}

func (g *fakeStateGateway) Update(state entity.State) (*entity.State, error) {
	if _, ok := g.states[state.ID]; !ok {
		return nil, nil
	}
	g.states[state.ID] = state
	return &state, nil
}

func (g *fakeStateGateway) DeleteByID(id uint) error {
	if _, ok := g.states[id]; !ok {
		return db.ErrNoRows
	}
	delete(g.states, id)
	return nil
}

// memoryCache implements the Cache port over a plain map, serializing the
// same way the redis-backed cache does.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := c.entries[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func TestGetByName(t *testing.T) {
	gateway := newFakeStateGateway()
	useCase := NewStateUseCase(gateway, nil)

	if _, err := useCase.Create(&entity.State{Name: "To do"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := useCase.GetByName("To do")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if found.Name != "To do" {
		t.Errorf("Expected 'To do', got %q", found.Name)
	}

	_, err = useCase.GetByName("Archived")
	if !apperror.IsNotFound(err) {
		t.Fatalf("Expected NotFound, got %v", err)
	}
	if err.Error() != "State with name 'Archived' not found" {
		t.Errorf("Wrong message: got %q", err.Error())
	}
}

func TestReadThroughCache(t *testing.T) {
	gateway := newFakeStateGateway()
	cache := newMemoryCache()
	useCase := NewStateUseCase(gateway, cache)

	created, err := useCase.Create(&entity.State{Name: "To do"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := useCase.ReadByID(created.ID); err != nil {
		t.Fatalf("First read failed: %v", err)
	}
	readsAfterMiss := gateway.reads

	if _, err := useCase.ReadByID(created.ID); err != nil {
		t.Fatalf("Second read failed: %v", err)
	}
	if gateway.reads != readsAfterMiss {
		t.Errorf("Second read should be served from cache, gateway reads went %d -> %d", readsAfterMiss, gateway.reads)
	}
}

func TestMutationInvalidatesCache(t *testing.T) {
	gateway := newFakeStateGateway()
	cache := newMemoryCache()
	useCase := NewStateUseCase(gateway, cache)

	created, err := useCase.Create(&entity.State{Name: "To do"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Populate id and name entries.
	if _, err := useCase.ReadByID(created.ID); err != nil {
		t.Fatalf("ReadByID failed: %v", err)
	}
	if _, err := useCase.GetByName("To do"); err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}

	renamed := entity.State{ID: created.ID, Name: "Open"}
	if _, err := useCase.Update(&renamed); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := useCase.ReadByID(created.ID)
	if err != nil {
		t.Fatalf("ReadByID after update failed: %v", err)
	}
	if found.Name != "Open" {
		t.Errorf("Stale cache entry survived the update, got %q", found.Name)
	}

	// The old name entry is gone too.
	if _, err := useCase.GetByName("To do"); !apperror.IsNotFound(err) {
		t.Errorf("Old name should no longer resolve, got %v", err)
	}
}

func TestNilCacheDisablesCaching(t *testing.T) {
	gateway := newFakeStateGateway()
	useCase := NewStateUseCase(gateway, nil)

	created, err := useCase.Create(&entity.State{Name: "To do"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	before := gateway.reads
	if _, err := useCase.ReadByID(created.ID); err != nil {
		t.Fatalf("ReadByID failed: %v", err)
	}
	if _, err := useCase.ReadByID(created.ID); err != nil {
		t.Fatalf("ReadByID failed: %v", err)
	}
	if gateway.reads != before+2 {
		t.Errorf("Without a cache every read should hit the gateway, got %d extra reads", gateway.reads-before)
	}
}
