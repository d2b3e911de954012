package model

import (
	"fmt"
	"reflect"
	"sync"
)

// ReflectRegistry is a Registry backed by Go reflection. Types are registered
// with a name, an id and a prototype value; lookups and default construction
// work off the prototype's reflect.Type.
type ReflectRegistry struct {
	mu     sync.RWMutex
	byID   map[TypeID]*TypeDescriptor
	byHash map[uint32][]TypeID
}

// NewRegistry returns an empty ReflectRegistry.
func NewRegistry() *ReflectRegistry {
	return &ReflectRegistry{
		byID:   map[TypeID]*TypeDescriptor{},
		byHash: map[uint32][]TypeID{},
	}
}

// Register adds a type under the given name and id. The prototype may be a
// struct value or a pointer to one. Registering an id twice is an error;
// several types may legitimately share a name hash, so name collisions are
// kept as ordered candidates rather than rejected.
func (r *ReflectRegistry) Register(name string, id TypeID, prototype any) error {
	t := reflect.TypeOf(prototype)
	if t == nil {
		return fmt.Errorf("cannot register %q: prototype is nil", name)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("cannot register %q: prototype must be a struct, got %s", name, t.Kind())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byID[id]; ok {
		return fmt.Errorf("type id %s already registered as %q", id, existing.Name)
	}
	r.byID[id] = &TypeDescriptor{Name: name, ID: id, Type: t}
	hash := NameHash(name)
	r.byHash[hash] = append(r.byHash[hash], id)
	return nil
}

// MustRegister is Register but panics on error, for package init blocks.
func (r *ReflectRegistry) MustRegister(name string, id TypeID, prototype any) {
	if err := r.Register(name, id, prototype); err != nil {
		panic(err)
	}
}

func (r *ReflectRegistry) FindTypeByID(id TypeID) *TypeDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id]
}

func (r *ReflectRegistry) FindTypeIDsByName(name string) []TypeID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byHash[NameHash(name)]
	out := make([]TypeID, len(ids))
	copy(out, ids)
	return out
}

func (r *ReflectRegistry) ConstructDefault(id TypeID) (any, error) {
	r.mu.RLock()
	desc := r.byID[id]
	r.mu.RUnlock()
	if desc == nil {
		return nil, fmt.Errorf("type id %s is not registered", id)
	}
	return reflect.New(desc.Type).Interface(), nil
}

var _ Registry = (*ReflectRegistry)(nil)
