package types

import "errors"

// Filter selects entities in Table.Fetch. Keys and accepted value types
// are table-specific; an empty or nil filter matches every entity.
type Filter = map[string]any

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity
// struct. Entity IDs are positive integers assigned by the backend on
// creation and stable thereafter.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id int64) (any, error)

	// Set creates or updates an entity. When id is zero a new ID is
	// assigned. Returns the actual ID used (assigned or provided).
	Set(id int64, data any) (int64, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id int64) error

	// Fetch returns all entities matching the filter. An empty filter
	// returns every entity in the table.
	Fetch(filter Filter) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidData   = errors.New("invalid entity data")
	ErrInvalidFilter = errors.New("invalid filter value type")
)

// Entity method errors.
var (
	ErrInvalidTitle    = errors.New("title must not be empty")
	ErrInvalidText     = errors.New("text must not be empty")
	ErrInvalidAuthor   = errors.New("author ID must be positive")
	ErrNotLinked       = errors.New("answer is not linked to the question")
	ErrInvalidWeight   = errors.New("trust weight out of range")
	ErrDuplicateAnswer = errors.New("duplicate answer text")
)
