package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEntity(t *testing.T) {
	e := NewBaseEntity()
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)
}

func TestBaseEntity_Touch(t *testing.T) {
	e := NewBaseEntity()
	stale := e.UpdatedAt.Add(-time.Minute)
	e.UpdatedAt = stale

	e.Touch()

	assert.True(t, e.UpdatedAt.After(stale))
	assert.Equal(t, e.ID, e.GetID())
	assert.Equal(t, e.UpdatedAt, e.GetUpdatedAt())
}
