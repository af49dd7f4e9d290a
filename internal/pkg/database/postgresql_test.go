package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPostgreSQLDBInvalidDSN(t *testing.T) {
	db, err := NewPostgreSQLDB(context.Background(), "://not-a-dsn")
	assert.Error(t, err)
	assert.Nil(t, db)
}
