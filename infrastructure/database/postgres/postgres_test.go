package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, IsUndefinedTable(&pq.Error{Code: "42P01"}))
	assert.True(t, IsUndefinedTable(fmt.Errorf("consulta: %w", &pq.Error{Code: "42P01"})))
	assert.False(t, IsUndefinedTable(&pq.Error{Code: "23505"}))
	assert.False(t, IsUndefinedTable(errors.New("qualquer")))
	assert.False(t, IsUndefinedTable(nil))
}
