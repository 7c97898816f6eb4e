package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	q := "SELECT name FROM products WHERE product_id = ? AND category = ?"

	assert.Equal(t, q, Rebind(DriverSqlite, q))
	assert.Equal(t,
		"SELECT name FROM products WHERE product_id = $1 AND category = $2",
		Rebind(DriverPostgres, q),
	)
}
