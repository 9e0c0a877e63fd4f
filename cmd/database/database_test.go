package database

import (
	"context"
	"io/fs"
	"testing"

	"github.com/muhammadheryan/marketplace/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenNilConfig(t *testing.T) {
	db, err := Open(context.Background(), nil)
	assert.Nil(t, db)
	assert.EqualError(t, err, "nil config provided")
}

func TestMigrateNilDB(t *testing.T) {
	err := Migrate(context.Background(), nil, "up")
	assert.EqualError(t, err, "db is required")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations.FS, files[0])
	require.NoError(t, err)
	for _, table := range []string{
		"`user`", "user_profile", "role", "user_role", "category", "product", "product_tag", "product_approval",
		"cart", "cart_item", "`order`", "invoice", "invoice_item", "delivery_confirmation", "notification",
	} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "-- +goose Down")
	assert.Contains(t, string(body), "UNIQUE KEY uq_invoice_order_seller (order_id, seller_id)")
	assert.Contains(t, string(body), "UNIQUE KEY uq_delivery_code_invoice (delivery_code, seller_invoice_id)")
}
