package orders

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  order_number TEXT NOT NULL UNIQUE,
  customer_name TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  customer_email TEXT,
  delivery_type TEXT NOT NULL,
  delivery_address TEXT,
  items TEXT NOT NULL,
  subtotal NUMERIC NOT NULL,
  delivery_fee NUMERIC NOT NULL DEFAULT 0,
  total NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  notes TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	plants := `
CREATE TABLE IF NOT EXISTS plants (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  scientific_name TEXT,
  category_id TEXT,
  price NUMERIC NOT NULL,
  sale_price NUMERIC,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  description TEXT,
  care_instructions TEXT,
  image_url TEXT,
  gallery_images TEXT NOT NULL DEFAULT '{}',
  featured INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'available',
  translation_status TEXT NOT NULL DEFAULT 'pending',
  name_en TEXT,
  name_az TEXT,
  name_ru TEXT,
  description_en TEXT,
  description_az TEXT,
  description_ru TEXT,
  care_instructions_en TEXT,
  care_instructions_az TEXT,
  care_instructions_ru TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(plants).Error)
	return db
}
