package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	categories := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  image_url TEXT,
  display_order INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  name_en TEXT,
  name_az TEXT,
  name_ru TEXT,
  description_en TEXT,
  description_az TEXT,
  description_ru TEXT,
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
	usages := `
CREATE TABLE IF NOT EXISTS translation_usages (
  id TEXT PRIMARY KEY,
  entity_type TEXT NOT NULL,
  entity_id TEXT NOT NULL,
  field TEXT NOT NULL,
  language TEXT NOT NULL,
  characters INTEGER NOT NULL DEFAULT 0,
  fallback INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(categories).Error)
	require.NoError(t, db.Exec(plants).Error)
	require.NoError(t, db.Exec(usages).Error)
	return db
}
