package catalog

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomandblossom/florist-backend/internal/translation"
	"github.com/bloomandblossom/florist-backend/pkg/db"
	"github.com/bloomandblossom/florist-backend/pkg/db/models"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
	"github.com/bloomandblossom/florist-backend/pkg/translate"
)

type suffixProvider struct {
	degrade bool
}

func (p *suffixProvider) Translate(ctx context.Context, text string, lang enums.Language) (string, bool) {
	if p.degrade {
		return translate.Fallback(text, lang), true
	}
	return text + " [" + lang.String() + "]", false
}

func newTestService(t *testing.T, provider translate.Provider) (Service, *Repository) {
	t.Helper()

	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	pipeline, err := translation.NewPipeline(provider, nil)
	require.NoError(t, err)
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	svc, err := NewService(repo, db.NewWithConn(conn), pipeline, logg)
	require.NoError(t, err)
	return svc, repo
}

func TestCreatePlantTranslatesAndRecordsUsage(t *testing.T) {
	svc, repo := newTestService(t, &suffixProvider{})
	ctx := context.Background()

	description := "Gösterişli iç mekan bitkisi"
	dto, err := svc.CreatePlant(ctx, CreatePlantInput{
		Name:          "Monstera",
		Price:         decimal.RequireFromString("45.50"),
		StockQuantity: 3,
		Description:   &description,
	})
	require.NoError(t, err)

	assert.Equal(t, "Monstera", dto.Name)
	require.NotNil(t, dto.NameEN)
	assert.Equal(t, "Monstera [en]", *dto.NameEN)
	require.NotNil(t, dto.DescriptionRU)
	assert.Equal(t, description+" [ru]", *dto.DescriptionRU)
	assert.Nil(t, dto.CareInstructionsEN)
	assert.Equal(t, string(enums.TranslationStatusComplete), dto.TranslationStatus)

	// name + description, three languages each
	var usageCount int64
	require.NoError(t, repo.db.Model(&models.TranslationUsage{}).
		Where("entity_type = ? AND entity_id = ?", entityPlant, dto.ID).
		Count(&usageCount).Error)
	assert.EqualValues(t, 6, usageCount)
}

func TestCreatePlantDegradedRunStaysPending(t *testing.T) {
	svc, repo := newTestService(t, &suffixProvider{degrade: true})
	ctx := context.Background()

	dto, err := svc.CreatePlant(ctx, CreatePlantInput{
		Name:  "Kaktüs",
		Price: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(enums.TranslationStatusPending), dto.TranslationStatus)
	require.NotNil(t, dto.NameEN)
	assert.Equal(t, "Kaktüs (EN)", *dto.NameEN)

	var fallbacks int64
	require.NoError(t, repo.db.Model(&models.TranslationUsage{}).
		Where("entity_id = ? AND fallback = ?", dto.ID, true).
		Count(&fallbacks).Error)
	assert.EqualValues(t, 3, fallbacks)
}

func TestCreatePlantValidation(t *testing.T) {
	svc, _ := newTestService(t, &suffixProvider{})
	ctx := context.Background()

	sale := decimal.RequireFromString("50.00")
	_, err := svc.CreatePlant(ctx, CreatePlantInput{
		Name:      "Orkide",
		Price:     decimal.RequireFromString("30.00"),
		SalePrice: &sale,
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	_, err = svc.CreatePlant(ctx, CreatePlantInput{
		Name:          "Orkide",
		Price:         decimal.RequireFromString("30.00"),
		StockQuantity: -1,
	})
	require.Error(t, err)

	bogus := uuid.New()
	_, err = svc.CreatePlant(ctx, CreatePlantInput{
		Name:       "Orkide",
		Price:      decimal.RequireFromString("30.00"),
		CategoryID: &bogus,
	})
	require.Error(t, err)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdatePlantDoesNotRetranslate(t *testing.T) {
	svc, _ := newTestService(t, &suffixProvider{})
	ctx := context.Background()

	dto, err := svc.CreatePlant(ctx, CreatePlantInput{
		Name:  "Gül",
		Price: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)

	newName := "Kırmızı Gül"
	updated, err := svc.UpdatePlant(ctx, dto.ID, UpdatePlantInput{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Kırmızı Gül", updated.Name)
	// variants keep the originally translated text
	require.NotNil(t, updated.NameEN)
	assert.Equal(t, "Gül [en]", *updated.NameEN)
}

func TestGetPlantPublicHidesUnavailable(t *testing.T) {
	svc, _ := newTestService(t, &suffixProvider{})
	ctx := context.Background()

	dto, err := svc.CreatePlant(ctx, CreatePlantInput{
		Name:   "Sansevieria",
		Price:  decimal.RequireFromString("20.00"),
		Status: enums.PlantStatusUnavailable,
	})
	require.NoError(t, err)

	_, err = svc.GetPlant(ctx, dto.ID, false)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	got, err := svc.GetPlant(ctx, dto.ID, true)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, got.ID)
}

func TestCreateCategoryTranslates(t *testing.T) {
	svc, _ := newTestService(t, &suffixProvider{})
	ctx := context.Background()

	dto, err := svc.CreateCategory(ctx, CreateCategoryInput{
		Name:     "Saksı Bitkileri",
		IsActive: true,
	})
	require.NoError(t, err)

	require.NotNil(t, dto.NameAZ)
	assert.Equal(t, "Saksı Bitkileri [az]", *dto.NameAZ)
	assert.Nil(t, dto.DescriptionEN)
}

func TestValidatePrices(t *testing.T) {
	price := decimal.RequireFromString("30.00")
	lower := decimal.RequireFromString("25.00")
	equal := decimal.RequireFromString("30.00")
	negative := decimal.RequireFromString("-1.00")

	assert.NoError(t, validatePrices(price, nil))
	assert.NoError(t, validatePrices(price, &lower))
	assert.Error(t, validatePrices(price, &equal))
	assert.Error(t, validatePrices(negative, nil))
	assert.Error(t, validatePrices(price, &negative))
}
