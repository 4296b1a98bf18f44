package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bloomandblossom/florist-backend/api/middleware"
	"github.com/bloomandblossom/florist-backend/internal/catalog"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
)

type stubCatalogService struct {
	createPlantFn    func(ctx context.Context, input catalog.CreatePlantInput) (*catalog.PlantDTO, error)
	updatePlantFn    func(ctx context.Context, plantID uuid.UUID, input catalog.UpdatePlantInput) (*catalog.PlantDTO, error)
	deletePlantFn    func(ctx context.Context, plantID uuid.UUID) error
	getPlantFn       func(ctx context.Context, plantID uuid.UUID, includeUnavailable bool) (*catalog.PlantDTO, error)
	listPlantsFn     func(ctx context.Context, input catalog.ListPlantsInput) (*catalog.PlantListResult, error)
	createCategoryFn func(ctx context.Context, input catalog.CreateCategoryInput) (*catalog.CategoryDTO, error)
	updateCategoryFn func(ctx context.Context, categoryID uuid.UUID, input catalog.UpdateCategoryInput) (*catalog.CategoryDTO, error)
	deleteCategoryFn func(ctx context.Context, categoryID uuid.UUID) error
	listCategoriesFn func(ctx context.Context, includeInactive bool) ([]catalog.CategoryDTO, error)
}

func (s stubCatalogService) CreatePlant(ctx context.Context, input catalog.CreatePlantInput) (*catalog.PlantDTO, error) {
	return s.createPlantFn(ctx, input)
}

func (s stubCatalogService) UpdatePlant(ctx context.Context, plantID uuid.UUID, input catalog.UpdatePlantInput) (*catalog.PlantDTO, error) {
	return s.updatePlantFn(ctx, plantID, input)
}

func (s stubCatalogService) DeletePlant(ctx context.Context, plantID uuid.UUID) error {
	return s.deletePlantFn(ctx, plantID)
}

func (s stubCatalogService) GetPlant(ctx context.Context, plantID uuid.UUID, includeUnavailable bool) (*catalog.PlantDTO, error) {
	return s.getPlantFn(ctx, plantID, includeUnavailable)
}

func (s stubCatalogService) ListPlants(ctx context.Context, input catalog.ListPlantsInput) (*catalog.PlantListResult, error) {
	return s.listPlantsFn(ctx, input)
}

func (s stubCatalogService) CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*catalog.CategoryDTO, error) {
	return s.createCategoryFn(ctx, input)
}

func (s stubCatalogService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input catalog.UpdateCategoryInput) (*catalog.CategoryDTO, error) {
	return s.updateCategoryFn(ctx, categoryID, input)
}

func (s stubCatalogService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	return s.deleteCategoryFn(ctx, categoryID)
}

func (s stubCatalogService) ListCategories(ctx context.Context, includeInactive bool) ([]catalog.CategoryDTO, error) {
	return s.listCategoriesFn(ctx, includeInactive)
}

func TestListPlantsPassesFilters(t *testing.T) {
	categoryID := uuid.New()
	svc := stubCatalogService{
		listPlantsFn: func(ctx context.Context, input catalog.ListPlantsInput) (*catalog.PlantListResult, error) {
			if input.Pagination.Limit != 5 {
				t.Fatalf("unexpected limit %d", input.Pagination.Limit)
			}
			if input.Filters.CategoryID == nil || *input.Filters.CategoryID != categoryID {
				t.Fatalf("unexpected category filter %v", input.Filters.CategoryID)
			}
			if input.Filters.Query != "rose" {
				t.Fatalf("unexpected query %q", input.Filters.Query)
			}
			if input.Filters.Sort != catalog.SortPriceAsc {
				t.Fatalf("unexpected sort %q", input.Filters.Sort)
			}
			if input.IncludeUnavailable {
				t.Fatal("anonymous requests must not see unavailable plants")
			}
			return &catalog.PlantListResult{Limit: 5}, nil
		},
	}

	handler := ListPlants(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/?limit=5&category_id="+categoryID.String()+"&q=rose&sort=price_asc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestListPlantsAdminSeesUnavailable(t *testing.T) {
	svc := stubCatalogService{
		listPlantsFn: func(ctx context.Context, input catalog.ListPlantsInput) (*catalog.PlantListResult, error) {
			if !input.IncludeUnavailable {
				t.Fatal("admin requests must include unavailable plants")
			}
			return &catalog.PlantListResult{}, nil
		},
	}

	handler := ListPlants(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), uuid.NewString(), "admin", "admin"))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestGetPlantRejectsBadID(t *testing.T) {
	svc := stubCatalogService{
		getPlantFn: func(ctx context.Context, plantID uuid.UUID, includeUnavailable bool) (*catalog.PlantDTO, error) {
			t.Fatal("service must not be called for an invalid id")
			return nil, nil
		},
	}

	handler := GetPlant(svc, nil)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "not-a-uuid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminCreatePlantDecodesPayload(t *testing.T) {
	plantID := uuid.New()
	svc := stubCatalogService{
		createPlantFn: func(ctx context.Context, input catalog.CreatePlantInput) (*catalog.PlantDTO, error) {
			if input.Name != "Orchid" {
				t.Fatalf("unexpected name %q", input.Name)
			}
			if !input.Price.Equal(decimalFromString(t, "24.99")) {
				t.Fatalf("unexpected price %s", input.Price)
			}
			return &catalog.PlantDTO{ID: plantID, Name: input.Name}, nil
		},
	}

	handler := AdminCreatePlant(svc, nil)
	body := `{"name":"Orchid","price":24.99,"stock_quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data catalog.PlantDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != plantID {
		t.Fatalf("unexpected payload %v", envelope.Data)
	}
}

func TestAdminCreatePlantRejectsUnknownFields(t *testing.T) {
	svc := stubCatalogService{
		createPlantFn: func(ctx context.Context, input catalog.CreatePlantInput) (*catalog.PlantDTO, error) {
			t.Fatal("service must not be called for a malformed body")
			return nil, nil
		},
	}

	handler := AdminCreatePlant(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"X","price":1,"bogus":true}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminDeletePlantMapsNotFound(t *testing.T) {
	svc := stubCatalogService{
		deletePlantFn: func(ctx context.Context, plantID uuid.UUID) error {
			return pkgerrors.New(pkgerrors.CodeNotFound, "plant not found")
		},
	}

	handler := AdminDeletePlant(svc, nil)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestListCategoriesAdminSeesInactive(t *testing.T) {
	svc := stubCatalogService{
		listCategoriesFn: func(ctx context.Context, includeInactive bool) ([]catalog.CategoryDTO, error) {
			if !includeInactive {
				t.Fatal("admin requests must include inactive categories")
			}
			return []catalog.CategoryDTO{}, nil
		},
	}

	handler := ListCategories(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), uuid.NewString(), "admin", "admin"))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
