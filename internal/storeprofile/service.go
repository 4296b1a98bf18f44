package storeprofile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomandblossom/florist-backend/pkg/db/models"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
)

// ProfileDTO is the storefront profile payload.
type ProfileDTO struct {
	ID           uuid.UUID `json:"id"`
	StoreName    string    `json:"store_name"`
	Tagline      *string   `json:"tagline,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Hours        *string   `json:"hours,omitempty"`
	DeliveryInfo *string   `json:"delivery_info,omitempty"`
	SocialMedia  *string   `json:"social_media,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateInput holds optional mutation values for the profile.
type UpdateInput struct {
	StoreName    *string
	Tagline      *string
	Description  *string
	Email        *string
	Phone        *string
	Address      *string
	Hours        *string
	DeliveryInfo *string
	SocialMedia  *string
}

// Service exposes the singleton store profile.
type Service interface {
	Get(ctx context.Context) (*ProfileDTO, error)
	Update(ctx context.Context, input UpdateInput) (*ProfileDTO, error)
}

// Repository wires together profile persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// First loads the singleton row.
func (r *Repository) First(ctx context.Context) (*models.StoreProfile, error) {
	var profile models.StoreProfile
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save creates or updates the row.
func (r *Repository) Save(ctx context.Context, profile *models.StoreProfile) (*models.StoreProfile, error) {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// service implements the store profile service.
type service struct {
	repo *Repository
}

// NewService constructs a store profile service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("store profile repository required")
	}
	return &service{repo: repo}, nil
}

// Get returns the profile shown on the storefront.
func (s *service) Get(ctx context.Context) (*ProfileDTO, error) {
	profile, err := s.repo.First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store profile not configured")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading store profile")
	}
	return newProfileDTO(profile), nil
}

// Update applies partial changes, creating the singleton on first write.
func (s *service) Update(ctx context.Context, input UpdateInput) (*ProfileDTO, error) {
	profile, err := s.repo.First(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading store profile")
		}
		profile = &models.StoreProfile{StoreName: "Bloom & Blossom"}
	}

	if input.StoreName != nil {
		profile.StoreName = *input.StoreName
	}
	if input.Tagline != nil {
		profile.Tagline = input.Tagline
	}
	if input.Description != nil {
		profile.Description = input.Description
	}
	if input.Email != nil {
		profile.Email = input.Email
	}
	if input.Phone != nil {
		profile.Phone = input.Phone
	}
	if input.Address != nil {
		profile.Address = input.Address
	}
	if input.Hours != nil {
		profile.Hours = input.Hours
	}
	if input.DeliveryInfo != nil {
		profile.DeliveryInfo = input.DeliveryInfo
	}
	if input.SocialMedia != nil {
		profile.SocialMedia = input.SocialMedia
	}

	if _, err := s.repo.Save(ctx, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving store profile")
	}
	return newProfileDTO(profile), nil
}

func newProfileDTO(profile *models.StoreProfile) *ProfileDTO {
	return &ProfileDTO{
		ID:           profile.ID,
		StoreName:    profile.StoreName,
		Tagline:      profile.Tagline,
		Description:  profile.Description,
		Email:        profile.Email,
		Phone:        profile.Phone,
		Address:      profile.Address,
		Hours:        profile.Hours,
		DeliveryInfo: profile.DeliveryInfo,
		SocialMedia:  profile.SocialMedia,
		UpdatedAt:    profile.UpdatedAt,
	}
}
