package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingTestimonialField = errors.New("missing required testimonial field")
	ErrInvalidRating           = errors.New("rating must be between 1 and 5")
	ErrTestimonialNotFound     = errors.New("testimonial not found")
	ErrMissingCompanyField     = errors.New("missing required company field")
	ErrCompanyNotFound         = errors.New("company not found")
	ErrMissingSettingKey       = errors.New("setting key is required")
)

// IContentUseCase covers the remaining admin-editable content: testimonials,
// partner logos and site settings.
type IContentUseCase interface {
	ListTestimonials(ctx context.Context) ([]entities.Testimonial, error)
	CreateTestimonial(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, t entities.Testimonial) (entities.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error

	ListCompanies(ctx context.Context) ([]entities.TrustedCompany, error)
	AddCompany(ctx context.Context, name, filename, contentType string, logo io.Reader) (entities.TrustedCompany, error)
	DeleteCompany(ctx context.Context, id string) error

	ListSettings(ctx context.Context) ([]entities.SiteSetting, error)
	UpsertSetting(ctx context.Context, key, value string) (entities.SiteSetting, error)
}

type ContentUseCase struct {
	testimonials interfaces.ITestimonialRepository
	companies    interfaces.ITrustedCompanyRepository
	settings     interfaces.ISiteSettingRepository
	logos        interfaces.ILogoStorage
}

var _ IContentUseCase = (*ContentUseCase)(nil)

func NewContentUseCase(
	testimonials interfaces.ITestimonialRepository,
	companies interfaces.ITrustedCompanyRepository,
	settings interfaces.ISiteSettingRepository,
	logos interfaces.ILogoStorage,
) *ContentUseCase {
	return &ContentUseCase{
		testimonials: testimonials,
		companies:    companies,
		settings:     settings,
		logos:        logos,
	}
}

func (u *ContentUseCase) ListTestimonials(ctx context.Context) ([]entities.Testimonial, error) {
	return u.testimonials.List(ctx)
}

func (u *ContentUseCase) CreateTestimonial(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error) {
	if err := validateTestimonial(&t); err != nil {
		return entities.Testimonial{}, err
	}
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	return u.testimonials.Create(ctx, t)
}

func (u *ContentUseCase) UpdateTestimonial(ctx context.Context, id string, t entities.Testimonial) (entities.Testimonial, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Testimonial{}, ErrTestimonialNotFound
	}
	if err := validateTestimonial(&t); err != nil {
		return entities.Testimonial{}, err
	}

	existing, err := u.testimonials.GetByID(ctx, id)
	if err != nil {
		return entities.Testimonial{}, err
	}
	if existing.ID == "" {
		return entities.Testimonial{}, ErrTestimonialNotFound
	}
	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	return u.testimonials.Update(ctx, t)
}

func (u *ContentUseCase) DeleteTestimonial(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	existing, err := u.testimonials.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrTestimonialNotFound
	}
	return u.testimonials.Delete(ctx, id)
}

func (u *ContentUseCase) ListCompanies(ctx context.Context) ([]entities.TrustedCompany, error) {
	return u.companies.List(ctx)
}

// AddCompany is the two-step upload: put the logo in the bucket, then insert
// the row pointing at it. If the insert fails the uploaded object is removed
// so the bucket does not accumulate orphans.
func (u *ContentUseCase) AddCompany(ctx context.Context, name, filename, contentType string, logo io.Reader) (entities.TrustedCompany, error) {
	name = strings.TrimSpace(name)
	if name == "" || logo == nil {
		return entities.TrustedCompany{}, ErrMissingCompanyField
	}

	id := uuid.NewString()
	key := fmt.Sprintf("logos/%s%s", id, strings.ToLower(path.Ext(filename)))
	url, err := u.logos.Upload(ctx, key, contentType, logo)
	if err != nil {
		return entities.TrustedCompany{}, err
	}

	company := entities.TrustedCompany{
		ID:        id,
		Name:      name,
		LogoURL:   url,
		LogoPath:  key,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := u.companies.Create(ctx, company)
	if err != nil {
		if rmErr := u.logos.Remove(ctx, key); rmErr != nil {
			log.Printf("[content][logo] orphan cleanup failed key=%s err=%v", key, rmErr)
		}
		return entities.TrustedCompany{}, err
	}
	return stored, nil
}

func (u *ContentUseCase) DeleteCompany(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	existing, err := u.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrCompanyNotFound
	}
	if err := u.companies.Delete(ctx, id); err != nil {
		return err
	}
	if existing.LogoPath != "" {
		if err := u.logos.Remove(ctx, existing.LogoPath); err != nil {
			// Row is gone, blob removal is best effort.
			log.Printf("[content][logo] remove failed key=%s err=%v", existing.LogoPath, err)
		}
	}
	return nil
}

func (u *ContentUseCase) ListSettings(ctx context.Context) ([]entities.SiteSetting, error) {
	return u.settings.List(ctx)
}

func (u *ContentUseCase) UpsertSetting(ctx context.Context, key, value string) (entities.SiteSetting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.SiteSetting{}, ErrMissingSettingKey
	}
	return u.settings.Upsert(ctx, entities.SiteSetting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	})
}

func validateTestimonial(t *entities.Testimonial) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Location = strings.TrimSpace(t.Location)
	t.Text = strings.TrimSpace(t.Text)
	if t.Name == "" || t.Location == "" || t.Text == "" {
		return ErrMissingTestimonialField
	}
	if t.Rating < 1 || t.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
