package interfaces

import (
	"context"
	"parceiros_internet/internal/domain/entities"
)

// ITestimonialRepository abstracts DynamoDB persistence for testimonials.
type ITestimonialRepository interface {
	List(ctx context.Context) ([]entities.Testimonial, error)
	GetByID(ctx context.Context, id string) (entities.Testimonial, error)
	Create(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error)
	Update(ctx context.Context, t entities.Testimonial) (entities.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

// ITrustedCompanyRepository abstracts DynamoDB persistence for partner logos.
type ITrustedCompanyRepository interface {
	List(ctx context.Context) ([]entities.TrustedCompany, error)
	GetByID(ctx context.Context, id string) (entities.TrustedCompany, error)
	Create(ctx context.Context, c entities.TrustedCompany) (entities.TrustedCompany, error)
	Delete(ctx context.Context, id string) error
}

// ISiteSettingRepository abstracts DynamoDB persistence for site settings.
// Upsert inserts or replaces by key.
type ISiteSettingRepository interface {
	List(ctx context.Context) ([]entities.SiteSetting, error)
	Upsert(ctx context.Context, s entities.SiteSetting) (entities.SiteSetting, error)
}
