package routes

import (
	"context"
	"log"
	"os"
	"time"

	"parceiros_internet/internal/infrastructure/config"
	"parceiros_internet/internal/usecase/interfaces"
)

// seedDefaults loads the built-in catalog and testimonials into empty tables.
// Gated by SEED_DEFAULT_DATA=true; tables that already have rows are left
// alone, so a redeploy never clobbers admin edits.
func seedDefaults(
	plans interfaces.IPlanRepository,
	businessPlans interfaces.IBusinessPlanRepository,
	testimonials interfaces.ITestimonialRepository,
) {
	if os.Getenv("SEED_DEFAULT_DATA") != "true" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if existing, err := plans.List(ctx); err != nil {
		log.Printf("[seed] plans check failed: %v", err)
	} else if len(existing) == 0 {
		for _, p := range config.DefaultPlans() {
			if _, err := plans.Create(ctx, p); err != nil {
				log.Printf("[seed] plan %s failed: %v", p.ID, err)
			}
		}
		log.Printf("[seed] plans loaded")
	}

	if existing, err := businessPlans.List(ctx); err != nil {
		log.Printf("[seed] business plans check failed: %v", err)
	} else if len(existing) == 0 {
		for _, p := range config.DefaultBusinessPlans() {
			if _, err := businessPlans.Create(ctx, p); err != nil {
				log.Printf("[seed] business plan %s failed: %v", p.ID, err)
			}
		}
		log.Printf("[seed] business plans loaded")
	}

	if existing, err := testimonials.List(ctx); err != nil {
		log.Printf("[seed] testimonials check failed: %v", err)
	} else if len(existing) == 0 {
		for _, t := range config.DefaultTestimonials() {
			if _, err := testimonials.Create(ctx, t); err != nil {
				log.Printf("[seed] testimonial %s failed: %v", t.ID, err)
			}
		}
		log.Printf("[seed] testimonials loaded")
	}
}
