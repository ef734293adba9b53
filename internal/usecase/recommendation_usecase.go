package usecase

import (
	"context"
	"errors"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/domain/quiz"
	"parceiros_internet/internal/infrastructure/config"
	"parceiros_internet/internal/usecase/interfaces"
)

var (
	ErrUnknownQuizQuestion = errors.New("unknown quiz question id")
	ErrCatalogShape        = errors.New("quiz recommendation requires exactly four plans")
)

// IRecommendationUseCase maps a completed quiz answer set to one plan.
type IRecommendationUseCase interface {
	Questions() []quiz.Question
	Recommend(ctx context.Context, answers map[string]int) (entities.Plan, error)
	// HandoffURL is the "contratar agora" WhatsApp link shown on the quiz
	// result screen.
	HandoffURL(plan entities.Plan) string
}

// RecommendationUseCase implements the positional tier mapping: total points
// pick the k-th plan of the speed-ascending catalog. The thresholds are
// calibrated against a four-plan catalog, so any other catalog size is
// rejected instead of silently recommending the wrong plan.
type RecommendationUseCase struct {
	site  config.Site
	plans interfaces.IPlanRepository
}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

func NewRecommendationUseCase(site config.Site, plans interfaces.IPlanRepository) *RecommendationUseCase {
	return &RecommendationUseCase{site: site, plans: plans}
}

func (u *RecommendationUseCase) Questions() []quiz.Question {
	return u.site.Quiz
}

func (u *RecommendationUseCase) Recommend(ctx context.Context, answers map[string]int) (entities.Plan, error) {
	known := make(map[string]bool, len(u.site.Quiz))
	for _, q := range u.site.Quiz {
		known[q.ID] = true
	}
	for id := range answers {
		if !known[id] {
			return entities.Plan{}, ErrUnknownQuizQuestion
		}
	}

	list, err := u.plans.List(ctx)
	if err != nil {
		return entities.Plan{}, err
	}
	if len(list) != quiz.CatalogSize {
		return entities.Plan{}, ErrCatalogShape
	}

	return list[quiz.TierIndex(quiz.Score(answers))], nil
}

func (u *RecommendationUseCase) HandoffURL(plan entities.Plan) string {
	return buildWhatsAppLink(u.site.Contact.WhatsApp, quizResultMessage(plan))
}
