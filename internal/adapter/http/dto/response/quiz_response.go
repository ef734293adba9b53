package response

import "parceiros_internet/internal/domain/entities"

// RecommendationResponse is the quiz result: the recommended plan and the
// "contratar agora" WhatsApp link for it.
type RecommendationResponse struct {
	Plan        PlanResponse `json:"plan"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

func FromRecommendation(p entities.Plan, whatsappURL string) RecommendationResponse {
	return RecommendationResponse{
		Plan:        FromPlan(p),
		WhatsAppURL: whatsappURL,
	}
}
