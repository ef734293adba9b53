package response

import (
	"time"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/usecase"
)

type ContractResponse struct {
	Protocol string `json:"protocol"`

	PlanID    string  `json:"plan_id"`
	PlanName  string  `json:"plan_name"`
	PlanSpeed int     `json:"plan_speed"`
	PlanPrice float64 `json:"plan_price"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`

	Cep          string `json:"cep"`
	City         string `json:"city"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`

	InstallationPeriod string `json:"installation_period"`
	Observations       string `json:"observations,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		Protocol:           c.Protocol,
		PlanID:             c.PlanID,
		PlanName:           c.PlanName,
		PlanSpeed:          c.PlanSpeed,
		PlanPrice:          c.PlanPrice,
		FullName:           c.FullName,
		Email:              c.Email,
		Phone:              c.Phone,
		WhatsApp:           c.WhatsApp,
		Cep:                c.Cep,
		City:               c.City,
		Street:             c.Street,
		Number:             c.Number,
		Complement:         c.Complement,
		Neighborhood:       c.Neighborhood,
		InstallationPeriod: string(c.InstallationPeriod),
		Observations:       c.Observations,
		Status:             string(c.Status),
		CreatedAt:          c.CreatedAt,
	}
}

func FromContracts(list []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromContract(c))
	}
	return out
}

// ContractReceiptResponse is what the success screen renders: the stored
// contract plus the WhatsApp follow-up link carrying its protocol.
type ContractReceiptResponse struct {
	Contract    ContractResponse `json:"contract"`
	WhatsAppURL string           `json:"whatsapp_url"`
}

func FromReceipt(r usecase.ContractReceipt) ContractReceiptResponse {
	return ContractReceiptResponse{
		Contract:    FromContract(r.Contract),
		WhatsAppURL: r.WhatsAppURL,
	}
}

type LeadResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	WhatsApp     string    `json:"whatsapp"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	Source       string    `json:"source,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		WhatsApp:     l.WhatsApp,
		Neighborhood: l.Neighborhood,
		City:         l.City,
		Source:       l.Source,
		CreatedAt:    l.CreatedAt,
	}
}

func FromLeads(list []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromLead(l))
	}
	return out
}

// HandoffResponse carries a pre-filled wa.me link.
type HandoffResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
}
