package request

import "parceiros_internet/internal/usecase"

// ContractRequest is the online contract form. Field-level validation
// (coverage city, installation period) happens in the use case; binding only
// guards the shape.
type ContractRequest struct {
	PlanID string `json:"plan_id" binding:"required"`

	FullName string `json:"full_name" binding:"required"`
	CpfCnpj  string `json:"cpf_cnpj" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	WhatsApp string `json:"whatsapp" binding:"required"`

	Cep          string `json:"cep" binding:"required"`
	City         string `json:"city" binding:"required"`
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`

	InstallationPeriod string `json:"installation_period" binding:"required"`
	Observations       string `json:"observations"`
}

func (r ContractRequest) ToForm() usecase.ContractForm {
	return usecase.ContractForm{
		PlanID:             r.PlanID,
		FullName:           r.FullName,
		CpfCnpj:            r.CpfCnpj,
		Email:              r.Email,
		Phone:              r.Phone,
		WhatsApp:           r.WhatsApp,
		Cep:                r.Cep,
		City:               r.City,
		Street:             r.Street,
		Number:             r.Number,
		Complement:         r.Complement,
		Neighborhood:       r.Neighborhood,
		InstallationPeriod: r.InstallationPeriod,
		Observations:       r.Observations,
	}
}

// LeadRequest is the callback form shown when the coverage check is negative.
type LeadRequest struct {
	Name         string `json:"name" binding:"required"`
	WhatsApp     string `json:"whatsapp" binding:"required"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	Source       string `json:"source"`
}

func (r LeadRequest) ToForm() usecase.LeadForm {
	return usecase.LeadForm{
		Name:         r.Name,
		WhatsApp:     r.WhatsApp,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		Source:       r.Source,
	}
}

// HandoffRequest asks for the pre-filled WhatsApp link of the external path.
type HandoffRequest struct {
	PlanID       string `json:"plan_id" binding:"required"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
}
