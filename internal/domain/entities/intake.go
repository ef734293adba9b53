package entities

import "time"

// Lead is a prospective customer captured when coverage is unavailable (or
// from any other capture form). Leads exist for later outreach only.
//
// Storage model (DynamoDB):
//   - PK: id
type Lead struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	WhatsApp     string    `json:"whatsapp"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	Source       string    `json:"source,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// InstallationPeriod is one of the three fixed installation slots offered on
// the contract form.
type InstallationPeriod string

const (
	InstallationManha InstallationPeriod = "manha"
	InstallationTarde InstallationPeriod = "tarde"
	InstallationNoite InstallationPeriod = "noite"
)

func (p InstallationPeriod) Valid() bool {
	switch p {
	case InstallationManha, InstallationTarde, InstallationNoite:
		return true
	}
	return false
}

// ContractStatus tracks what happened to a submitted contract request.
type ContractStatus string

const (
	ContractStatusRecebido   ContractStatus = "recebido"
	ContractStatusConfirmado ContractStatus = "confirmado"
	ContractStatusCancelado  ContractStatus = "cancelado"
)

// Contract is a submitted contract request, keyed by its protocol so the
// receipt shown to the customer can be looked up later.
//
// Storage model (DynamoDB):
//   - PK: protocol
//
// Plan fields are a snapshot taken at submission time; later catalog edits
// must not rewrite what the customer ordered.
type Contract struct {
	Protocol string `json:"protocol"`

	PlanID    string  `json:"plan_id"`
	PlanName  string  `json:"plan_name"`
	PlanSpeed int     `json:"plan_speed"`
	PlanPrice float64 `json:"plan_price"`

	FullName string `json:"full_name"`
	CpfCnpj  string `json:"cpf_cnpj"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`

	Cep          string `json:"cep"`
	City         string `json:"city"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`

	InstallationPeriod InstallationPeriod `json:"installation_period"`
	Observations       string             `json:"observations,omitempty"`

	Status    ContractStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
