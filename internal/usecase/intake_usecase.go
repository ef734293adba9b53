package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/domain/intake"
	"parceiros_internet/internal/infrastructure/config"
	"parceiros_internet/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingContractField      = errors.New("missing required contract field")
	ErrUnknownContractCity       = errors.New("contract city is outside the coverage area")
	ErrInvalidInstallationPeriod = errors.New("invalid installation period")
	ErrMissingLeadField          = errors.New("missing required lead field")
	ErrContractNotFound          = errors.New("contract not found")
	ErrInvalidProtocol           = errors.New("invalid protocol")
)

// ContractForm is the online contract submission as entered by the visitor.
type ContractForm struct {
	PlanID string

	FullName string
	CpfCnpj  string
	Email    string
	Phone    string
	WhatsApp string

	Cep          string
	City         string
	Street       string
	Number       string
	Complement   string
	Neighborhood string

	InstallationPeriod string
	Observations       string
}

// LeadForm is a callback request, usually captured when the coverage check
// came back negative.
type LeadForm struct {
	Name         string
	WhatsApp     string
	Neighborhood string
	City         string
	Source       string
}

// ContractReceipt is what the success screen needs: the stored contract (with
// its protocol) and the WhatsApp follow-up link referencing it.
type ContractReceipt struct {
	Contract    entities.Contract
	WhatsAppURL string
}

// IIntakeUseCase runs the lead/contract intake workflow.
type IIntakeUseCase interface {
	SubmitContract(ctx context.Context, form ContractForm) (ContractReceipt, error)
	ContractByProtocol(ctx context.Context, protocol string) (entities.Contract, error)
	CaptureLead(ctx context.Context, form LeadForm) (entities.Lead, error)
	// HandoffURL composes the pre-filled WhatsApp link for the external
	// ("atendimento humanizado") path. Name and neighborhood may be empty.
	HandoffURL(ctx context.Context, planID, name, city, neighborhood string) (string, error)

	// Admin views.
	ListLeads(ctx context.Context) ([]entities.Lead, error)
	ListContracts(ctx context.Context) ([]entities.Contract, error)
}

type IntakeUseCase struct {
	site      config.Site
	plans     interfaces.IPlanRepository
	contracts interfaces.IContractRepository
	leads     interfaces.ILeadRepository
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(
	site config.Site,
	plans interfaces.IPlanRepository,
	contracts interfaces.IContractRepository,
	leads interfaces.ILeadRepository,
) *IntakeUseCase {
	return &IntakeUseCase{site: site, plans: plans, contracts: contracts, leads: leads}
}

// SubmitContract runs the online path of the intake flow end to end:
// select the online path, validate the draft, submit, and produce the
// protocol receipt. A failed persistence returns the flow to the form state
// so the caller can retry with the draft intact.
func (u *IntakeUseCase) SubmitContract(ctx context.Context, form ContractForm) (ContractReceipt, error) {
	flow := intake.NewFlow()
	_ = flow.SelectOnline()

	form = trimContractForm(form)
	if err := u.validateContractForm(form); err != nil {
		return ContractReceipt{}, err
	}

	plan, err := u.plans.GetByID(ctx, form.PlanID)
	if err != nil {
		return ContractReceipt{}, err
	}
	if plan.ID == "" {
		return ContractReceipt{}, ErrPlanNotFound
	}

	_ = flow.BeginSubmit()

	now := time.Now().UTC()
	contract := entities.Contract{
		Protocol: intake.NewProtocol(now),

		PlanID:    plan.ID,
		PlanName:  plan.Name,
		PlanSpeed: plan.Speed,
		PlanPrice: plan.Price,

		FullName: form.FullName,
		CpfCnpj:  form.CpfCnpj,
		Email:    form.Email,
		Phone:    form.Phone,
		WhatsApp: form.WhatsApp,

		Cep:          form.Cep,
		City:         form.City,
		Street:       form.Street,
		Number:       form.Number,
		Complement:   form.Complement,
		Neighborhood: form.Neighborhood,

		InstallationPeriod: entities.InstallationPeriod(form.InstallationPeriod),
		Observations:       form.Observations,

		Status:    entities.ContractStatusRecebido,
		CreatedAt: now,
	}

	stored, err := u.contracts.Create(ctx, contract)
	if err != nil {
		_ = flow.Fail()
		log.Printf("[intake][contract] create failed protocol=%s err=%v", contract.Protocol, err)
		return ContractReceipt{}, err
	}
	_ = flow.Complete()
	log.Printf("[intake][contract] received protocol=%s plan=%s city=%s", stored.Protocol, stored.PlanName, stored.City)

	return ContractReceipt{
		Contract:    stored,
		WhatsAppURL: buildWhatsAppLink(u.site.Contact.WhatsApp, protocolFollowUpMessage(stored.Protocol)),
	}, nil
}

func (u *IntakeUseCase) ContractByProtocol(ctx context.Context, protocol string) (entities.Contract, error) {
	protocol = strings.TrimSpace(protocol)
	if protocol == "" || !strings.HasPrefix(protocol, intake.ProtocolPrefix) {
		return entities.Contract{}, ErrInvalidProtocol
	}
	c, err := u.contracts.GetByProtocol(ctx, protocol)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.Protocol == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *IntakeUseCase) CaptureLead(ctx context.Context, form LeadForm) (entities.Lead, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.WhatsApp = strings.TrimSpace(form.WhatsApp)
	form.Neighborhood = strings.TrimSpace(form.Neighborhood)
	form.City = strings.TrimSpace(form.City)
	if form.Name == "" || form.WhatsApp == "" || form.Neighborhood == "" || form.City == "" {
		return entities.Lead{}, ErrMissingLeadField
	}

	lead := entities.Lead{
		ID:           uuid.NewString(),
		Name:         form.Name,
		WhatsApp:     form.WhatsApp,
		Neighborhood: form.Neighborhood,
		City:         form.City,
		Source:       strings.TrimSpace(form.Source),
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := u.leads.Create(ctx, lead)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[intake][lead] captured id=%s city=%s neighborhood=%s", stored.ID, stored.City, stored.Neighborhood)
	return stored, nil
}

func (u *IntakeUseCase) HandoffURL(ctx context.Context, planID, name, city, neighborhood string) (string, error) {
	flow := intake.NewFlow()
	_ = flow.SelectExternalHandoff()

	plan, err := u.plans.GetByID(ctx, strings.TrimSpace(planID))
	if err != nil {
		return "", err
	}
	if plan.ID == "" {
		return "", ErrPlanNotFound
	}
	if city = strings.TrimSpace(city); city == "" {
		city = u.site.CityNames()[0]
	}
	msg := contractHandoffMessage(plan, strings.TrimSpace(name), city, strings.TrimSpace(neighborhood))
	return buildWhatsAppLink(u.site.Contact.WhatsApp, msg), nil
}

// ListLeads is the admin callback queue, newest first.
func (u *IntakeUseCase) ListLeads(ctx context.Context) ([]entities.Lead, error) {
	leads, err := u.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(leads, func(i, j int) bool { return leads[i].CreatedAt.After(leads[j].CreatedAt) })
	return leads, nil
}

// ListContracts is the admin intake queue, newest first.
func (u *IntakeUseCase) ListContracts(ctx context.Context) ([]entities.Contract, error) {
	contracts, err := u.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(contracts, func(i, j int) bool { return contracts[i].CreatedAt.After(contracts[j].CreatedAt) })
	return contracts, nil
}

func trimContractForm(f ContractForm) ContractForm {
	f.PlanID = strings.TrimSpace(f.PlanID)
	f.FullName = strings.TrimSpace(f.FullName)
	f.CpfCnpj = strings.TrimSpace(f.CpfCnpj)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.WhatsApp = strings.TrimSpace(f.WhatsApp)
	f.Cep = strings.TrimSpace(f.Cep)
	f.City = strings.TrimSpace(f.City)
	f.Street = strings.TrimSpace(f.Street)
	f.Number = strings.TrimSpace(f.Number)
	f.Complement = strings.TrimSpace(f.Complement)
	f.Neighborhood = strings.TrimSpace(f.Neighborhood)
	f.InstallationPeriod = strings.TrimSpace(f.InstallationPeriod)
	f.Observations = strings.TrimSpace(f.Observations)
	return f
}

func (u *IntakeUseCase) validateContractForm(f ContractForm) error {
	required := []string{
		f.PlanID, f.FullName, f.CpfCnpj, f.Email, f.Phone, f.WhatsApp,
		f.Cep, f.City, f.Street, f.Number, f.Neighborhood,
	}
	for _, v := range required {
		if v == "" {
			return ErrMissingContractField
		}
	}
	if _, ok := u.site.CityByName(f.City); !ok {
		return ErrUnknownContractCity
	}
	if !entities.InstallationPeriod(f.InstallationPeriod).Valid() {
		return ErrInvalidInstallationPeriod
	}
	return nil
}
