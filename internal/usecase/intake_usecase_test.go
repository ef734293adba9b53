package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/domain/intake"
	mock_interfaces "parceiros_internet/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validContractForm() ContractForm {
	return ContractForm{
		PlanID:             "400mega",
		FullName:           "Maria Silva",
		CpfCnpj:            "123.456.789-00",
		Email:              "maria@example.com",
		Phone:              "(47) 3333-4444",
		WhatsApp:           "(47) 99999-8888",
		Cep:                "88330-000",
		City:               "Balneário Camboriú",
		Street:             "Av. Brasil",
		Number:             "1500",
		Neighborhood:       "Centro",
		InstallationPeriod: "manha",
	}
}

func TestIntakeUseCase_SubmitContract(t *testing.T) {
	t.Run("missing required field", func(t *testing.T) {
		uc := NewIntakeUseCase(coverageSite(), nil, nil, nil)
		form := validContractForm()
		form.FullName = "   "
		_, err := uc.SubmitContract(context.Background(), form)
		if !errors.Is(err, ErrMissingContractField) {
			t.Fatalf("expected ErrMissingContractField, got %v", err)
		}
	})

	t.Run("city outside coverage", func(t *testing.T) {
		uc := NewIntakeUseCase(coverageSite(), nil, nil, nil)
		form := validContractForm()
		form.City = "Itajaí"
		_, err := uc.SubmitContract(context.Background(), form)
		if !errors.Is(err, ErrUnknownContractCity) {
			t.Fatalf("expected ErrUnknownContractCity, got %v", err)
		}
	})

	t.Run("invalid installation period", func(t *testing.T) {
		uc := NewIntakeUseCase(coverageSite(), nil, nil, nil)
		form := validContractForm()
		form.InstallationPeriod = "madrugada"
		_, err := uc.SubmitContract(context.Background(), form)
		if !errors.Is(err, ErrInvalidInstallationPeriod) {
			t.Fatalf("expected ErrInvalidInstallationPeriod, got %v", err)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		plans := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), plans, nil, nil)

		plans.EXPECT().GetByID(gomock.Any(), "400mega").Return(entities.Plan{}, nil)

		_, err := uc.SubmitContract(context.Background(), validContractForm())
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("success snapshots the plan and issues a protocol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		plans := mock_interfaces.NewMockIPlanRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), plans, contracts, nil)

		plans.EXPECT().GetByID(gomock.Any(), "400mega").Return(
			entities.Plan{ID: "400mega", Name: "Família", Speed: 400, Price: 99.90}, nil)
		contracts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if !strings.HasPrefix(c.Protocol, intake.ProtocolPrefix) {
					t.Fatalf("expected protocol prefix, got %q", c.Protocol)
				}
				if c.PlanName != "Família" || c.PlanSpeed != 400 || c.PlanPrice != 99.90 {
					t.Fatalf("plan snapshot missing: %+v", c)
				}
				if c.Status != entities.ContractStatusRecebido {
					t.Fatalf("expected recebido status, got %s", c.Status)
				}
				if c.CreatedAt.IsZero() {
					t.Fatal("expected CreatedAt")
				}
				return c, nil
			},
		)

		receipt, err := uc.SubmitContract(context.Background(), validContractForm())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.Contract.Protocol == "" {
			t.Fatal("expected protocol in receipt")
		}
		if !strings.HasPrefix(receipt.WhatsAppURL, "https://wa.me/5547999999999?text=") {
			t.Fatalf("unexpected whatsapp url: %s", receipt.WhatsAppURL)
		}
		if !strings.Contains(receipt.WhatsAppURL, receipt.Contract.Protocol) {
			t.Fatalf("expected protocol in follow-up message: %s", receipt.WhatsAppURL)
		}
	})

	t.Run("persistence failure surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		plans := mock_interfaces.NewMockIPlanRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), plans, contracts, nil)

		plans.EXPECT().GetByID(gomock.Any(), "400mega").Return(entities.Plan{ID: "400mega", Name: "Família", Speed: 400, Price: 99.90}, nil)
		contracts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contract{}, errors.New("db"))

		_, err := uc.SubmitContract(context.Background(), validContractForm())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestIntakeUseCase_ContractByProtocol(t *testing.T) {
	t.Run("rejects malformed protocol", func(t *testing.T) {
		uc := NewIntakeUseCase(coverageSite(), nil, nil, nil)
		for _, p := range []string{"", "   ", "XX123"} {
			if _, err := uc.ContractByProtocol(context.Background(), p); !errors.Is(err, ErrInvalidProtocol) {
				t.Fatalf("expected ErrInvalidProtocol for %q, got %v", p, err)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), nil, contracts, nil)

		contracts.EXPECT().GetByProtocol(gomock.Any(), "PIMISSING").Return(entities.Contract{}, nil)

		_, err := uc.ContractByProtocol(context.Background(), "PIMISSING")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), nil, contracts, nil)

		contracts.EXPECT().GetByProtocol(gomock.Any(), "PIABC123").Return(entities.Contract{Protocol: "PIABC123"}, nil)

		c, err := uc.ContractByProtocol(context.Background(), " PIABC123 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Protocol != "PIABC123" {
			t.Fatalf("unexpected contract: %+v", c)
		}
	})
}

func TestIntakeUseCase_CaptureLead(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		uc := NewIntakeUseCase(coverageSite(), nil, nil, nil)
		_, err := uc.CaptureLead(context.Background(), LeadForm{Name: "Ana", WhatsApp: "", Neighborhood: "Centro", City: "Camboriú"})
		if !errors.Is(err, ErrMissingLeadField) {
			t.Fatalf("expected ErrMissingLeadField, got %v", err)
		}
	})

	t.Run("success trims and fills id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), nil, nil, leads)

		leads.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.ID == "" || l.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamp, got %+v", l)
				}
				if l.Name != "Ana" {
					t.Fatalf("expected trimmed name, got %q", l.Name)
				}
				return l, nil
			},
		)

		lead, err := uc.CaptureLead(context.Background(), LeadForm{
			Name: " Ana ", WhatsApp: "47999998888", Neighborhood: "Centro", City: "Camboriú", Source: "coverage_check",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Source != "coverage_check" {
			t.Fatalf("unexpected lead: %+v", lead)
		}
	})
}

func TestIntakeUseCase_AdminLists(t *testing.T) {
	t.Run("leads newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), nil, nil, leads)

		older := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		newer := older.Add(time.Hour)
		leads.EXPECT().List(gomock.Any()).Return([]entities.Lead{
			{ID: "old", CreatedAt: older},
			{ID: "new", CreatedAt: newer},
		}, nil)

		list, err := uc.ListLeads(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 || list[0].ID != "new" {
			t.Fatalf("expected newest first, got %+v", list)
		}
	})

	t.Run("contracts newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), nil, contracts, nil)

		older := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		newer := older.Add(time.Hour)
		contracts.EXPECT().List(gomock.Any()).Return([]entities.Contract{
			{Protocol: "PIOLD", CreatedAt: older},
			{Protocol: "PINEW", CreatedAt: newer},
		}, nil)

		list, err := uc.ListContracts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 || list[0].Protocol != "PINEW" {
			t.Fatalf("expected newest first, got %+v", list)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), nil, nil, leads)

		leads.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListLeads(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestIntakeUseCase_HandoffURL(t *testing.T) {
	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		plans := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), plans, nil, nil)

		plans.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Plan{}, nil)

		_, err := uc.HandoffURL(context.Background(), "missing", "", "", "")
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("empty city falls back to the first configured city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		plans := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewIntakeUseCase(coverageSite(), plans, nil, nil)

		plans.EXPECT().GetByID(gomock.Any(), "400mega").Return(entities.Plan{ID: "400mega", Name: "Família", Speed: 400}, nil)

		url, err := uc.HandoffURL(context.Background(), "400mega", "", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(url, "https://wa.me/5547999999999?text=") {
			t.Fatalf("unexpected url: %s", url)
		}
		// Unfilled fields show the placeholder, not an empty line.
		if !strings.Contains(url, "%28a+confirmar%29") {
			t.Fatalf("expected placeholder in message: %s", url)
		}
	})
}
