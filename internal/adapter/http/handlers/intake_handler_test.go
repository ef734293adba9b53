package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"parceiros_internet/internal/adapter/http/handlers/mocks"
	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const contractBody = `{
	"plan_id": "400mega",
	"full_name": "Maria Silva",
	"cpf_cnpj": "123.456.789-00",
	"email": "maria@example.com",
	"phone": "(47) 3333-4444",
	"whatsapp": "(47) 99999-8888",
	"cep": "88330-000",
	"city": "Balneário Camboriú",
	"street": "Av. Brasil",
	"number": "1500",
	"neighborhood": "Centro",
	"installation_period": "manha"
}`

func TestIntakeHandler_SubmitContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.SubmitContract)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.SubmitContract)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString(`{"plan_id":"400mega"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("city outside coverage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.SubmitContract)

		uc.EXPECT().SubmitContract(gomock.Any(), gomock.Any()).Return(usecase.ContractReceipt{}, usecase.ErrUnknownContractCity)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString(contractBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.SubmitContract)

		uc.EXPECT().SubmitContract(gomock.Any(), gomock.Any()).Return(usecase.ContractReceipt{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString(contractBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns the protocol and the follow-up link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts", h.SubmitContract)

		uc.EXPECT().SubmitContract(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, form usecase.ContractForm) (usecase.ContractReceipt, error) {
				if form.PlanID != "400mega" || form.FullName != "Maria Silva" {
					t.Fatalf("unexpected form from payload: %+v", form)
				}
				return usecase.ContractReceipt{
					Contract:    entities.Contract{Protocol: "PIABC123", Status: entities.ContractStatusRecebido},
					WhatsAppURL: "https://wa.me/5547999999999?text=PIABC123",
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts", bytes.NewBufferString(contractBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		contract, _ := body["contract"].(map[string]any)
		if contract["protocol"] != "PIABC123" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["whatsapp_url"] == "" {
			t.Fatalf("expected whatsapp_url: %s", w.Body.String())
		}
	})
}

func TestIntakeHandler_ContractByProtocol(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed protocol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.GET("/v1/contracts/:protocol", h.ContractByProtocol)

		uc.EXPECT().ContractByProtocol(gomock.Any(), "XX123").Return(entities.Contract{}, usecase.ErrInvalidProtocol)

		req := httptest.NewRequest(http.MethodGet, "/v1/contracts/XX123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.GET("/v1/contracts/:protocol", h.ContractByProtocol)

		uc.EXPECT().ContractByProtocol(gomock.Any(), "PIMISSING").Return(entities.Contract{}, usecase.ErrContractNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/contracts/PIMISSING", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.GET("/v1/contracts/:protocol", h.ContractByProtocol)

		uc.EXPECT().ContractByProtocol(gomock.Any(), "PIABC123").Return(
			entities.Contract{Protocol: "PIABC123", PlanName: "Família", Status: entities.ContractStatusRecebido}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/contracts/PIABC123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["protocol"] != "PIABC123" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestIntakeHandler_CaptureLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CaptureLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CaptureLead)

		uc.EXPECT().CaptureLead(gomock.Any(), gomock.Any()).Return(
			entities.Lead{ID: "lead-1", Name: "Ana", City: "Camboriú"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(
			`{"name":"Ana","whatsapp":"47999998888","neighborhood":"Monte Alegre","city":"Camboriú","source":"coverage_check"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestIntakeHandler_Handoff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing plan id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/handoff", h.Handoff)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/handoff", bytes.NewBufferString(`{"name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/v1/contracts/handoff", h.Handoff)

		uc.EXPECT().HandoffURL(gomock.Any(), "400mega", "Ana", "Camboriú", "Centro").Return(
			"https://wa.me/5547999999999?text=oi", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/handoff", bytes.NewBufferString(
			`{"plan_id":"400mega","name":"Ana","city":"Camboriú","neighborhood":"Centro"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["whatsapp_url"] != "https://wa.me/5547999999999?text=oi" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestIntakeHandler_AdminLists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("leads success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/leads", h.ListLeads)

		uc.EXPECT().ListLeads(gomock.Any()).Return([]entities.Lead{
			{ID: "lead-1", Name: "Ana", City: "Camboriú"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/leads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "lead-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("leads read failure reports unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/leads", h.ListLeads)

		uc.EXPECT().ListLeads(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/leads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("contracts success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/contracts", h.ListContracts)

		uc.EXPECT().ListContracts(gomock.Any()).Return([]entities.Contract{
			{Protocol: "PIABC123", PlanName: "Família"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/contracts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["protocol"] != "PIABC123" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapIntakeError(t *testing.T) {
	if got := mapIntakeError(usecase.ErrMissingContractField); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapIntakeError(usecase.ErrInvalidInstallationPeriod); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapIntakeError(usecase.ErrMissingLeadField); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapIntakeError(usecase.ErrPlanNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapIntakeError(usecase.ErrContractNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapIntakeError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
