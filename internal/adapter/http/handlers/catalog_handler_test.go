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

func TestCatalogHandler_ListPlans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/plans", h.ListPlans)

		uc.EXPECT().ListPlans(gomock.Any()).Return([]entities.Plan{
			{ID: "200mega", Name: "Essencial", Speed: 200, Price: 79.90},
			{ID: "400mega", Name: "Família", Speed: 400, Price: 99.90, Recommended: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "200mega" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if s, _ := body[0]["ideal_for"].(string); s == "" {
			t.Fatalf("expected ideal_for in response: %s", w.Body.String())
		}
	})

	t.Run("read failure reports unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/plans", h.ListPlans)

		uc.EXPECT().ListPlans(gomock.Any()).Return(nil, errors.New("table unreachable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_FeaturedPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/plans/featured", h.FeaturedPlan)

		uc.EXPECT().FeaturedPlan(gomock.Any()).Return(entities.Plan{ID: "400mega", Name: "Família", Speed: 400}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans/featured", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no featured plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/plans/featured", h.FeaturedPlan)

		uc.EXPECT().FeaturedPlan(gomock.Any()).Return(entities.Plan{}, usecase.ErrNoFeaturedPlan)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans/featured", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_CreatePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/plans", h.CreatePlan)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/plans", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/plans", h.CreatePlan)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/plans", bytes.NewBufferString(`{"name":"Essencial"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase rejects the plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/plans", h.CreatePlan)

		uc.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Return(entities.Plan{}, usecase.ErrInvalidPlanField)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/plans", bytes.NewBufferString(`{"name":"Essencial","speed":200,"price":-1}`))
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
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/plans", h.CreatePlan)

		uc.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, p entities.Plan) (entities.Plan, error) {
				if p.Name != "Essencial" || p.Speed != 200 {
					t.Fatalf("unexpected entity from payload: %+v", p)
				}
				p.ID = "200mega"
				return p, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/plans", bytes.NewBufferString(`{"name":"Essencial","speed":200,"price":79.90}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "200mega" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_UpdatePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/plans/:id", h.UpdatePlan)

		uc.EXPECT().UpdatePlan(gomock.Any(), "missing", gomock.Any()).Return(entities.Plan{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/plans/missing", bytes.NewBufferString(`{"name":"Essencial","speed":200,"price":79.90}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success takes the id from the path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/plans/:id", h.UpdatePlan)

		uc.EXPECT().UpdatePlan(gomock.Any(), "200mega", gomock.Any()).Return(entities.Plan{ID: "200mega", Name: "Essencial", Speed: 200}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/plans/200mega", bytes.NewBufferString(`{"name":"Essencial","speed":200,"price":79.90}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_DeletePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/admin/plans/:id", h.DeletePlan)

		uc.EXPECT().DeletePlan(gomock.Any(), "200mega").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/plans/200mega", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/admin/plans/:id", h.DeletePlan)

		uc.EXPECT().DeletePlan(gomock.Any(), "missing").Return(usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/plans/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_BusinessPlans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/business-plans", h.ListBusinessPlans)

		uc.EXPECT().ListBusinessPlans(gomock.Any()).Return([]entities.BusinessPlan{
			{ID: "emp-300", Name: "Startup", Speed: 300, Price: 199.90},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/business-plans", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list read failure reports unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/business-plans", h.ListBusinessPlans)

		uc.EXPECT().ListBusinessPlans(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/business-plans", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/business-plans", h.CreateBusinessPlan)

		uc.EXPECT().CreateBusinessPlan(gomock.Any(), gomock.Any()).Return(entities.BusinessPlan{ID: "emp-300", Name: "Startup", Speed: 300}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/business-plans", bytes.NewBufferString(`{"name":"Startup","speed":300,"price":199.90}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/admin/business-plans/:id", h.DeleteBusinessPlan)

		uc.EXPECT().DeleteBusinessPlan(gomock.Any(), "missing").Return(usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/business-plans/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapCatalogError(t *testing.T) {
	if got := mapCatalogError(usecase.ErrInvalidPlanID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrInvalidPlanField); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrPlanNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(usecase.ErrNoFeaturedPlan); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
