package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parceiros_internet/internal/domain/quiz"
	"parceiros_internet/internal/infrastructure/config"
	"parceiros_internet/internal/usecase"

	"github.com/gin-gonic/gin"
)

// The coverage use case has no external dependencies, so these tests run it
// for real against a literal site config.
func coverageHandler() *CoverageHandler {
	site := config.Site{
		Contact: config.Contact{WhatsApp: "5547999999999"},
		Cities: []config.City{
			{ID: config.CityBalnearioCamboriu, Name: "Balneário Camboriú", Neighborhoods: []string{"Centro", "Barra Sul"}},
			{ID: config.CityCamboriu, Name: "Camboriú", Neighborhoods: []string{"Centro", "Monte Alegre"}},
		},
		Quiz: []quiz.Question{{ID: "people", Options: []quiz.Option{{Value: 1, Points: 1}}}},
	}
	return NewCoverageHandler(usecase.NewCoverageUseCase(site))
}

func TestCoverageHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := coverageHandler()
	r := gin.New()
	r.GET("/v1/coverage/check", h.Check)

	t.Run("short cep", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/coverage/check?cep=1234", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("covered cep with punctuation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/coverage/check?cep=88330-000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["covered"] != true || body["city"] != "Balneário Camboriú" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("uncovered cep", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/coverage/check?cep=99999999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["covered"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCoverageHandler_Cities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := coverageHandler()
	r := gin.New()
	r.GET("/v1/coverage/cities", h.Cities)

	req := httptest.NewRequest(http.MethodGet, "/v1/coverage/cities", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["name"] != "Balneário Camboriú" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestCoverageHandler_Neighborhoods(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := coverageHandler()
	r := gin.New()
	r.GET("/v1/coverage/neighborhoods", h.Neighborhoods)

	t.Run("known city", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/coverage/neighborhoods?city=Camboriú", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[1] != "Monte Alegre" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown city", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/coverage/neighborhoods?city=Itajaí", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
