package handlers

import (
	"errors"
	"net/http"

	request "parceiros_internet/internal/adapter/http/dto/request"
	response "parceiros_internet/internal/adapter/http/dto/response"
	"parceiros_internet/internal/usecase"
	"parceiros_internet/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid plan payload", http.StatusBadRequest)
)

// CatalogHandler serves the plan catalog: public reads plus the admin CRUD
// behind the auth middleware.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListPlans(c *gin.Context) {
	plans, err := h.usecase.ListPlans(c.Request.Context())
	if err != nil {
		appErr := mapCatalogReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlans(plans))
}

func (h *CatalogHandler) FeaturedPlan(c *gin.Context) {
	plan, err := h.usecase.FeaturedPlan(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan))
}

func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.CreatePlan(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPlan(plan))
}

func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.UpdatePlan(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan))
}

func (h *CatalogHandler) DeletePlan(c *gin.Context) {
	if err := h.usecase.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListBusinessPlans(c *gin.Context) {
	plans, err := h.usecase.ListBusinessPlans(c.Request.Context())
	if err != nil {
		appErr := mapCatalogReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBusinessPlans(plans))
}

func (h *CatalogHandler) CreateBusinessPlan(c *gin.Context) {
	var payload request.BusinessPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.CreateBusinessPlan(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBusinessPlan(plan))
}

func (h *CatalogHandler) UpdateBusinessPlan(c *gin.Context) {
	var payload request.BusinessPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.UpdateBusinessPlan(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBusinessPlan(plan))
}

func (h *CatalogHandler) DeleteBusinessPlan(c *gin.Context) {
	if err := h.usecase.DeleteBusinessPlan(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlanID), errors.Is(err, usecase.ErrInvalidPlanField):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound), errors.Is(err, usecase.ErrNoFeaturedPlan):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapCatalogReadError keeps the public listing honest: when the catalog
// cannot be fetched the site shows an unavailable state instead of an empty
// catalog.
func mapCatalogReadError(err error) *pkg.AppError {
	return pkg.NewDomainError("DATA_UNAVAILABLE", "Catalog is temporarily unavailable", err, http.StatusServiceUnavailable)
}
