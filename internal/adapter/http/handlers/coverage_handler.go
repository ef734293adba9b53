package handlers

import (
	"errors"
	"net/http"

	response "parceiros_internet/internal/adapter/http/dto/response"
	"parceiros_internet/internal/usecase"
	"parceiros_internet/pkg"

	"github.com/gin-gonic/gin"
)

// CoverageHandler answers the CEP availability check and serves the coverage
// map (cities and their neighborhoods).
type CoverageHandler struct {
	usecase usecase.ICoverageUseCase
}

func NewCoverageHandler(uc usecase.ICoverageUseCase) *CoverageHandler {
	return &CoverageHandler{usecase: uc}
}

func (h *CoverageHandler) Check(c *gin.Context) {
	result, err := h.usecase.Check(c.Query("cep"))
	if err != nil {
		appErr := mapCoverageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCoverage(result))
}

func (h *CoverageHandler) Cities(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCities(h.usecase.Cities()))
}

func (h *CoverageHandler) Neighborhoods(c *gin.Context) {
	list, err := h.usecase.Neighborhoods(c.Query("city"))
	if err != nil {
		appErr := mapCoverageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, list)
}

func mapCoverageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCEP):
		return pkg.NewDomainErrorSimple("INVALID_CEP", "CEP must have at least 8 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCity):
		return pkg.NewDomainErrorSimple("CITY_NOT_FOUND", "City is outside the coverage area", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
