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
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
	errInvalidLeadPayload     = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
)

// IntakeHandler runs the visitor-facing intake endpoints: contract
// submission, protocol lookup, lead capture and the external WhatsApp handoff.
type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

func (h *IntakeHandler) SubmitContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	receipt, err := h.usecase.SubmitContract(c.Request.Context(), payload.ToForm())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromReceipt(receipt))
}

func (h *IntakeHandler) ContractByProtocol(c *gin.Context) {
	contract, err := h.usecase.ContractByProtocol(c.Request.Context(), c.Param("protocol"))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *IntakeHandler) CaptureLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.CaptureLead(c.Request.Context(), payload.ToForm())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromLead(lead))
}

func (h *IntakeHandler) Handoff(c *gin.Context) {
	var payload request.HandoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	url, err := h.usecase.HandoffURL(c.Request.Context(), payload.PlanID, payload.Name, payload.City, payload.Neighborhood)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.HandoffResponse{WhatsAppURL: url})
}

// ListLeads is the admin callback queue.
func (h *IntakeHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.ListLeads(c.Request.Context())
	if err != nil {
		appErr := mapIntakeReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

// ListContracts is the admin intake queue.
func (h *IntakeHandler) ListContracts(c *gin.Context) {
	contracts, err := h.usecase.ListContracts(c.Request.Context())
	if err != nil {
		appErr := mapIntakeReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingContractField),
		errors.Is(err, usecase.ErrUnknownContractCity),
		errors.Is(err, usecase.ErrInvalidInstallationPeriod),
		errors.Is(err, usecase.ErrMissingLeadField),
		errors.Is(err, usecase.ErrInvalidProtocol):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapIntakeReadError(err error) *pkg.AppError {
	return pkg.NewDomainError("DATA_UNAVAILABLE", "Intake data is temporarily unavailable", err, http.StatusServiceUnavailable)
}
