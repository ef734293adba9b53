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
	errInvalidTestimonialPayload = pkg.NewDomainErrorSimple("INVALID_TESTIMONIAL_INPUT", "Invalid testimonial payload", http.StatusBadRequest)
	errInvalidCompanyPayload     = pkg.NewDomainErrorSimple("INVALID_COMPANY_INPUT", "Company name and logo file are required", http.StatusBadRequest)
	errInvalidSettingPayload     = pkg.NewDomainErrorSimple("INVALID_SETTING_INPUT", "Invalid setting payload", http.StatusBadRequest)
)

// ContentHandler serves testimonials, partner logos and site settings.
// Public reads, admin writes.
type ContentHandler struct {
	usecase usecase.IContentUseCase
}

func NewContentHandler(uc usecase.IContentUseCase) *ContentHandler {
	return &ContentHandler{usecase: uc}
}

func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	list, err := h.usecase.ListTestimonials(c.Request.Context())
	if err != nil {
		appErr := mapContentReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTestimonials(list))
}

func (h *ContentHandler) CreateTestimonial(c *gin.Context) {
	var payload request.TestimonialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTestimonialPayload.HTTPStatus, errInvalidTestimonialPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.CreateTestimonial(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTestimonial(t))
}

func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	var payload request.TestimonialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTestimonialPayload.HTTPStatus, errInvalidTestimonialPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.UpdateTestimonial(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTestimonial(t))
}

func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.usecase.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) ListCompanies(c *gin.Context) {
	list, err := h.usecase.ListCompanies(c.Request.Context())
	if err != nil {
		appErr := mapContentReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTrustedCompanies(list))
}

// AddCompany takes a multipart form: a "name" field and a "logo" file.
func (h *ContentHandler) AddCompany(c *gin.Context) {
	name := c.PostForm("name")
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(errInvalidCompanyPayload.HTTPStatus, errInvalidCompanyPayload.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidCompanyPayload.HTTPStatus, errInvalidCompanyPayload.ToHTTPError())
		return
	}
	defer file.Close()

	company, err := h.usecase.AddCompany(
		c.Request.Context(),
		name,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTrustedCompany(company))
}

func (h *ContentHandler) DeleteCompany(c *gin.Context) {
	if err := h.usecase.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) ListSettings(c *gin.Context) {
	list, err := h.usecase.ListSettings(c.Request.Context())
	if err != nil {
		appErr := mapContentReadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSiteSettings(list))
}

func (h *ContentHandler) UpsertSetting(c *gin.Context) {
	var payload request.SiteSettingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingPayload.HTTPStatus, errInvalidSettingPayload.ToHTTPError())
		return
	}

	setting, err := h.usecase.UpsertSetting(c.Request.Context(), payload.Key, payload.Value)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSiteSetting(setting))
}

func mapContentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingTestimonialField),
		errors.Is(err, usecase.ErrInvalidRating),
		errors.Is(err, usecase.ErrMissingCompanyField),
		errors.Is(err, usecase.ErrMissingSettingKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTestimonialNotFound):
		return pkg.NewDomainErrorSimple("TESTIMONIAL_NOT_FOUND", "Testimonial not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapContentReadError(err error) *pkg.AppError {
	return pkg.NewDomainError("DATA_UNAVAILABLE", "Content is temporarily unavailable", err, http.StatusServiceUnavailable)
}
