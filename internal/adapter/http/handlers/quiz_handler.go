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
	errInvalidQuizPayload = pkg.NewDomainErrorSimple("INVALID_QUIZ_INPUT", "Invalid quiz payload", http.StatusBadRequest)
)

// QuizHandler serves the quiz questions and maps a completed answer set to a
// plan recommendation.
type QuizHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewQuizHandler(uc usecase.IRecommendationUseCase) *QuizHandler {
	return &QuizHandler{usecase: uc}
}

func (h *QuizHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Questions())
}

func (h *QuizHandler) Recommend(c *gin.Context) {
	var payload request.QuizAnswersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuizPayload.HTTPStatus, errInvalidQuizPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.Recommend(c.Request.Context(), payload.Answers)
	if err != nil {
		appErr := mapQuizError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecommendation(plan, h.usecase.HandoffURL(plan)))
}

func mapQuizError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownQuizQuestion):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogShape):
		return pkg.NewDomainError("DATA_UNAVAILABLE", "Recommendation is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
