package routes

import (
	"parceiros_internet/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPlans         = "/plans"
	PathBusinessPlans = "/business-plans"
	PathCoverage      = "/coverage"
	PathQuiz          = "/quiz"
	PathContracts     = "/contracts"
	PathLeads         = "/leads"
	PathTestimonials  = "/testimonials"
	PathCompanies     = "/companies"
	PathSettings      = "/settings"
)

func addSiteRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	coverageHandler *handlers.CoverageHandler,
	quizHandler *handlers.QuizHandler,
	intakeHandler *handlers.IntakeHandler,
	contentHandler *handlers.ContentHandler,
) {
	plans := rg.Group(PathPlans)
	{
		plans.GET("", catalogHandler.ListPlans)
		plans.GET("/featured", catalogHandler.FeaturedPlan)
	}

	rg.GET(PathBusinessPlans, catalogHandler.ListBusinessPlans)

	coverage := rg.Group(PathCoverage)
	{
		coverage.GET("/check", coverageHandler.Check)
		coverage.GET("/cities", coverageHandler.Cities)
		coverage.GET("/neighborhoods", coverageHandler.Neighborhoods)
	}

	quiz := rg.Group(PathQuiz)
	{
		quiz.GET("/questions", quizHandler.Questions)
		quiz.POST("/recommendation", quizHandler.Recommend)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", intakeHandler.SubmitContract)
		contracts.POST("/handoff", intakeHandler.Handoff)
		contracts.GET("/:protocol", intakeHandler.ContractByProtocol)
	}

	rg.POST(PathLeads, intakeHandler.CaptureLead)

	rg.GET(PathTestimonials, contentHandler.ListTestimonials)
	rg.GET(PathCompanies, contentHandler.ListCompanies)
	rg.GET(PathSettings, contentHandler.ListSettings)
}
