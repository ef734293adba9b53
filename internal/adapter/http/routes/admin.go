package routes

import (
	"parceiros_internet/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

// addAdminRoutes wires the editing surface. Auth endpoints stay outside the
// guard; everything else requires a bearer token with the admin role.
func addAdminRoutes(
	rg *gin.RouterGroup,
	requireAdmin gin.HandlerFunc,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	contentHandler *handlers.ContentHandler,
	intakeHandler *handlers.IntakeHandler,
) {
	admin := rg.Group(PathAdmin)

	auth := admin.Group("/auth")
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signin", authHandler.SignIn)
	}

	guarded := admin.Group("", requireAdmin)
	{
		guarded.POST(PathPlans, catalogHandler.CreatePlan)
		guarded.PUT(PathPlans+"/:id", catalogHandler.UpdatePlan)
		guarded.DELETE(PathPlans+"/:id", catalogHandler.DeletePlan)

		guarded.POST(PathBusinessPlans, catalogHandler.CreateBusinessPlan)
		guarded.PUT(PathBusinessPlans+"/:id", catalogHandler.UpdateBusinessPlan)
		guarded.DELETE(PathBusinessPlans+"/:id", catalogHandler.DeleteBusinessPlan)

		guarded.POST(PathTestimonials, contentHandler.CreateTestimonial)
		guarded.PUT(PathTestimonials+"/:id", contentHandler.UpdateTestimonial)
		guarded.DELETE(PathTestimonials+"/:id", contentHandler.DeleteTestimonial)

		guarded.POST(PathCompanies, contentHandler.AddCompany)
		guarded.DELETE(PathCompanies+"/:id", contentHandler.DeleteCompany)

		guarded.PUT(PathSettings, contentHandler.UpsertSetting)

		guarded.GET(PathLeads, intakeHandler.ListLeads)
		guarded.GET(PathContracts, intakeHandler.ListContracts)
	}
}
