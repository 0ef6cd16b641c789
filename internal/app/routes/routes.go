package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusos/campusos/internal/app/controllers"
	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/middleware"
)

// SetupRouter configures all application routes. Every endpoint runs behind
// SessionAuth: anonymous callers pass through with the student role, so the
// portal stays usable without a login while role-gated endpoints demand a
// token.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	noticeController *controllers.NoticeController,
	studyPlanController *controllers.StudyPlanController,
	assessmentController *controllers.AssessmentController,
	campusController *controllers.CampusController,
	materialController *controllers.MaterialController,
	assistantController *controllers.AssistantController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.SessionAuth())

	v1.GET("/health", healthController.Health)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/me", authController.Me)
	}
	v1.GET("/users", authController.ListUsers)

	notices := v1.Group("/notices")
	{
		notices.GET("", noticeController.ListNotices)
		notices.POST("", noticeController.CreateNotice)

		noticesStaff := notices.Group("")
		noticesStaff.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
		{
			noticesStaff.DELETE("/:id", noticeController.DeleteNotice)
		}
	}

	studyPlans := v1.Group("/study-plans")
	{
		studyPlans.GET("", studyPlanController.ListPlans)
		studyPlans.GET("/:id", studyPlanController.GetPlan)
		studyPlans.POST("", studyPlanController.CreatePlan)
		studyPlans.PUT("/:id", studyPlanController.ReplacePlan)
		studyPlans.POST("/:id/topics/toggle", studyPlanController.ToggleTopic)
	}

	assessments := v1.Group("/assessments")
	{
		assessments.GET("", assessmentController.ListAssessments)
		assessments.POST("/:id/submissions", assessmentController.SubmitAnswers)
	}
	v1.GET("/assessment-results", assessmentController.ListResults)
	v1.POST("/assessment-results", assessmentController.RecordResult)

	v1.GET("/jobs", campusController.ListJobs)
	v1.GET("/calendar-events", campusController.ListEvents)

	materials := v1.Group("/study-materials")
	{
		materials.GET("", materialController.ListMaterials)

		materialsStaff := materials.Group("")
		materialsStaff.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
		{
			materialsStaff.POST("", materialController.UploadMaterial)
		}
	}

	ai := v1.Group("/ai")
	{
		ai.POST("/study-plan", studyPlanController.GeneratePlan)
		ai.POST("/assistant", assistantController.Chat)
		ai.POST("/interview", assistantController.MockInterview)
	}
}
