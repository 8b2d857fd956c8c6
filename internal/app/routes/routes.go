package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oms-tech/reviews/internal/app/controllers"
)

// Controllers groups every controller mounted by SetupRouter
type Controllers struct {
	Review       *controllers.ReviewController
	Verification *controllers.VerificationController
	Webhook      *controllers.WebhookController
	Course       *controllers.CourseController
	Health       *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	// Known paths hit with the wrong method answer 405 with an empty body
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		ctx.AbortWithStatus(http.StatusMethodNotAllowed)
	})

	router.GET("/ping", c.Health.Ping)

	// --- Write routes ---
	router.POST("/reviews", c.Review.CreateReview)
	router.POST("/verifications", c.Verification.SendCode)

	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/content", c.Webhook.ContentChanged)
	}

	// --- Read routes ---
	courses := router.Group("/courses")
	{
		courses.GET("", c.Course.GetCourses)
		courses.GET("/codes", c.Course.GetCourseCodes)
		courses.GET("/names", c.Course.GetCourseNames)
		courses.GET("/:code", c.Course.GetCourse)
	}

	router.GET("/semesters", c.Course.GetRecentSemesters)
}
