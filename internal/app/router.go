package app

import (
	"edu_record_backend/docs"
	"edu_record_backend/internal/config"
	"edu_record_backend/internal/middleware"
	"edu_record_backend/internal/model"
	"edu_record_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要登录的通用路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/me", c.auth.Me)
		authGroup.PUT("/profile", c.user.UpdateProfile)

		authGroup.GET("/batches", c.batch.GetBatches)
		authGroup.GET("/batches/:id", c.batch.GetBatch)
		authGroup.GET("/batches/:id/students", c.student.GetBatchStudents)
		authGroup.GET("/batches/:id/teachers", c.batch.GetBatchTeachers)
		authGroup.GET("/batches/:id/assignments", c.assignment.GetBatchAssignments)

		authGroup.GET("/students/:id", c.student.GetStudent)
		authGroup.GET("/students/:id/attendance", c.attendance.GetStudentAttendance)
		authGroup.GET("/students/:id/attendance/summary", c.attendance.GetStudentAttendanceSummary)
		authGroup.GET("/students/:id/marks", c.mark.GetStudentMarks)

		authGroup.GET("/notifications", c.notification.GetMyNotifications)
		authGroup.POST("/notifications", c.notification.Publish)
		authGroup.DELETE("/notifications/:id", c.notification.Delete)
	}

	// 教师路由（管理员可越权访问）
	teacherGroup := router.Group("/api/teacher")
	teacherGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Teacher))
	{
		teacherGroup.POST("/batches/:id/attendance", c.attendance.MarkAttendance)
		teacherGroup.GET("/batches/:id/attendance", c.attendance.GetBatchAttendance)

		teacherGroup.POST("/batches/:id/marks", c.mark.EnterMarks)
		teacherGroup.GET("/batches/:id/marks", c.mark.GetBatchMarks)

		teacherGroup.POST("/batches/:id/assignments", c.assignment.CreateAssignment)
		teacherGroup.DELETE("/assignments/:id", c.assignment.DeleteAssignment)

		teacherGroup.GET("/xp", c.xp.GetMyXP)
		teacherGroup.GET("/xp/leaderboard", c.xp.GetLeaderboard)
	}

	// 管理员路由
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.GET("/users", c.user.GetUsers)
		adminGroup.GET("/teachers", c.user.GetTeachers)
		adminGroup.GET("/users/:id", c.user.GetUser)
		adminGroup.PUT("/users/:id/disabled", c.user.SetDisabled)
		adminGroup.POST("/users/:id/reset-password", c.user.ResetPassword)

		adminGroup.POST("/batches", c.batch.CreateBatch)
		adminGroup.PUT("/batches/:id", c.batch.UpdateBatch)
		adminGroup.DELETE("/batches/:id", c.batch.DeleteBatch)
		adminGroup.POST("/batches/:id/teachers", c.batch.AssignTeacher)
		adminGroup.DELETE("/batches/:id/teachers/:teacherId", c.batch.UnassignTeacher)

		adminGroup.POST("/students", c.student.CreateStudent)
		adminGroup.PUT("/students/:id", c.student.UpdateStudent)
		adminGroup.DELETE("/students/:id", c.student.DeleteStudent)

		adminGroup.GET("/teachers/:id/xp", c.xp.GetTeacherXP)
	}
}
