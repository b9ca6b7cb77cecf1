package router

import (
	"time"

	"github.com/carebook-dev/carebook/internal/handlers"
	"github.com/carebook-dev/carebook/internal/middleware"
	"github.com/carebook-dev/carebook/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Hospitals    *handlers.HospitalHandler
	Doctors      *handlers.DoctorHandler
	Patients     *handlers.PatientHandler
	Appointments *handlers.AppointmentHandler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/me", middleware.AuthMiddleware(), h.Auth.Me)
		}

		hospitals := api.Group("/hospitals")
		{
			hospitals.GET("", h.Hospitals.List)
			hospitals.GET("/:id", h.Hospitals.GetByID)
			hospitals.GET("/city/:city", h.Hospitals.ListByCity)

			admin := hospitals.Group("", middleware.AuthMiddleware(), middleware.RequireAdmin())
			{
				admin.POST("", h.Hospitals.Create)
				admin.PUT("/:id", h.Hospitals.Update)
				admin.DELETE("/:id", h.Hospitals.Delete)
			}
		}

		doctors := api.Group("/doctors")
		{
			doctors.GET("", h.Doctors.List)
			doctors.GET("/:id", h.Doctors.GetByID)
			doctors.GET("/hospital/:hospital_id", h.Doctors.ListByHospital)
			doctors.GET("/specialty/:specialty", h.Doctors.ListBySpecialty)

			admin := doctors.Group("", middleware.AuthMiddleware(), middleware.RequireAdmin())
			{
				admin.POST("", h.Doctors.Create)
				admin.PUT("/:id", h.Doctors.Update)
				admin.DELETE("/:id", h.Doctors.Delete)
			}
		}

		patients := api.Group("/patients", middleware.AuthMiddleware())
		{
			patients.GET("/user", h.Patients.GetOwn)
			patients.GET("/:id", h.Patients.GetByID)
			patients.PUT("/:id", h.Patients.Update)

			admin := patients.Group("", middleware.RequireAdmin())
			{
				admin.GET("", h.Patients.List)
				admin.POST("", h.Patients.Create)
				admin.DELETE("/:id", h.Patients.Delete)
			}
		}

		appointments := api.Group("/appointments", middleware.AuthMiddleware())
		{
			appointments.GET("/my", h.Appointments.ListOwn)
			appointments.GET("/:id", h.Appointments.GetByID)
			appointments.POST("", h.Appointments.Create)
			appointments.PUT("/:id", h.Appointments.Update)
			appointments.DELETE("/:id", h.Appointments.Delete)

			admin := appointments.Group("", middleware.RequireAdmin())
			{
				admin.GET("", h.Appointments.List)
				admin.GET("/doctor/:doctor_id", h.Appointments.ListByDoctor)
				admin.GET("/patient/:patient_id", h.Appointments.ListByPatient)
			}
		}
	}

	return r
}
