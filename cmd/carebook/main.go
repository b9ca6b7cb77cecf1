package main

import (
	"log"
	"os"

	"github.com/carebook-dev/carebook/db"
	"github.com/carebook-dev/carebook/internal/auth"
	"github.com/carebook-dev/carebook/internal/handlers"
	"github.com/carebook-dev/carebook/internal/repositories"
	"github.com/carebook-dev/carebook/internal/router"
	"github.com/carebook-dev/carebook/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	users := repositories.NewUserRepository(db.DB)
	roles := repositories.NewRoleRepository(db.DB)
	hospitals := repositories.NewHospitalRepository(db.DB)
	doctors := repositories.NewDoctorRepository(db.DB)
	patients := repositories.NewPatientRepository(db.DB)
	appointments := repositories.NewAppointmentRepository(db.DB)

	r := router.NewRouter(router.Handlers{
		Auth:         handlers.NewAuthHandler(services.NewAuthService(users, roles, patients)),
		Hospitals:    handlers.NewHospitalHandler(services.NewHospitalService(hospitals)),
		Doctors:      handlers.NewDoctorHandler(services.NewDoctorService(doctors, hospitals)),
		Patients:     handlers.NewPatientHandler(services.NewPatientService(patients, users)),
		Appointments: handlers.NewAppointmentHandler(services.NewAppointmentService(appointments, doctors, patients)),
	})

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
