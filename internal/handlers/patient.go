package handlers

import (
	"net/http"
	"time"

	"github.com/carebook-dev/carebook/internal/services"
	"github.com/carebook-dev/carebook/internal/utils"
	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patients *services.PatientService
}

func NewPatientHandler(patients *services.PatientService) *PatientHandler {
	return &PatientHandler{patients: patients}
}

type CreatePatientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"` // YYYY-MM-DD
	UserID    uint   `json:"user_id" binding:"required"`
}

type UpdatePatientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"` // YYYY-MM-DD
}

func (h *PatientHandler) List(ctx *gin.Context) {
	patients, err := h.patients.List()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	caller, err := currentCaller(ctx)
	if err != nil {
		return
	}

	patient, err := h.patients.GetByID(caller, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

// GetOwn returns the caller's own patient profile.
func (h *PatientHandler) GetOwn(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	patient, err := h.patients.GetByUserID(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) Create(ctx *gin.Context) {
	var req CreatePatientRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be in YYYY-MM-DD format"})
		return
	}

	patient, err := h.patients.Create(services.PatientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
		UserID:    req.UserID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	caller, err := currentCaller(ctx)
	if err != nil {
		return
	}

	var req UpdatePatientRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be in YYYY-MM-DD format"})
		return
	}

	patient, err := h.patients.Update(caller, id, services.PatientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	if err := h.patients.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// currentCaller converts the authenticated user into the service-layer
// caller identity, writing the 401 itself on failure.
func currentCaller(ctx *gin.Context) (services.Caller, error) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return services.Caller{}, err
	}

	return services.Caller{UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}
