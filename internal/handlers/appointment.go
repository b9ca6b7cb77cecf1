package handlers

import (
	"net/http"
	"time"

	"github.com/carebook-dev/carebook/internal/services"
	"github.com/carebook-dev/carebook/internal/utils"
	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointments *services.AppointmentService
}

func NewAppointmentHandler(appointments *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type CreateAppointmentRequest struct {
	DoctorID        uint      `json:"doctor_id" binding:"required"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Notes           string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Notes           string    `json:"notes"`
}

func (h *AppointmentHandler) List(ctx *gin.Context) {
	appointments, err := h.appointments.List()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	caller, err := currentCaller(ctx)
	if err != nil {
		return
	}

	appointment, err := h.appointments.GetByID(caller, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

// ListOwn returns the bookings of the caller's own patient profile.
func (h *AppointmentHandler) ListOwn(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	appointments, err := h.appointments.ListForUser(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) ListByDoctor(ctx *gin.Context) {
	doctorID, err := parseIDParam(ctx, "doctor_id")
	if err != nil {
		return
	}

	appointments, err := h.appointments.ListByDoctor(doctorID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) ListByPatient(ctx *gin.Context) {
	patientID, err := parseIDParam(ctx, "patient_id")
	if err != nil {
		return
	}

	appointments, err := h.appointments.ListByPatient(patientID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateAppointmentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	appointment, err := h.appointments.Create(userID, services.CreateAppointmentInput{
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, appointment)
}

func (h *AppointmentHandler) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	caller, err := currentCaller(ctx)
	if err != nil {
		return
	}

	var req UpdateAppointmentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	appointment, err := h.appointments.Update(caller, id, services.UpdateAppointmentInput{
		AppointmentDate: req.AppointmentDate,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	caller, err := currentCaller(ctx)
	if err != nil {
		return
	}

	if err := h.appointments.Delete(caller, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
