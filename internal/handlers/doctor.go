package handlers

import (
	"net/http"

	"github.com/carebook-dev/carebook/internal/services"
	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctors *services.DoctorService
}

func NewDoctorHandler(doctors *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

type DoctorRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Specialty  string `json:"specialty" binding:"required"`
	HospitalID uint   `json:"hospital_id" binding:"required"`
}

func (h *DoctorHandler) List(ctx *gin.Context) {
	doctors, err := h.doctors.List()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	doctor, err := h.doctors.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) ListByHospital(ctx *gin.Context) {
	hospitalID, err := parseIDParam(ctx, "hospital_id")
	if err != nil {
		return
	}

	doctors, err := h.doctors.ListByHospital(hospitalID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) ListBySpecialty(ctx *gin.Context) {
	doctors, err := h.doctors.ListBySpecialty(ctx.Param("specialty"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) Create(ctx *gin.Context) {
	var req DoctorRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	doctor, err := h.doctors.Create(services.DoctorInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Specialty:  req.Specialty,
		HospitalID: req.HospitalID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	var req DoctorRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	doctor, err := h.doctors.Update(id, services.DoctorInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Specialty:  req.Specialty,
		HospitalID: req.HospitalID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	if err := h.doctors.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
