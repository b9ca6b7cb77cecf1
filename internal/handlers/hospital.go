package handlers

import (
	"net/http"
	"strconv"

	"github.com/carebook-dev/carebook/internal/services"
	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitals *services.HospitalService
}

func NewHospitalHandler(hospitals *services.HospitalService) *HospitalHandler {
	return &HospitalHandler{hospitals: hospitals}
}

type HospitalRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
}

func (h *HospitalHandler) List(ctx *gin.Context) {
	hospitals, err := h.hospitals.List()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hospitals)
}

func (h *HospitalHandler) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	hospital, err := h.hospitals.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hospital)
}

func (h *HospitalHandler) ListByCity(ctx *gin.Context) {
	hospitals, err := h.hospitals.ListByCity(ctx.Param("city"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hospitals)
}

func (h *HospitalHandler) Create(ctx *gin.Context) {
	var req HospitalRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	hospital, err := h.hospitals.Create(services.HospitalInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, hospital)
}

func (h *HospitalHandler) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	var req HospitalRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	hospital, err := h.hospitals.Update(id, services.HospitalInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hospital)
}

func (h *HospitalHandler) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	if err := h.hospitals.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam reads a numeric path parameter and writes the 400 itself so
// callers can just return on error.
func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, err
	}

	return uint(id), nil
}
