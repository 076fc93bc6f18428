package handlers

import (
	"net/http"

	"MedDesk/internal/dto"
	"MedDesk/internal/service"

	"github.com/gin-gonic/gin"
)

// PatientHandler handles patient CRUD.
type PatientHandler struct {
	svc *service.PatientService
}

// NewPatientHandler returns a new PatientHandler.
func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// List godoc
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.PatientResponse
// @Failure      401  {object}  map[string]string
// @Router       /patients [get]
func (h *PatientHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPatientResponses(list))
}

// Create godoc
// @Summary      Create a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.PatientRequest  true  "Patient"
// @Success      201   {object}  dto.PatientResponse
// @Failure      400   {object}  map[string]string
// @Router       /patients [post]
func (h *PatientHandler) Create(c *gin.Context) {
	var req dto.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fe := req.Validate(); !fe.Empty() {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	p, err := h.svc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPatientResponse(p))
}

// GetByID godoc
// @Summary      Get a patient by ID
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient ID"
// @Success      200  {object}  dto.PatientResponse
// @Failure      404  {object}  map[string]string
// @Router       /patients/{id} [get]
func (h *PatientHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPatientResponse(p))
}

// Update godoc
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Patient ID"
// @Param        body  body      dto.PatientRequest  true  "Patient"
// @Success      200   {object}  dto.PatientResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /patients/{id} [put]
func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fe := req.Validate(); !fe.Empty() {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPatientResponse(p))
}

// Delete godoc
// @Summary      Delete a patient and its appointments
// @Tags         patients
// @Security     BearerAuth
// @Param        id   path  string  true  "Patient ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /patients/{id} [delete]
func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
