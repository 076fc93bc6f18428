package handlers

import (
	"net/http"

	"MedDesk/internal/dto"
	"MedDesk/internal/repo"
	"MedDesk/internal/service"
	"MedDesk/internal/validation"

	"github.com/gin-gonic/gin"
)

const msgRelatedNotFound = "Related object not found."

// AppointmentHandler handles appointment CRUD.
type AppointmentHandler struct {
	svc *service.AppointmentService
}

// NewAppointmentHandler returns a new AppointmentHandler.
func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// List godoc
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        status   query  string  false  "Filter by status"
// @Param        patient  query  string  false  "Filter by patient ID"
// @Param        doctor   query  string  false  "Filter by doctor ID"
// @Success      200  {array}   dto.AppointmentResponse
// @Failure      401  {object}  map[string]string
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), repo.AppointmentFilter{
		Status:    c.Query("status"),
		PatientID: c.Query("patient"),
		DoctorID:  c.Query("doctor"),
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAppointmentResponses(list))
}

// Create godoc
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.AppointmentRequest  true  "Appointment"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  map[string]string
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fe := req.Validate(); !fe.Empty() {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	a, err := h.svc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		if refErrResponse(c, err) {
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAppointmentResponse(a))
}

// GetByID godoc
// @Summary      Get an appointment by ID
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment ID"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  map[string]string
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAppointmentResponse(a))
}

// Update godoc
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Appointment ID"
// @Param        body  body      dto.AppointmentRequest  true  "Appointment"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fe := req.Validate(); !fe.Empty() {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	a, err := h.svc.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if refErrResponse(c, err) {
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAppointmentResponse(a))
}

// Delete godoc
// @Summary      Delete an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id   path  string  true  "Appointment ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
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

// refErrResponse writes the field-scoped 400 for a dangling patient or
// doctor reference. Returns false when err is neither.
func refErrResponse(c *gin.Context, err error) bool {
	switch err {
	case service.ErrPatientRef:
		c.JSON(http.StatusBadRequest, validation.FieldErrors{"patient": {msgRelatedNotFound}})
	case service.ErrDoctorRef:
		c.JSON(http.StatusBadRequest, validation.FieldErrors{"doctor": {msgRelatedNotFound}})
	default:
		return false
	}
	return true
}
