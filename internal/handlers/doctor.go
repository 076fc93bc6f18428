package handlers

import (
	"net/http"

	"MedDesk/internal/dto"
	"MedDesk/internal/service"
	"MedDesk/internal/validation"

	"github.com/gin-gonic/gin"
)

// DoctorHandler handles doctor CRUD. Reads are public; mutation routes
// sit behind the admin middleware.
type DoctorHandler struct {
	svc *service.DoctorService
}

// NewDoctorHandler returns a new DoctorHandler.
func NewDoctorHandler(svc *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

// List godoc
// @Summary      List doctors
// @Tags         doctors
// @Produce      json
// @Success      200  {array}  dto.DoctorResponse
// @Router       /doctors [get]
func (h *DoctorHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDoctorResponses(list))
}

// Create godoc
// @Summary      Create a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.DoctorRequest  true  "Doctor"
// @Success      201   {object}  dto.DoctorResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /doctors [post]
func (h *DoctorHandler) Create(c *gin.Context) {
	var req dto.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fe := req.Validate(); !fe.Empty() {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	d, err := h.svc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		if err == service.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, validation.FieldErrors{"email": {"Email already exists."}})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewDoctorResponse(d))
}

// GetByID godoc
// @Summary      Get a doctor by ID
// @Tags         doctors
// @Produce      json
// @Param        id   path      string  true  "Doctor ID"
// @Success      200  {object}  dto.DoctorResponse
// @Failure      404  {object}  map[string]string
// @Router       /doctors/{id} [get]
func (h *DoctorHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDoctorResponse(d))
}

// Update godoc
// @Summary      Update a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Doctor ID"
// @Param        body  body      dto.DoctorRequest  true  "Doctor"
// @Success      200   {object}  dto.DoctorResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /doctors/{id} [put]
func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fe := req.Validate(); !fe.Empty() {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	d, err := h.svc.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if err == service.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, validation.FieldErrors{"email": {"Email already exists."}})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDoctorResponse(d))
}

// Delete godoc
// @Summary      Delete a doctor and its appointments
// @Tags         doctors
// @Security     BearerAuth
// @Param        id   path  string  true  "Doctor ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /doctors/{id} [delete]
func (h *DoctorHandler) Delete(c *gin.Context) {
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
