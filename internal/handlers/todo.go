package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	dom "MedDesk/internal/domain"
	"MedDesk/internal/service"

	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo CRUD. Unlike the hospital handlers it builds
// requests and responses by hand: the body is decoded into a struct of
// pointer fields so a partial update can tell an absent field from a
// zero value.
type TodoHandler struct {
	svc *service.TodoService
}

// NewTodoHandler returns a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// todoPayload is the decoded request body. Nil means the field was not
// sent.
type todoPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func decodeTodoPayload(c *gin.Context) (todoPayload, bool) {
	var p todoPayload
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || json.Unmarshal(body, &p) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return todoPayload{}, false
	}
	return p, true
}

func todoJSON(t dom.Todo) gin.H {
	return gin.H{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"created_at":  t.CreatedAt,
	}
}

// List godoc
// @Summary      List todos, newest first
// @Tags         todos
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	out := make([]gin.H, len(list))
	for i := range list {
		out[i] = todoJSON(list[i])
	}
	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	p, ok := decodeTodoPayload(c)
	if !ok {
		return
	}
	var title, desc string
	if p.Title != nil {
		title = *p.Title
	}
	if p.Description != nil {
		desc = *p.Description
	}
	t, err := h.svc.Create(c.Request.Context(), title, desc)
	if err != nil {
		if err == service.ErrEmptyTitle {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoJSON(t))
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoJSON(t))
}

// Update godoc
// @Summary      Partially update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}
	p, ok := decodeTodoPayload(c)
	if !ok {
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, p.Title, p.Description, p.Completed)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		case service.ErrEmptyTitle:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, todoJSON(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Param        id   path  int  true  "Todo ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseTodoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return 0, false
	}
	return id, true
}
