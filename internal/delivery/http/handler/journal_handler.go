package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/usecase/journal"
)

type JournalHandler struct {
	journalUseCase *journal.JournalUseCase
}

func NewJournalHandler(journalUseCase *journal.JournalUseCase) *JournalHandler {
	return &JournalHandler{
		journalUseCase: journalUseCase,
	}
}

func currentUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return 0, false
	}
	return userID.(int), true
}

func entryID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid id",
		})
		return 0, false
	}
	return id, true
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrVisitNotFound) ||
		errors.Is(err, domain.ErrBookNotFound) ||
		errors.Is(err, domain.ErrWorkoutNotFound) ||
		errors.Is(err, domain.ErrReflectionNotFound) ||
		errors.Is(err, domain.ErrRelativeNotFound)
}

// CreateVisit handles POST /visits
// @Summary Create travel visit
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body journal.VisitRequest true "Visit data"
// @Success 201 {object} domain.Visit
// @Router /visits [post]
func (h *JournalHandler) CreateVisit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req journal.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	visit, err := h.journalUseCase.CreateVisit(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create visit"})
		return
	}

	c.JSON(http.StatusCreated, visit)
}

// ListVisits handles GET /visits
// @Summary List travel visits
// @Tags journal
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Visit
// @Router /visits [get]
func (h *JournalHandler) ListVisits(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	visits, err := h.journalUseCase.ListVisits(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list visits"})
		return
	}

	c.JSON(http.StatusOK, visits)
}

// UpdateVisit handles PUT /visits/:id
// @Summary Update travel visit
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Visit ID"
// @Param request body journal.VisitRequest true "Visit data"
// @Success 200 {object} domain.Visit
// @Router /visits/{id} [put]
func (h *JournalHandler) UpdateVisit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req journal.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	visit, err := h.journalUseCase.UpdateVisit(c.Request.Context(), id, userID, &req)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "visit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update visit"})
		return
	}

	c.JSON(http.StatusOK, visit)
}

// DeleteVisit handles DELETE /visits/:id
// @Summary Delete travel visit
// @Tags journal
// @Security BearerAuth
// @Param id path int true "Visit ID"
// @Success 200 {object} SuccessResponse
// @Router /visits/{id} [delete]
func (h *JournalHandler) DeleteVisit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.journalUseCase.DeleteVisit(c.Request.Context(), id, userID); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "visit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete visit"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "visit deleted"})
}

// CreateBook handles POST /books
// @Summary Create book entry
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body journal.BookRequest true "Book data"
// @Success 201 {object} domain.Book
// @Router /books [post]
func (h *JournalHandler) CreateBook(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req journal.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	book, err := h.journalUseCase.CreateBook(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create book"})
		return
	}

	c.JSON(http.StatusCreated, book)
}

// ListBooks handles GET /books
// @Summary List book entries
// @Tags journal
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Book
// @Router /books [get]
func (h *JournalHandler) ListBooks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	books, err := h.journalUseCase.ListBooks(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list books"})
		return
	}

	c.JSON(http.StatusOK, books)
}

// UpdateBook handles PUT /books/:id
// @Summary Update book entry
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body journal.BookRequest true "Book data"
// @Success 200 {object} domain.Book
// @Router /books/{id} [put]
func (h *JournalHandler) UpdateBook(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req journal.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	book, err := h.journalUseCase.UpdateBook(c.Request.Context(), id, userID, &req)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update book"})
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /books/:id
// @Summary Delete book entry
// @Tags journal
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} SuccessResponse
// @Router /books/{id} [delete]
func (h *JournalHandler) DeleteBook(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.journalUseCase.DeleteBook(c.Request.Context(), id, userID); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete book"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "book deleted"})
}

// CreateWorkout handles POST /workouts
// @Summary Create workout entry
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body journal.WorkoutRequest true "Workout data"
// @Success 201 {object} domain.Workout
// @Router /workouts [post]
func (h *JournalHandler) CreateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req journal.WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	workout, err := h.journalUseCase.CreateWorkout(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create workout"})
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// ListWorkouts handles GET /workouts
// @Summary List workout entries
// @Tags journal
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Workout
// @Router /workouts [get]
func (h *JournalHandler) ListWorkouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	workouts, err := h.journalUseCase.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list workouts"})
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// UpdateWorkout handles PUT /workouts/:id
// @Summary Update workout entry
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Workout ID"
// @Param request body journal.WorkoutRequest true "Workout data"
// @Success 200 {object} domain.Workout
// @Router /workouts/{id} [put]
func (h *JournalHandler) UpdateWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req journal.WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	workout, err := h.journalUseCase.UpdateWorkout(c.Request.Context(), id, userID, &req)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update workout"})
		return
	}

	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout handles DELETE /workouts/:id
// @Summary Delete workout entry
// @Tags journal
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} SuccessResponse
// @Router /workouts/{id} [delete]
func (h *JournalHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.journalUseCase.DeleteWorkout(c.Request.Context(), id, userID); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete workout"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "workout deleted"})
}

// CreateReflection handles POST /reflections
// @Summary Create reflection
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body journal.ReflectionRequest true "Reflection data"
// @Success 201 {object} domain.Reflection
// @Router /reflections [post]
func (h *JournalHandler) CreateReflection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req journal.ReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	reflection, err := h.journalUseCase.CreateReflection(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create reflection"})
		return
	}

	c.JSON(http.StatusCreated, reflection)
}

// ListReflections handles GET /reflections
// @Summary List reflections
// @Tags journal
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Reflection
// @Router /reflections [get]
func (h *JournalHandler) ListReflections(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reflections, err := h.journalUseCase.ListReflections(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list reflections"})
		return
	}

	c.JSON(http.StatusOK, reflections)
}

// UpdateReflection handles PUT /reflections/:id
// @Summary Update reflection
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Reflection ID"
// @Param request body journal.ReflectionRequest true "Reflection data"
// @Success 200 {object} domain.Reflection
// @Router /reflections/{id} [put]
func (h *JournalHandler) UpdateReflection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req journal.ReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	reflection, err := h.journalUseCase.UpdateReflection(c.Request.Context(), id, userID, &req)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "reflection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update reflection"})
		return
	}

	c.JSON(http.StatusOK, reflection)
}

// DeleteReflection handles DELETE /reflections/:id
// @Summary Delete reflection
// @Tags journal
// @Security BearerAuth
// @Param id path int true "Reflection ID"
// @Success 200 {object} SuccessResponse
// @Router /reflections/{id} [delete]
func (h *JournalHandler) DeleteReflection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.journalUseCase.DeleteReflection(c.Request.Context(), id, userID); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "reflection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete reflection"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "reflection deleted"})
}

// CreateRelative handles POST /relatives
// @Summary Create relative
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body journal.RelativeRequest true "Relative data"
// @Success 201 {object} domain.Relative
// @Router /relatives [post]
func (h *JournalHandler) CreateRelative(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req journal.RelativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	relative, err := h.journalUseCase.CreateRelative(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid relative data"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create relative"})
		return
	}

	c.JSON(http.StatusCreated, relative)
}

// ListRelatives handles GET /relatives
// @Summary List relatives
// @Tags journal
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Relative
// @Router /relatives [get]
func (h *JournalHandler) ListRelatives(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	relatives, err := h.journalUseCase.ListRelatives(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list relatives"})
		return
	}

	c.JSON(http.StatusOK, relatives)
}

// UpdateRelative handles PUT /relatives/:id
// @Summary Update relative
// @Tags journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Relative ID"
// @Param request body journal.RelativeRequest true "Relative data"
// @Success 200 {object} domain.Relative
// @Router /relatives/{id} [put]
func (h *JournalHandler) UpdateRelative(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req journal.RelativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	relative, err := h.journalUseCase.UpdateRelative(c.Request.Context(), id, userID, &req)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "relative not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update relative"})
		return
	}

	c.JSON(http.StatusOK, relative)
}

// DeleteRelative handles DELETE /relatives/:id
// @Summary Delete relative
// @Tags journal
// @Security BearerAuth
// @Param id path int true "Relative ID"
// @Success 200 {object} SuccessResponse
// @Router /relatives/{id} [delete]
func (h *JournalHandler) DeleteRelative(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.journalUseCase.DeleteRelative(c.Request.Context(), id, userID); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "relative not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete relative"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "relative deleted"})
}
