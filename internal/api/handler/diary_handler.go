package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caltrack/caltrack/internal/core/ports"
)

// DiaryHandler handles HTTP requests for the food diary.
type DiaryHandler struct {
	service ports.DiaryService
}

func NewDiaryHandler(service ports.DiaryService) *DiaryHandler {
	return &DiaryHandler{service: service}
}

// Log handles POST /v1/diary: records one food on the diary.
//
// @Summary      Log a food
// @Tags         diary
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logFoodRequest  true  "Food to log"
// @Success      201   {object}  logFoodResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /diary [post]
func (h *DiaryHandler) Log(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req logFoodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	entry, err := h.service.LogFood(c.Request().Context(), toLogFoodInput(req, userID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, logFoodResponse{Message: "food logged", Entry: entry})
}

// Day handles GET /v1/diary?date=YYYY-MM-DD. An absent date means today.
//
// @Summary      Get one diary day
// @Tags         diary
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Calendar date (YYYY-MM-DD), defaults to today"
// @Success      200   {object}  dayResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /diary [get]
func (h *DiaryHandler) Day(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	day, err := h.service.Day(c.Request().Context(), userID, c.QueryParam("date"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDayResponse(day))
}

// Delete handles DELETE /v1/diary/:id. Entries belonging to another user are
// reported as not found.
//
// @Summary      Delete a diary entry
// @Tags         diary
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /diary/{id} [delete]
func (h *DiaryHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteEntry(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "entry deleted"})
}
