package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CalculatorHandler computes BMI, BMR and TDEE from raw inputs without
// touching any account. The route is public.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Calculate handles POST /v1/calculator. Age and sex are optional; without
// them the response carries BMI only.
//
// @Summary      Calculate BMI, BMR and TDEE
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body      calculateRequest  true  "Body metrics"
// @Success      200   {object}  statsResponse
// @Failure      400   {object}  errorResponse
// @Router       /calculator [post]
func (h *CalculatorHandler) Calculate(c echo.Context) error {
	var req calculateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, toCalculatedStats(req))
}
