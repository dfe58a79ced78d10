package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caltrack/caltrack/internal/core/ports"
)

// FoodHandler handles HTTP requests for food search and barcode lookup.
type FoodHandler struct {
	service ports.FoodSearchService
}

func NewFoodHandler(service ports.FoodSearchService) *FoodHandler {
	return &FoodHandler{service: service}
}

// Search handles GET /v1/foods/search?q=. The aggregation cannot fail: a
// query that matches nothing, or providers that are all down, both produce
// an empty product list.
//
// @Summary      Search foods across the configured providers
// @Tags         foods
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Search query, at least 2 characters after trimming"
// @Success      200  {object}  searchFoodsResponse
// @Failure      401  {object}  errorResponse
// @Failure      429  {object}  errorResponse
// @Router       /foods/search [get]
func (h *FoodHandler) Search(c echo.Context) error {
	candidates := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, toSearchResponse(candidates))
}

// Barcode handles GET /v1/foods/barcode/:code.
//
// @Summary      Look up a product by barcode
// @Tags         foods
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Product barcode"
// @Success      200   {object}  barcodeResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /foods/barcode/{code} [get]
func (h *FoodHandler) Barcode(c echo.Context) error {
	product, err := h.service.Barcode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, barcodeResponse{Product: toProductResponse(*product)})
}
