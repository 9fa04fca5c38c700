package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/application/restaurant"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// RestaurantHandler maneja el directorio de restaurantes.
type RestaurantHandler struct {
	uc  *restaurant.UseCase
	log *logger.Logger
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *restaurant.UseCase, log *logger.Logger) *RestaurantHandler {
	return &RestaurantHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear restaurante
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateRestaurantRequest  true  "Datos del restaurante"
// @Success      201   {object}  dto.RestaurantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRestaurantRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar restaurantes
// @Tags         restaurants
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.RestaurantResponse
// @Router       /api/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener restaurante
// @Tags         restaurants
// @Produce      json
// @Security     Bearer
// @Param        restaurantId  path      string  true  "ID del restaurante"
// @Success      200           {object}  dto.RestaurantResponse
// @Failure      404           {object}  dto.ErrorResponse
// @Router       /api/restaurants/{restaurantId} [get]
func (h *RestaurantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("restaurantId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
