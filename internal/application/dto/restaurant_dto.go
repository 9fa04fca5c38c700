package dto

import "github.com/jhoicas/Turnos-api/internal/domain/entity"

// CreateRestaurantRequest entrada para registrar un restaurante.
type CreateRestaurantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// RestaurantResponse salida de un restaurante.
type RestaurantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewRestaurantResponse mapea la entidad a la respuesta.
func NewRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{ID: r.ID, Name: r.Name}
}
