package dto

import (
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/pkg/optional"
)

// CreateWorkerRequest entrada para crear un trabajador (password en texto, se hashea en use case).
// Active ausente equivale a true.
type CreateWorkerRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Phone        string `json:"phone" validate:"max=30"`
	Role         string `json:"role" validate:"required,max=50"`
	Active       *bool  `json:"active"`
	RestaurantID string `json:"restaurantId" validate:"required"`
}

// UpdateWorkerRequest actualización parcial de un trabajador.
type UpdateWorkerRequest struct {
	Name         optional.Value[string] `json:"name"`
	Email        optional.Value[string] `json:"email"`
	Password     optional.Value[string] `json:"password"`
	Phone        optional.Value[string] `json:"phone"`
	Role         optional.Value[string] `json:"role"`
	Active       optional.Value[bool]   `json:"active"`
	RestaurantID optional.Value[string] `json:"restaurantId"`
}

// WorkerResponse salida de un trabajador (sin password).
type WorkerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	Active         bool   `json:"active"`
}

// NewWorkerResponse mapea la entidad a la respuesta.
func NewWorkerResponse(w *entity.Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		Email:          w.Email,
		Phone:          w.Phone,
		Role:           w.Role,
		RestaurantID:   w.RestaurantID,
		RestaurantName: w.RestaurantName(),
		Active:         w.Active,
	}
}

// LoginRequest entrada para login de trabajador.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// WorkerAuthResponse salida del login con token JWT.
type WorkerAuthResponse struct {
	Message        string `json:"message"`
	WorkerID       string `json:"workerId"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	Token          string `json:"token"`
}
