package entity

import "time"

// Roles de puesto habituales. El conjunto es abierto: cualquier etiqueta no vacía es válida.
const (
	JobRoleWaiter   = "Waiter"
	JobRoleChef     = "Chef"
	JobRoleManager  = "Manager"
	JobRoleCashier  = "Cashier"
	JobRoleHost     = "Host"
	JobRoleDelivery = "Delivery"
)

// Worker representa un trabajador de un restaurante.
type Worker struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Role         string // Waiter, Chef, Manager...
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RestaurantID string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Restaurant se hidrata en lecturas; puede ser nil.
	Restaurant *Restaurant
}

// BelongsTo indica si el trabajador está asignado al restaurante.
func (w *Worker) BelongsTo(restaurantID string) bool {
	return w != nil && w.RestaurantID == restaurantID
}

// RestaurantName devuelve el nombre del restaurante hidratado o "".
func (w *Worker) RestaurantName() string {
	if w == nil || w.Restaurant == nil {
		return ""
	}
	return w.Restaurant.Name
}
