// Package seed carga restaurantes y trabajadores iniciales desde un fixture YAML.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/pkg/logger"
)

// Worker trabajador del fixture.
type Worker struct {
	Name     string `yaml:"name" validate:"required"`
	Email    string `yaml:"email" validate:"required,email"`
	Password string `yaml:"password" validate:"required,min=8"`
	Phone    string `yaml:"phone,omitempty"`
	Role     string `yaml:"role" validate:"required"`
	Active   *bool  `yaml:"active,omitempty"`
}

// Restaurant restaurante del fixture con sus trabajadores.
type Restaurant struct {
	Name    string   `yaml:"name" validate:"required"`
	Workers []Worker `yaml:"workers,omitempty" validate:"dive"`
}

// Fixture raíz del archivo.
type Fixture struct {
	Restaurants []Restaurant `yaml:"restaurants" validate:"required,min=1,dive"`
}

// RestaurantService lo que el seeder necesita del caso de uso de restaurantes.
type RestaurantService interface {
	Create(ctx context.Context, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	List(ctx context.Context) ([]dto.RestaurantResponse, error)
}

// WorkerService lo que el seeder necesita del caso de uso de trabajadores.
type WorkerService interface {
	Create(ctx context.Context, in dto.CreateWorkerRequest) (*dto.WorkerResponse, error)
}

// Result resumen de la carga.
type Result struct {
	RestaurantsCreated int
	WorkersCreated     int
	WorkersSkipped     int
}

var validate = validator.New()

// LoadFromPath lee y valida el fixture.
func LoadFromPath(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir fixture: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodifica y valida el fixture. Campos desconocidos son error.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("parsear fixture: %w", err)
	}
	if err := validate.Struct(&fx); err != nil {
		return nil, fmt.Errorf("fixture inválido: %w", err)
	}
	return &fx, nil
}

// Apply crea lo que falte. Un restaurante con el mismo nombre se reutiliza y un email ya
// registrado se omite, de modo que aplicar el mismo fixture dos veces no duplica nada.
func Apply(ctx context.Context, fx *Fixture, restaurants RestaurantService, workers WorkerService, log *logger.Logger) (Result, error) {
	var res Result
	existing, err := restaurants.List(ctx)
	if err != nil {
		return res, err
	}
	byName := make(map[string]string, len(existing))
	for _, r := range existing {
		byName[strings.ToLower(r.Name)] = r.ID
	}

	for _, fr := range fx.Restaurants {
		id, ok := byName[strings.ToLower(fr.Name)]
		if !ok {
			created, err := restaurants.Create(ctx, dto.CreateRestaurantRequest{Name: fr.Name})
			if err != nil {
				return res, fmt.Errorf("crear restaurante %q: %w", fr.Name, err)
			}
			id = created.ID
			byName[strings.ToLower(fr.Name)] = id
			res.RestaurantsCreated++
		}

		for _, fw := range fr.Workers {
			_, err := workers.Create(ctx, dto.CreateWorkerRequest{
				Name: fw.Name, Email: fw.Email, Password: fw.Password, Phone: fw.Phone,
				Role: fw.Role, Active: fw.Active, RestaurantID: id,
			})
			switch {
			case errors.Is(err, domain.ErrEmailAlreadyExists):
				res.WorkersSkipped++
				if log != nil {
					log.Debug().Str("email", fw.Email).Msg("trabajador ya existe, se omite")
				}
			case err != nil:
				return res, fmt.Errorf("crear trabajador %q: %w", fw.Email, err)
			default:
				res.WorkersCreated++
			}
		}
	}
	return res, nil
}
