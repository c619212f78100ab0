package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/calc"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/dto"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/repository"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/worker"
)

// ResumenService folds any number of events into one purchasing view:
// per-ingredient grand totals with combos broken down into raw ingredients.
type ResumenService interface {
	Resumen(ctx context.Context, req dto.ResumenRequest) (*dto.ResumenResponse, error)
	// GenerarListaCompras queues the purchasing-list PDF for async rendering.
	GenerarListaCompras(ctx context.Context, req dto.GenerarListaComprasRequest) (*dto.ListaComprasResponse, error)
}

type resumenService struct {
	eventoRepo   repository.EventoRepository
	productoRepo repository.ProductoRepository
	dispatcher   *worker.Dispatcher
}

func NewResumenService(eventoRepo repository.EventoRepository, productoRepo repository.ProductoRepository, dispatcher *worker.Dispatcher) ResumenService {
	return &resumenService{eventoRepo: eventoRepo, productoRepo: productoRepo, dispatcher: dispatcher}
}

func (s *resumenService) Resumen(ctx context.Context, req dto.ResumenRequest) (*dto.ResumenResponse, error) {
	ids, err := parseIDs(req.EventoIDs)
	if err != nil {
		return nil, err
	}
	eventos, err := s.eventoRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("cargar eventos: %w", err)
	}
	partes, err := s.productoRepo.FindPartesDeCombos(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar partes de combos: %w", err)
	}

	agregado := calc.AgregarEventos(eventos, func(comboID uuid.UUID) []model.ComboIngrediente {
		return partes[comboID]
	})
	return agregadoToResponse(len(eventos), agregado), nil
}

func (s *resumenService) GenerarListaCompras(ctx context.Context, req dto.GenerarListaComprasRequest) (*dto.ListaComprasResponse, error) {
	if _, err := parseIDs(req.EventoIDs); err != nil {
		return nil, err
	}
	if s.dispatcher == nil {
		return nil, fmt.Errorf("generación de PDF no disponible")
	}
	if err := s.dispatcher.EnqueueListaCompras(ctx, worker.ListaComprasJobPayload{EventoIDs: req.EventoIDs}); err != nil {
		return nil, fmt.Errorf("encolar lista de compras: %w", err)
	}
	return &dto.ListaComprasResponse{Encolado: true, Detalle: "la lista de compras se está generando"}, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("evento_id inválido %q: %w", r, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// agregadoToResponse renders every total with the purchasing-list display
// policy (kilograms for mass products, never grams).
func agregadoToResponse(eventos int, agregado calc.Agregado) *dto.ResumenResponse {
	resp := &dto.ResumenResponse{
		Eventos:      eventos,
		Totales:      make([]dto.TotalIngredienteResponse, 0, len(agregado.Totales)),
		PorCategoria: make(map[string][]dto.TotalIngredienteResponse, len(agregado.PorCategoria)),
	}
	for _, t := range agregado.Totales {
		resp.Totales = append(resp.Totales, totalToResponse(t))
	}
	for categoria, totales := range agregado.PorCategoria {
		grupo := make([]dto.TotalIngredienteResponse, 0, len(totales))
		for _, t := range totales {
			grupo = append(grupo, totalToResponse(t))
		}
		resp.PorCategoria[categoria] = grupo
	}
	return resp
}

func totalToResponse(t calc.TotalIngrediente) dto.TotalIngredienteResponse {
	display := calc.ConvertirADisplayResumen(t.Producto, t.Cantidad)
	return dto.TotalIngredienteResponse{
		ProductoID: t.Producto.ID.String(),
		Producto:   t.Producto.Nombre,
		Categoria:  model.CategoriaODefecto(t.Producto),
		Cantidad:   display.Valor,
		Unidad:     string(display.Unidad),
	}
}
