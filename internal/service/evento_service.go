package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/calc"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/dto"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/repository"
)

type EventoService interface {
	Crear(ctx context.Context, req dto.CrearEventoRequest) (*dto.EventoResponse, error)
	Listar(ctx context.Context, page, limit int) (*dto.EventoListResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EventoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEventoRequest) (*dto.EventoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	AgregarIngrediente(ctx context.Context, eventoID uuid.UUID, req dto.AgregarIngredienteRequest) (*dto.EventoResponse, error)
	ActualizarIngrediente(ctx context.Context, eventoID, ingredienteID uuid.UUID, req dto.ActualizarIngredienteRequest) (*dto.EventoResponse, error)
	// RestablecerPorcion resets a line to the catalog's standard portion.
	RestablecerPorcion(ctx context.Context, eventoID, ingredienteID uuid.UUID) (*dto.EventoResponse, error)
	QuitarIngrediente(ctx context.Context, eventoID, ingredienteID uuid.UUID) error

	Costo(ctx context.Context, eventoID uuid.UUID) (*dto.CostoEventoResponse, error)
}

type eventoService struct {
	repo         repository.EventoRepository
	productoRepo repository.ProductoRepository
	productos    ProductoService
}

func NewEventoService(repo repository.EventoRepository, productoRepo repository.ProductoRepository, productos ProductoService) EventoService {
	return &eventoService{repo: repo, productoRepo: productoRepo, productos: productos}
}

const formatoFecha = "2006-01-02"

// ── Eventos ──────────────────────────────────────────────────────────────────

func (s *eventoService) Crear(ctx context.Context, req dto.CrearEventoRequest) (*dto.EventoResponse, error) {
	e := &model.Evento{
		Nombre:            req.Nombre,
		CantidadInvitados: req.CantidadInvitados,
		Notas:             req.Notas,
	}
	if req.Fecha != nil {
		fecha, err := time.Parse(formatoFecha, *req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
		e.Fecha = &fecha
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("crear evento: %w", err)
	}
	return eventoToResponse(e), nil
}

func (s *eventoService) Listar(ctx context.Context, page, limit int) (*dto.EventoListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	eventos, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.EventoResponse, 0, len(eventos))
	for i := range eventos {
		data = append(data, *eventoToResponse(&eventos[i]))
	}
	return &dto.EventoListResponse{Data: data, Total: total, Page: page, Limit: limit}, nil
}

func (s *eventoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EventoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("evento no encontrado")
	}
	return eventoToResponse(e), nil
}

func (s *eventoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEventoRequest) (*dto.EventoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("evento no encontrado")
	}
	if req.Nombre != nil {
		e.Nombre = *req.Nombre
	}
	if req.Fecha != nil {
		fecha, err := time.Parse(formatoFecha, *req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
		e.Fecha = &fecha
	}
	if req.CantidadInvitados != nil {
		e.CantidadInvitados = *req.CantidadInvitados
	}
	if req.Notas != nil {
		e.Notas = req.Notas
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("actualizar evento: %w", err)
	}
	return eventoToResponse(e), nil
}

func (s *eventoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ── Ingredientes ─────────────────────────────────────────────────────────────

func (s *eventoService) AgregarIngrediente(ctx context.Context, eventoID uuid.UUID, req dto.AgregarIngredienteRequest) (*dto.EventoResponse, error) {
	if _, err := s.repo.FindByID(ctx, eventoID); err != nil {
		return nil, errors.New("evento no encontrado")
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("producto_id inválido: %w", err)
	}
	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	// Default to the catalog's standard portion; an explicit value arrives in
	// display units and is converted back to the storage basis.
	cantidad := calc.ParsearPorcion(producto.PorcionPorPersona)
	if req.Valor != nil {
		unidad := calc.UnidadUnidad
		if req.Unidad != nil {
			unidad = calc.Unidad(*req.Unidad)
		}
		cantidad = calc.DesdeEntradaDisplay(producto, req.Valor.Decimal, unidad)
	}

	orden, err := s.repo.MaxOrden(ctx, eventoID)
	if err != nil {
		return nil, err
	}
	ing := &model.EventoIngrediente{
		EventoID:           eventoID,
		ProductoID:         productoID,
		CantidadPorPersona: cantidad,
		CantidadFija:       req.CantidadFija,
		Notas:              req.Notas,
		Orden:              orden + 1,
	}
	if err := s.repo.CreateIngrediente(ctx, ing); err != nil {
		return nil, fmt.Errorf("agregar ingrediente: %w", err)
	}
	return s.ObtenerPorID(ctx, eventoID)
}

func (s *eventoService) ActualizarIngrediente(ctx context.Context, eventoID, ingredienteID uuid.UUID, req dto.ActualizarIngredienteRequest) (*dto.EventoResponse, error) {
	ing, err := s.repo.FindIngredienteByID(ctx, ingredienteID)
	if err != nil || ing.EventoID != eventoID {
		return nil, errors.New("ingrediente no encontrado")
	}
	if ing.Producto == nil {
		return nil, errors.New("producto del ingrediente no encontrado")
	}

	ing.CantidadPorPersona = calc.DesdeEntradaDisplay(ing.Producto, req.Valor.Decimal, calc.Unidad(req.Unidad))
	if req.CantidadFija != nil {
		ing.CantidadFija = *req.CantidadFija
	}
	if req.Notas != nil {
		ing.Notas = req.Notas
	}
	if err := s.repo.UpdateIngrediente(ctx, ing); err != nil {
		return nil, fmt.Errorf("actualizar ingrediente: %w", err)
	}
	return s.ObtenerPorID(ctx, eventoID)
}

func (s *eventoService) RestablecerPorcion(ctx context.Context, eventoID, ingredienteID uuid.UUID) (*dto.EventoResponse, error) {
	ing, err := s.repo.FindIngredienteByID(ctx, ingredienteID)
	if err != nil || ing.EventoID != eventoID {
		return nil, errors.New("ingrediente no encontrado")
	}
	if ing.Producto == nil {
		return nil, errors.New("producto del ingrediente no encontrado")
	}
	ing.CantidadPorPersona = calc.ParsearPorcion(ing.Producto.PorcionPorPersona)
	if err := s.repo.UpdateIngrediente(ctx, ing); err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, eventoID)
}

func (s *eventoService) QuitarIngrediente(ctx context.Context, eventoID, ingredienteID uuid.UUID) error {
	ing, err := s.repo.FindIngredienteByID(ctx, ingredienteID)
	if err != nil || ing.EventoID != eventoID {
		return errors.New("ingrediente no encontrado")
	}
	return s.repo.DeleteIngrediente(ctx, ingredienteID)
}

// ── Costo ────────────────────────────────────────────────────────────────────

func (s *eventoService) Costo(ctx context.Context, eventoID uuid.UUID) (*dto.CostoEventoResponse, error) {
	e, err := s.repo.FindByID(ctx, eventoID)
	if err != nil {
		return nil, errors.New("evento no encontrado")
	}

	// Combo lines are costed at the derived constituent-sum price; the
	// catalog record of a combo often carries a stale or zero price.
	for i := range e.Ingredientes {
		p := e.Ingredientes[i].Producto
		if p == nil || !p.EsCombo {
			continue
		}
		if precio, perr := s.productos.PrecioDe(ctx, p.ID); perr == nil {
			p.PrecioPorPorcion = precio
		}
	}

	costo := calc.CalcularCostoEvento(e)
	resp := &dto.CostoEventoResponse{
		EventoID:         e.ID.String(),
		CostoTotal:       costo.CostoTotal,
		CostoPorInvitado: costo.CostoPorInvitado,
		Ingredientes:     make([]dto.CostoIngredienteResponse, 0, len(costo.Ingredientes)),
		PorCategoria:     costo.PorCategoria,
	}
	for _, ci := range costo.Ingredientes {
		display := calc.ConvertirADisplay(ci.Producto, ci.CantidadTotal)
		resp.Ingredientes = append(resp.Ingredientes, dto.CostoIngredienteResponse{
			ProductoID:    ci.Producto.ID.String(),
			Producto:      ci.Producto.Nombre,
			Categoria:     model.CategoriaODefecto(ci.Producto),
			CantidadTotal: display.Valor,
			Unidad:        string(display.Unidad),
			Costo:         ci.Costo,
		})
	}
	return resp, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func eventoToResponse(e *model.Evento) *dto.EventoResponse {
	resp := &dto.EventoResponse{
		ID:                e.ID.String(),
		Nombre:            e.Nombre,
		CantidadInvitados: e.CantidadInvitados,
		Notas:             e.Notas,
		Ingredientes:      make([]dto.IngredienteResponse, 0, len(e.Ingredientes)),
	}
	if e.Fecha != nil {
		f := e.Fecha.Format(formatoFecha)
		resp.Fecha = &f
	}
	for _, ing := range e.Ingredientes {
		if ing.Producto == nil {
			continue
		}
		display := calc.ConvertirADisplay(ing.Producto, ing.CantidadPorPersona)
		estandar := calc.ParsearPorcion(ing.Producto.PorcionPorPersona)
		resp.Ingredientes = append(resp.Ingredientes, dto.IngredienteResponse{
			ID:                ing.ID.String(),
			ProductoID:        ing.ProductoID.String(),
			Producto:          ing.Producto.Nombre,
			Categoria:         model.CategoriaODefecto(ing.Producto),
			Valor:             display.Valor,
			Unidad:            string(display.Unidad),
			CantidadFija:      ing.CantidadFija,
			EsPorcionEstandar: ing.CantidadPorPersona.Equal(estandar),
			Notas:             ing.Notas,
		})
	}
	return resp
}
