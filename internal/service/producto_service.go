package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/calc"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/dto"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/repository"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	// Combo composition
	VincularParte(ctx context.Context, comboID uuid.UUID, req dto.VincularParteRequest) (*dto.ComboDetalleResponse, error)
	QuitarParte(ctx context.Context, comboID, parteID uuid.UUID) error
	ObtenerCombo(ctx context.Context, comboID uuid.UUID) (*dto.ComboDetalleResponse, error)

	// PrecioDe returns the effective unit price: the derived constituent sum
	// for combos with registered parts, the catalog price otherwise.
	PrecioDe(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}

type productoService struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, rdb: rdb}
}

const precioCacheTTL = 5 * time.Minute

// ── CRUD ─────────────────────────────────────────────────────────────────────

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Nombre:            req.Nombre,
		Categoria:         req.Categoria,
		UnidadMedida:      req.UnidadMedida,
		PorcionPorPersona: req.PorcionPorPersona,
		PrecioPorPorcion:  req.PrecioPorPorcion,
		EsCombo:           req.EsCombo,
		Aclaraciones:      req.Aclaraciones,
		Activo:            true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, *productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	return productoToResponse(p), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Categoria != nil {
		p.Categoria = *req.Categoria
	}
	if req.UnidadMedida != nil {
		p.UnidadMedida = *req.UnidadMedida
	}
	if req.PorcionPorPersona != nil {
		p.PorcionPorPersona = req.PorcionPorPersona
	}
	if req.PrecioPorPorcion != nil {
		p.PrecioPorPorcion = *req.PrecioPorPorcion
	}
	if req.Aclaraciones != nil {
		p.Aclaraciones = req.Aclaraciones
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	s.invalidarPrecio(ctx, p.ID)
	return productoToResponse(p), nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidarPrecio(ctx, id)
	return nil
}

func (s *productoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}

// ── Combo composition ────────────────────────────────────────────────────────

func (s *productoService) VincularParte(ctx context.Context, comboID uuid.UUID, req dto.VincularParteRequest) (*dto.ComboDetalleResponse, error) {
	combo, err := s.repo.FindByID(ctx, comboID)
	if err != nil {
		return nil, errors.New("combo no encontrado")
	}
	if !combo.EsCombo {
		return nil, errors.New("el producto no es un combo")
	}
	ingredienteID, err := uuid.Parse(req.IngredienteID)
	if err != nil {
		return nil, fmt.Errorf("ingrediente_id inválido: %w", err)
	}
	if ingredienteID == comboID {
		return nil, errors.New("un combo no puede contenerse a sí mismo")
	}
	if _, err := s.repo.FindByID(ctx, ingredienteID); err != nil {
		return nil, errors.New("ingrediente no encontrado")
	}

	parte := &model.ComboIngrediente{
		ComboID:       comboID,
		IngredienteID: ingredienteID,
		Cantidad:      req.Cantidad.Decimal,
	}
	if err := s.repo.CreateParte(ctx, parte); err != nil {
		return nil, fmt.Errorf("vincular parte: %w", err)
	}
	s.invalidarPrecio(ctx, comboID)
	return s.ObtenerCombo(ctx, comboID)
}

func (s *productoService) QuitarParte(ctx context.Context, comboID, parteID uuid.UUID) error {
	if err := s.repo.DeleteParte(ctx, parteID); err != nil {
		return err
	}
	s.invalidarPrecio(ctx, comboID)
	return nil
}

func (s *productoService) ObtenerCombo(ctx context.Context, comboID uuid.UUID) (*dto.ComboDetalleResponse, error) {
	combo, err := s.repo.FindByID(ctx, comboID)
	if err != nil {
		return nil, errors.New("combo no encontrado")
	}
	partes, err := s.repo.FindPartesByComboID(ctx, comboID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ComboDetalleResponse{
		Producto:       *productoToResponse(combo),
		Partes:         make([]dto.ParteComboResponse, 0, len(partes)),
		PrecioDerivado: calc.PrecioCombo(partes),
	}
	for _, parte := range partes {
		nombre := ""
		if parte.Ingrediente != nil {
			nombre = parte.Ingrediente.Nombre
		}
		resp.Partes = append(resp.Partes, dto.ParteComboResponse{
			ID:            parte.ID.String(),
			IngredienteID: parte.IngredienteID.String(),
			Ingrediente:   nombre,
			Cantidad:      parte.Cantidad,
		})
	}
	return resp, nil
}

// ── Price lookup ─────────────────────────────────────────────────────────────

func (s *productoService) PrecioDe(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, clavePrecio(id)).Result(); err == nil {
			if precio, perr := decimal.NewFromString(cached); perr == nil {
				return precio, nil
			}
		}
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, errors.New("producto no encontrado")
	}

	precio := p.PrecioPorPorcion
	if p.EsCombo {
		partes, err := s.repo.FindPartesByComboID(ctx, id)
		if err != nil {
			return decimal.Zero, err
		}
		if len(partes) > 0 {
			precio = calc.PrecioCombo(partes)
		}
	}

	if s.rdb != nil {
		_ = s.rdb.Set(ctx, clavePrecio(id), precio.String(), precioCacheTTL).Err()
	}
	return precio, nil
}

func (s *productoService) invalidarPrecio(ctx context.Context, id uuid.UUID) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, clavePrecio(id)).Err()
	}
}

func clavePrecio(id uuid.UUID) string { return "precio:" + id.String() }

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                p.ID.String(),
		Nombre:            p.Nombre,
		Categoria:         p.Categoria,
		UnidadMedida:      p.UnidadMedida,
		PorcionPorPersona: p.PorcionPorPersona,
		PorcionEstandar:   calc.ParsearPorcion(p.PorcionPorPersona),
		PrecioPorPorcion:  p.PrecioPorPorcion,
		EsCombo:           p.EsCombo,
		Aclaraciones:      p.Aclaraciones,
		Activo:            p.Activo,
	}
}
