package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/calc"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/dto"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/infra"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/repository"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/worker"
)

// PresupuestoService owns the quote lifecycle. Every write goes through
// calc.RecalcularPresupuesto before persisting: the stored record always
// carries fresh HT/TVA/TTC figures.
type PresupuestoService interface {
	Crear(ctx context.Context, req dto.GuardarPresupuestoRequest) (*dto.PresupuestoResponse, error)
	Listar(ctx context.Context, page, limit int) (*dto.PresupuestoListResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PresupuestoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarPresupuestoRequest) (*dto.PresupuestoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// EnviarPorEmail renders the quote PDF and queues it for delivery.
	EnviarPorEmail(ctx context.Context, id uuid.UUID, req dto.EnviarPresupuestoRequest) error
}

type presupuestoService struct {
	repo        repository.PresupuestoRepository
	dispatcher  *worker.Dispatcher
	storagePath string
}

func NewPresupuestoService(repo repository.PresupuestoRepository, dispatcher *worker.Dispatcher, storagePath string) PresupuestoService {
	return &presupuestoService{repo: repo, dispatcher: dispatcher, storagePath: storagePath}
}

func (s *presupuestoService) Crear(ctx context.Context, req dto.GuardarPresupuestoRequest) (*dto.PresupuestoResponse, error) {
	p, err := presupuestoFromRequest(req)
	if err != nil {
		return nil, err
	}
	recalculado := calc.RecalcularPresupuesto(*p)
	if err := s.repo.Create(ctx, &recalculado); err != nil {
		return nil, fmt.Errorf("crear presupuesto: %w", err)
	}
	return presupuestoToResponse(&recalculado), nil
}

func (s *presupuestoService) Listar(ctx context.Context, page, limit int) (*dto.PresupuestoListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	presupuestos, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PresupuestoResponse, 0, len(presupuestos))
	for i := range presupuestos {
		data = append(data, *presupuestoToResponse(&presupuestos[i]))
	}
	return &dto.PresupuestoListResponse{Data: data, Total: total, Page: page, Limit: limit}, nil
}

func (s *presupuestoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PresupuestoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("presupuesto no encontrado")
	}
	return presupuestoToResponse(p), nil
}

func (s *presupuestoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarPresupuestoRequest) (*dto.PresupuestoResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, errors.New("presupuesto no encontrado")
	}
	p, err := presupuestoFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = id
	recalculado := calc.RecalcularPresupuesto(*p)
	if err := s.repo.Replace(ctx, &recalculado); err != nil {
		return nil, fmt.Errorf("actualizar presupuesto: %w", err)
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *presupuestoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *presupuestoService) EnviarPorEmail(ctx context.Context, id uuid.UUID, req dto.EnviarPresupuestoRequest) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("presupuesto no encontrado")
	}
	if s.dispatcher == nil {
		return errors.New("envío de presupuestos no disponible")
	}

	pdfPath, err := infra.GenerarPresupuestoPDF(p, s.storagePath)
	if err != nil {
		return fmt.Errorf("generar PDF del presupuesto: %w", err)
	}

	payload := worker.EmailJobPayload{
		ToEmail: req.Email,
		Subject: fmt.Sprintf("Presupuesto — %s", p.Cliente),
		Body:    "Adjuntamos el presupuesto solicitado. Quedamos a disposición por cualquier consulta.",
		PDFPath: pdfPath,
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		return fmt.Errorf("encolar email: %w", err)
	}
	return nil
}

// ── mapping ──────────────────────────────────────────────────────────────────

func presupuestoFromRequest(req dto.GuardarPresupuestoRequest) (*model.Presupuesto, error) {
	p := &model.Presupuesto{
		Cliente:      req.Cliente,
		DescuentoPct: req.DescuentoPct.Decimal,
	}
	if req.Fecha != nil {
		fecha, err := time.Parse(formatoFecha, *req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
		p.Fecha = &fecha
	}
	if req.Menu != nil {
		p.Menu = &model.SeccionMenu{
			PrecioPorPersona: req.Menu.PrecioPorPersona.Decimal,
			TotalPersonas:    req.Menu.TotalPersonas,
			TVAPct:           req.Menu.TVAPct.Decimal,
		}
	}
	if req.Servicio != nil {
		p.Servicio = &model.SeccionServicio{
			Mozos:         req.Servicio.Mozos,
			Horas:         req.Servicio.Horas.Decimal,
			PrecioPorHora: req.Servicio.PrecioPorHora.Decimal,
			TVAPct:        req.Servicio.TVAPct.Decimal,
		}
	}
	if req.Material != nil {
		seccion := &model.SeccionMaterial{TVAPct: req.Material.TVAPct.Decimal}
		if req.Material.SeguroPct != nil {
			seguro := req.Material.SeguroPct.Decimal
			seccion.SeguroPct = &seguro
		}
		for _, item := range req.Material.Items {
			seccion.Items = append(seccion.Items, model.MaterialItem{
				Nombre:         item.Nombre,
				Cantidad:       item.Cantidad.Decimal,
				PrecioUnitario: item.PrecioUnitario.Decimal,
			})
		}
		p.Material = seccion
	}
	if req.Entrega != nil {
		p.Entrega = &model.SeccionEntrega{
			CostoEntrega: req.Entrega.CostoEntrega.Decimal,
			CostoReprise: req.Entrega.CostoReprise.Decimal,
			TVAPct:       req.Entrega.TVAPct.Decimal,
		}
	}
	if req.Bebidas != nil {
		p.Bebidas = &model.SeccionBebidas{
			PrecioPorPersona: req.Bebidas.PrecioPorPersona.Decimal,
			TotalPersonas:    req.Bebidas.TotalPersonas,
		}
	}
	if req.Desplazamiento != nil {
		p.Desplazamiento = &model.SeccionDesplazamiento{
			DistanciaKm: req.Desplazamiento.DistanciaKm.Decimal,
			PrecioPorKm: req.Desplazamiento.PrecioPorKm.Decimal,
			TVAPct:      req.Desplazamiento.TVAPct.Decimal,
		}
	}
	return p, nil
}

func presupuestoToResponse(p *model.Presupuesto) *dto.PresupuestoResponse {
	resp := &dto.PresupuestoResponse{
		ID:                p.ID.String(),
		Cliente:           p.Cliente,
		Secciones:         make(map[string]dto.SeccionTotalesResponse),
		TotalHT:           p.TotalHT,
		TotalTVA:          p.TotalTVA,
		TotalTTC:          p.TotalTTC,
		DescuentoPct:      p.DescuentoPct,
		MontoDescuento:    p.MontoDescuento,
		TotalConDescuento: p.TotalTTC.Sub(p.MontoDescuento),
	}
	if p.Fecha != nil {
		f := p.Fecha.Format(formatoFecha)
		resp.Fecha = &f
	}

	agregar := func(nombre string, ht, pct, tva, ttc decimal.Decimal) {
		resp.Secciones[nombre] = dto.SeccionTotalesResponse{TotalHT: ht, TVAPct: pct, TVA: tva, TotalTTC: ttc}
	}
	if p.Menu != nil {
		agregar("menu", p.Menu.TotalHT, p.Menu.TVAPct, p.Menu.TVA, p.Menu.TotalTTC)
	}
	if p.Servicio != nil {
		agregar("servicio", p.Servicio.TotalHT, p.Servicio.TVAPct, p.Servicio.TVA, p.Servicio.TotalTTC)
	}
	if p.Material != nil {
		agregar("material", p.Material.TotalHT, p.Material.TVAPct, p.Material.TVA, p.Material.TotalTTC)
	}
	if p.Entrega != nil {
		agregar("entrega", p.Entrega.TotalHT, p.Entrega.TVAPct, p.Entrega.TVA, p.Entrega.TotalTTC)
	}
	if p.Bebidas != nil {
		agregar("bebidas", p.Bebidas.TotalHT, p.Bebidas.TVAPct, p.Bebidas.TVA, p.Bebidas.TotalTTC)
	}
	if p.Desplazamiento != nil {
		agregar("desplazamiento", p.Desplazamiento.TotalHT, p.Desplazamiento.TVAPct, p.Desplazamiento.TVA, p.Desplazamiento.TotalTTC)
	}
	return resp
}
