package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/dto"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/repository"
)

// In-memory repository stubs. Services are tested against these instead of a
// database; the gorm implementations are covered by the repository layer.

// ── ProductoRepository stub ──────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
	partes    map[uuid.UUID]*model.ComboIngrediente
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos: make(map[uuid.UUID]*model.Producto),
		partes:    make(map[uuid.UUID]*model.ComboIngrediente),
	}
}

func (r *stubProductoRepo) agregar(p *model.Producto) *model.Producto {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.agregar(p)
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if !filter.IncluirInactivos && !p.Activo {
			continue
		}
		if filter.Categoria != "" && p.Categoria != filter.Categoria {
			continue
		}
		if filter.SoloCombos && !p.EsCombo {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return errors.New("not found")
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return errors.New("not found")
	}
	p.Activo = true
	return nil
}

func (r *stubProductoRepo) CreateParte(_ context.Context, parte *model.ComboIngrediente) error {
	if parte.ID == uuid.Nil {
		parte.ID = uuid.New()
	}
	if parte.Ingrediente == nil {
		parte.Ingrediente = r.productos[parte.IngredienteID]
	}
	r.partes[parte.ID] = parte
	return nil
}

func (r *stubProductoRepo) DeleteParte(_ context.Context, id uuid.UUID) error {
	delete(r.partes, id)
	return nil
}

func (r *stubProductoRepo) FindPartesByComboID(_ context.Context, comboID uuid.UUID) ([]model.ComboIngrediente, error) {
	var out []model.ComboIngrediente
	for _, parte := range r.partes {
		if parte.ComboID == comboID {
			out = append(out, *parte)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) FindPartesDeCombos(_ context.Context) (map[uuid.UUID][]model.ComboIngrediente, error) {
	porCombo := make(map[uuid.UUID][]model.ComboIngrediente)
	for _, parte := range r.partes {
		porCombo[parte.ComboID] = append(porCombo[parte.ComboID], *parte)
	}
	return porCombo, nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── EventoRepository stub ────────────────────────────────────────────────────

// stubEventoRepo mirrors the gorm implementation's preloading: every returned
// line carries the Producto resolved from the product stub.
type stubEventoRepo struct {
	eventos      map[uuid.UUID]*model.Evento
	ingredientes map[uuid.UUID]*model.EventoIngrediente
	productos    *stubProductoRepo
}

func newStubEventoRepo(productos *stubProductoRepo) *stubEventoRepo {
	return &stubEventoRepo{
		eventos:      make(map[uuid.UUID]*model.Evento),
		ingredientes: make(map[uuid.UUID]*model.EventoIngrediente),
		productos:    productos,
	}
}

func (r *stubEventoRepo) Create(_ context.Context, e *model.Evento) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.eventos[e.ID] = e
	return nil
}

func (r *stubEventoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Evento, error) {
	e, ok := r.eventos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	e.Ingredientes = r.lineasDe(id)
	return e, nil
}

func (r *stubEventoRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Evento, error) {
	var out []model.Evento
	if len(ids) == 0 {
		for id := range r.eventos {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		e, ok := r.eventos[id]
		if !ok {
			continue
		}
		copia := *e
		copia.Ingredientes = r.lineasDe(id)
		out = append(out, copia)
	}
	return out, nil
}

func (r *stubEventoRepo) List(_ context.Context, _, _ int) ([]model.Evento, int64, error) {
	var out []model.Evento
	for id, e := range r.eventos {
		copia := *e
		copia.Ingredientes = r.lineasDe(id)
		out = append(out, copia)
	}
	return out, int64(len(out)), nil
}

func (r *stubEventoRepo) Update(_ context.Context, e *model.Evento) error {
	r.eventos[e.ID] = e
	return nil
}

func (r *stubEventoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.eventos, id)
	return nil
}

func (r *stubEventoRepo) CreateIngrediente(_ context.Context, ing *model.EventoIngrediente) error {
	if ing.ID == uuid.Nil {
		ing.ID = uuid.New()
	}
	r.ingredientes[ing.ID] = ing
	return nil
}

func (r *stubEventoRepo) FindIngredienteByID(_ context.Context, id uuid.UUID) (*model.EventoIngrediente, error) {
	ing, ok := r.ingredientes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	if ing.Producto == nil && r.productos != nil {
		ing.Producto = r.productos.productos[ing.ProductoID]
	}
	return ing, nil
}

func (r *stubEventoRepo) UpdateIngrediente(_ context.Context, ing *model.EventoIngrediente) error {
	r.ingredientes[ing.ID] = ing
	return nil
}

func (r *stubEventoRepo) DeleteIngrediente(_ context.Context, id uuid.UUID) error {
	delete(r.ingredientes, id)
	return nil
}

func (r *stubEventoRepo) MaxOrden(_ context.Context, eventoID uuid.UUID) (int, error) {
	max := 0
	for _, ing := range r.ingredientes {
		if ing.EventoID == eventoID && ing.Orden > max {
			max = ing.Orden
		}
	}
	return max, nil
}

func (r *stubEventoRepo) lineasDe(eventoID uuid.UUID) []model.EventoIngrediente {
	var out []model.EventoIngrediente
	for orden := 0; orden <= len(r.ingredientes); orden++ {
		for _, ing := range r.ingredientes {
			if ing.EventoID != eventoID || ing.Orden != orden {
				continue
			}
			copia := *ing
			if copia.Producto == nil && r.productos != nil {
				copia.Producto = r.productos.productos[copia.ProductoID]
			}
			out = append(out, copia)
		}
	}
	return out
}

var _ repository.EventoRepository = (*stubEventoRepo)(nil)

// ── PresupuestoRepository stub ───────────────────────────────────────────────

type stubPresupuestoRepo struct {
	presupuestos map[uuid.UUID]*model.Presupuesto
}

func newStubPresupuestoRepo() *stubPresupuestoRepo {
	return &stubPresupuestoRepo{presupuestos: make(map[uuid.UUID]*model.Presupuesto)}
}

func (r *stubPresupuestoRepo) Create(_ context.Context, p *model.Presupuesto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.presupuestos[p.ID] = p
	return nil
}

func (r *stubPresupuestoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Presupuesto, error) {
	p, ok := r.presupuestos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubPresupuestoRepo) List(_ context.Context, _, _ int) ([]model.Presupuesto, int64, error) {
	var out []model.Presupuesto
	for _, p := range r.presupuestos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPresupuestoRepo) Replace(_ context.Context, p *model.Presupuesto) error {
	if _, ok := r.presupuestos[p.ID]; !ok {
		return errors.New("not found")
	}
	r.presupuestos[p.ID] = p
	return nil
}

func (r *stubPresupuestoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.presupuestos, id)
	return nil
}

var _ repository.PresupuestoRepository = (*stubPresupuestoRepo)(nil)

// ── UsuarioRepository stub ───────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

// Mirrors the SQL repository: username lookup only sees active accounts.
func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) List(_ context.Context, incluirInactivos bool) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if !incluirInactivos && !u.Activo {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("not found")
	}
	u.Activo = false
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)
