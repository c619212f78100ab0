package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/dto"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func TestPresupuestoService_CrearRecalculaTotales(t *testing.T) {
	repo := newStubPresupuestoRepo()
	svc := NewPresupuestoService(repo, nil, t.TempDir())

	resp, err := svc.Crear(context.Background(), dto.GuardarPresupuestoRequest{
		Cliente: "Famille Dupont",
		Menu: &dto.SeccionMenuRequest{
			PrecioPorPersona: dto.NewMonto(decimal.NewFromInt(40)),
			TotalPersonas:    50,
			TVAPct:           dto.NewMonto(decimal.NewFromInt(10)),
		},
		Servicio: &dto.SeccionServicioRequest{
			Mozos: 3,
			Horas: dto.NewMonto(decimal.NewFromInt(5)),
			// client-sent rate must be ignored
			PrecioPorHora: dto.NewMonto(decimal.NewFromInt(1)),
			TVAPct:        dto.NewMonto(decimal.NewFromInt(5)),
		},
	})
	require.NoError(t, err)

	// menu: 40×50 = 2000 HT, 10% VAT
	menu := resp.Secciones["menu"]
	assert.True(t, menu.TotalHT.Equal(decimal.NewFromInt(2000)), "got %s", menu.TotalHT)
	assert.True(t, menu.TVA.Equal(decimal.NewFromInt(200)))
	assert.True(t, menu.TotalTTC.Equal(decimal.NewFromInt(2200)))

	// servicio: rate forced to 40/h and VAT to 20% → 3×5×40 = 600 HT
	servicio := resp.Secciones["servicio"]
	assert.True(t, servicio.TotalHT.Equal(decimal.NewFromInt(600)), "got %s", servicio.TotalHT)
	assert.True(t, servicio.TVAPct.Equal(decimal.NewFromInt(20)))
	assert.True(t, servicio.TVA.Equal(decimal.NewFromInt(120)))

	assert.True(t, resp.TotalHT.Equal(decimal.NewFromInt(2600)))
	assert.True(t, resp.TotalTTC.Equal(decimal.NewFromInt(2920)))
}

func TestPresupuestoService_SeccionesAusentesNoSuman(t *testing.T) {
	repo := newStubPresupuestoRepo()
	svc := NewPresupuestoService(repo, nil, t.TempDir())

	resp, err := svc.Crear(context.Background(), dto.GuardarPresupuestoRequest{
		Cliente: "Cliente sin secciones",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Secciones)
	assert.True(t, resp.TotalHT.IsZero())
	assert.True(t, resp.TotalTTC.IsZero())
}

func TestPresupuestoService_DescuentoNoAlteraTotales(t *testing.T) {
	repo := newStubPresupuestoRepo()
	svc := NewPresupuestoService(repo, nil, t.TempDir())

	resp, err := svc.Crear(context.Background(), dto.GuardarPresupuestoRequest{
		Cliente: "Con descuento",
		Menu: &dto.SeccionMenuRequest{
			PrecioPorPersona: dto.NewMonto(decimal.NewFromInt(10)),
			TotalPersonas:    100,
			TVAPct:           dto.NewMonto(decimal.NewFromInt(20)),
		},
		DescuentoPct: dto.NewMonto(decimal.NewFromInt(10)),
	})
	require.NoError(t, err)

	// stored totals stay pre-discount; the discount only shows alongside
	assert.True(t, resp.TotalHT.Equal(decimal.NewFromInt(1000)))
	assert.True(t, resp.TotalTTC.Equal(decimal.NewFromInt(1200)))
	assert.True(t, resp.MontoDescuento.Equal(decimal.NewFromInt(100)), "got %s", resp.MontoDescuento)
	assert.True(t, resp.TotalConDescuento.Equal(decimal.NewFromInt(1100)), "got %s", resp.TotalConDescuento)
}

func TestPresupuestoService_ActualizarReemplaza(t *testing.T) {
	repo := newStubPresupuestoRepo()
	svc := NewPresupuestoService(repo, nil, t.TempDir())
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.GuardarPresupuestoRequest{
		Cliente: "Original",
		Bebidas: &dto.SeccionBebidasRequest{
			PrecioPorPersona: dto.NewMonto(decimal.NewFromInt(5)),
			TotalPersonas:    10,
		},
	})
	require.NoError(t, err)

	id := creado.ID
	actualizado, err := svc.Actualizar(ctx, mustUUID(t, id), dto.GuardarPresupuestoRequest{
		Cliente: "Actualizado",
		Entrega: &dto.SeccionEntregaRequest{
			CostoEntrega: dto.NewMonto(decimal.NewFromInt(80)),
			CostoReprise: dto.NewMonto(decimal.NewFromInt(80)),
			TVAPct:       dto.NewMonto(decimal.NewFromInt(20)),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Actualizado", actualizado.Cliente)
	_, tieneBebidas := actualizado.Secciones["bebidas"]
	assert.False(t, tieneBebidas, "las secciones no enviadas deben desaparecer")
	entrega := actualizado.Secciones["entrega"]
	assert.True(t, entrega.TotalHT.Equal(decimal.NewFromInt(160)))
}

func TestPresupuestoService_EnviarSinDispatcher(t *testing.T) {
	repo := newStubPresupuestoRepo()
	svc := NewPresupuestoService(repo, nil, t.TempDir())
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.GuardarPresupuestoRequest{Cliente: "Cliente"})
	require.NoError(t, err)

	err = svc.EnviarPorEmail(ctx, mustUUID(t, creado.ID), dto.EnviarPresupuestoRequest{Email: "cliente@example.com"})
	assert.Error(t, err)
}
