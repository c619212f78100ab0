package worker

// lista_compras_worker.go
// Processes purchasing-list jobs from QueueListaCompras: reloads the requested
// events, aggregates ingredient quantities across them and renders the result
// as a PDF under the configured storage path.

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/calc"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/infra"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/repository"
)

// ListaComprasJobPayload is the job envelope sent to QueueListaCompras.
type ListaComprasJobPayload struct {
	EventoIDs []string `json:"evento_ids"`
}

type ListaComprasWorker struct {
	eventoRepo   repository.EventoRepository
	productoRepo repository.ProductoRepository
	storagePath  string
}

func NewListaComprasWorker(eventoRepo repository.EventoRepository, productoRepo repository.ProductoRepository, storagePath string) *ListaComprasWorker {
	return &ListaComprasWorker{eventoRepo: eventoRepo, productoRepo: productoRepo, storagePath: storagePath}
}

// Process aggregates the events named in the payload and writes the PDF.
func (w *ListaComprasWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ListaComprasJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("lista_compras_worker: invalid payload")
		return
	}

	ids := make([]uuid.UUID, 0, len(payload.EventoIDs))
	for _, s := range payload.EventoIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			log.Warn().Str("evento_id", s).Msg("lista_compras_worker: skipping malformed event id")
			continue
		}
		ids = append(ids, id)
	}

	eventos, err := w.eventoRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("lista_compras_worker: failed to load events")
		return
	}
	partes, err := w.productoRepo.FindPartesDeCombos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lista_compras_worker: failed to load combo constituents")
		return
	}

	agregado := calc.AgregarEventos(eventos, func(comboID uuid.UUID) []model.ComboIngrediente {
		return partes[comboID]
	})

	path, err := infra.GenerarListaComprasPDF(agregado, w.storagePath)
	if err != nil {
		log.Error().Err(err).Msg("lista_compras_worker: failed to render PDF")
		return
	}
	log.Info().Str("path", path).Int("eventos", len(eventos)).Msg("lista_compras_worker: purchasing list ready")
}
