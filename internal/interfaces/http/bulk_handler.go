package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-conciliacion/internal/application/bulk"
	"github.com/jhoicas/Inventario-conciliacion/internal/application/dto"
	"github.com/jhoicas/Inventario-conciliacion/internal/application/events"
	"github.com/jhoicas/Inventario-conciliacion/internal/domain"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// BulkHandler operaciones masivas sobre materiales (protegido; escritura).
type BulkHandler struct {
	coord   *bulk.Coordinator
	deleter bulk.MaterialDeleter
	events  *events.Store
	runCtx  context.Context
	log     *logger.Logger
}

// NewBulkHandler construye el handler. runCtx acota las ejecuciones lanzadas en segundo plano;
// al cancelarse (apagado del servidor) la ejecución se detiene en el siguiente límite entre unidades.
func NewBulkHandler(runCtx context.Context, coord *bulk.Coordinator, deleter bulk.MaterialDeleter, store *events.Store, log *logger.Logger) *BulkHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &BulkHandler{coord: coord, deleter: deleter, events: store, runCtx: runCtx, log: log.Component("http.bulk")}
}

// DeleteMaterials godoc
// @Summary      Borrado masivo de materiales
// @Description  Inicia la ejecución y responde de inmediato; el avance se consulta en /api/bulk/progress o /api/bulk/events.
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkDeleteRequest  true  "IDs de material"
// @Success      202   {object}  dto.BulkProgressResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bulk/materials/delete [post]
func (h *BulkHandler) DeleteMaterials(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ids := make([]string, 0, len(in.IDs))
	for _, id := range in.IDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ids es requerido"})
	}

	var updates *events.Hub[events.StockUpdate]
	if h.events != nil {
		updates = h.events.StockUpdates
	}
	units := bulk.DeleteMaterialUnits(h.deleter, bulk.MaterialRefs(ids), updates)
	snap, err := h.coord.Start(units, nil)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Info().Str("run", snap.RunID).Str("subject", GetSubject(c)).Int("total", snap.Total).Msg("borrado masivo solicitado")

	go func() {
		if _, err := h.coord.Run(h.runCtx); err != nil {
			h.log.Error().Err(err).Str("run", snap.RunID).Msg("no se pudo ejecutar la operación masiva")
		}
	}()
	return c.Status(fiber.StatusAccepted).JSON(dto.BulkProgressFromEntity(snap))
}

// Progress godoc
// @Summary      Progreso de la operación masiva
// @Tags         bulk
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BulkProgressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bulk/progress [get]
func (h *BulkHandler) Progress(c *fiber.Ctx) error {
	p, ok := h.coord.Progress()
	if !ok {
		return writeError(c, domain.ErrNoRun)
	}
	return c.JSON(dto.BulkProgressFromEntity(p))
}

// Cancel godoc
// @Summary      Pedir cancelación
// @Description  Cooperativa: la unidad en curso termina y no se inicia la siguiente.
// @Tags         bulk
// @Security     Bearer
// @Produce      json
// @Success      202  {object}  dto.BulkProgressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bulk/cancel [post]
func (h *BulkHandler) Cancel(c *fiber.Ctx) error {
	if err := h.coord.RequestCancel(); err != nil {
		return writeError(c, err)
	}
	p, _ := h.coord.Progress()
	return c.Status(fiber.StatusAccepted).JSON(dto.BulkProgressFromEntity(p))
}

// Dismiss godoc
// @Summary      Descartar el resultado terminado
// @Tags         bulk
// @Security     Bearer
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bulk/dismiss [post]
func (h *BulkHandler) Dismiss(c *fiber.Ctx) error {
	if err := h.coord.Dismiss(); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Events godoc
// @Summary      Stream SSE del progreso
// @Tags         bulk
// @Security     Bearer
// @Produce      text/event-stream
// @Router       /api/bulk/events [get]
func (h *BulkHandler) Events(c *fiber.Ctx) error {
	if h.events == nil {
		return writeError(c, domain.ErrNoRun)
	}
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	sub := h.events.BulkProgress.Subscribe(0)
	current, hasRun := h.coord.Progress()

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer sub.Unsubscribe()
		heartbeat := time.NewTicker(30 * time.Second)
		defer heartbeat.Stop()

		fmt.Fprintf(w, "event: connected\ndata: {\"subscription\":%q}\n\n", sub.ID)
		if hasRun {
			writeProgressEvent(w, dto.BulkProgressFromEntity(current))
		}
		if err := w.Flush(); err != nil {
			return
		}
		for {
			select {
			case p, ok := <-sub.C:
				if !ok {
					return
				}
				writeProgressEvent(w, dto.BulkProgressFromEntity(p))
			case <-heartbeat.C:
				fmt.Fprint(w, ": keepalive\n\n")
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	})
	return nil
}

func writeProgressEvent(w *bufio.Writer, p dto.BulkProgressResponse) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: progress\ndata: %s\n\n", data)
}
