package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/apierror"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/dto"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/service"
)

type ResumenHandler struct{ svc service.ResumenService }

func NewResumenHandler(svc service.ResumenService) *ResumenHandler {
	return &ResumenHandler{svc: svc}
}

// Resumen folds the selected events (all of them when the list is empty) into
// one cross-event purchasing summary.
func (h *ResumenHandler) Resumen(c *gin.Context) {
	var req dto.ResumenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResumenHandler) GenerarListaCompras(c *gin.Context) {
	var req dto.GenerarListaComprasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GenerarListaCompras(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, resp)
}
