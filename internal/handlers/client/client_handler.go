package client

import (
	"net/http"

	"registro-clientes/internal/domain/client"
	xerrors "registro-clientes/internal/pkg/errors"
	"registro-clientes/internal/pkg/response"
	service "registro-clientes/internal/service/client"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService *service.ClientService
}

func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ========== Creation ==========

func (h *ClientHandler) CreateRetail(c *gin.Context) {
	var req client.CreateRetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.clientService.CreateRetail(c.Request.Context(), &req); err != nil {
		writeServiceError(c, err, "failed to create retail client")
		return
	}
	response.Success(c, http.StatusCreated, "cliente minorista registrado", gin.H{"dni": req.DNI})
}

func (h *ClientHandler) CreateWholesale(c *gin.Context) {
	var req client.CreateWholesaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.clientService.CreateWholesale(c.Request.Context(), &req); err != nil {
		writeServiceError(c, err, "failed to create wholesale client")
		return
	}
	response.Success(c, http.StatusCreated, "cliente mayorista registrado", gin.H{"ruc": req.RUC})
}

func (h *ClientHandler) CreateCorporate(c *gin.Context) {
	var req client.CreateCorporateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.clientService.CreateCorporate(c.Request.Context(), &req); err != nil {
		writeServiceError(c, err, "failed to create corporate client")
		return
	}
	response.Success(c, http.StatusCreated, "cliente corporativo registrado", gin.H{"ruc": req.RUC})
}

// ========== Updates ==========

func (h *ClientHandler) UpdateRetail(c *gin.Context) {
	var req client.UpdateRetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.clientService.UpdateRetail(c.Request.Context(), c.Param("code"), &req); err != nil {
		writeServiceError(c, err, "failed to update retail client")
		return
	}
	response.Success(c, http.StatusOK, "cliente minorista actualizado", nil)
}

func (h *ClientHandler) UpdateWholesale(c *gin.Context) {
	var req client.UpdateWholesaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.clientService.UpdateWholesale(c.Request.Context(), c.Param("code"), &req); err != nil {
		writeServiceError(c, err, "failed to update wholesale client")
		return
	}
	response.Success(c, http.StatusOK, "cliente mayorista actualizado", nil)
}

func (h *ClientHandler) UpdateCorporate(c *gin.Context) {
	var req client.UpdateCorporateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.clientService.UpdateCorporate(c.Request.Context(), c.Param("code"), &req); err != nil {
		writeServiceError(c, err, "failed to update corporate client")
		return
	}
	response.Success(c, http.StatusOK, "cliente corporativo actualizado", nil)
}

// ========== Listing, lookup, deletion ==========

// List returns every client across the three subtypes, tagged by kind.
func (h *ClientHandler) List(c *gin.Context) {
	all := h.clientService.GetAll(c.Request.Context())
	response.Success(c, http.StatusOK, "clients retrieved", all)
}

// GetByCode looks a client up by its 8-digit DNI or 11-digit RUC.
func (h *ClientHandler) GetByCode(c *gin.Context) {
	rec, err := h.clientService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "cliente no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to look up client", err)
		return
	}
	response.Success(c, http.StatusOK, "client retrieved", rec)
}

// DeleteByCode removes a client; the outcome message is display-ready.
func (h *ClientHandler) DeleteByCode(c *gin.Context) {
	outcome := h.clientService.DeleteByCode(c.Request.Context(), c.Param("code"))

	status := http.StatusOK
	if !outcome.Deleted {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, outcome)
}

func writeServiceError(c *gin.Context, err error, message string) {
	switch {
	case xerrors.Is(err, xerrors.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, message, err)
	case xerrors.Is(err, xerrors.ErrConflict):
		response.Error(c, http.StatusConflict, message, err)
	case xerrors.Is(err, xerrors.ErrNotFound):
		response.NotFound(c, "cliente no encontrado")
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
