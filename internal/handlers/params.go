package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
)

// parseID lê um parâmetro de rota numérico; 0 com ok=false significa que a
// resposta 400 já foi escrita.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id invalido: "+raw)
		return 0, false
	}
	return uint(id), true
}
