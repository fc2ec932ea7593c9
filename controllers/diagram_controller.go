package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DiagramController serves a rendered payoff diagram page so the host
// browser can display it. It exposes a single HTML page and no data
// endpoints.
type DiagramController struct {
	page []byte
}

// NewDiagramController creates a new diagram controller for one rendered page
func NewDiagramController(page []byte) *DiagramController {
	return &DiagramController{page: page}
}

// HandleDiagram returns the diagram page
// GET /
func (dc *DiagramController) HandleDiagram(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", dc.page)
}
