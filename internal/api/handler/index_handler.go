package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed index.html
var indexHTML []byte

// IndexHandler serves the embedded single-page client on GET /.
type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

func (h *IndexHandler) Serve(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexHTML)
}
