package landing

import (
	_ "embed"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/hilthontt/pipeline-demo/internal/domain"
)

const ContentType = "text/html; charset=utf-8"

//go:embed page.html
var page string

type Handler struct {
	version string
	now     domain.Clock
}

func NewHandler(version string, now domain.Clock) *Handler {
	return &Handler{
		version: html.EscapeString(version),
		now:     now,
	}
}

// Render returns the landing page stamped with the current time.
func (h *Handler) Render() string {
	return strings.NewReplacer(
		"%VERSION%", h.version,
		"%BUILD%", domain.FormatTimestamp(h.now()),
	).Replace(page)
}

// GetLanding godoc
// @Summary      Landing page
// @Description  Static HTML greeting with the server version and the time the response was built
// @Produce      html
// @Success      200 {string} string "HTML document"
// @Router       / [get]
func (h *Handler) GetLanding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, h.Render())
}
