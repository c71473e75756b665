package handlers

import (
	"net/http"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"

	"legalzen-backend/logging"
	"legalzen-backend/metrics"
)

// RouterConfig collects what the router needs to serve the API
type RouterConfig struct {
	Documents *DocumentHandler
	Logger    logging.Logger
	// Metrics is optional; /metrics is only served when set
	Metrics *metrics.Metrics
}

// NewRouter builds the gin engine with all routes and middleware attached
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(logger.Named("http")), CORS())
	if cfg.Metrics != nil {
		r.Use(Instrument(cfg.Metrics))
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	h := cfg.Documents
	uploadLimit := limits.RequestSizeLimiter(h.documents.MaxUploadBytes())

	r.POST("/", uploadLimit, h.UploadDocument)
	r.POST("/ask", h.AskQuestion)
	r.GET("/health", h.Health)
	r.GET("/demo", h.Demo)
	r.GET("/sample", h.Sample)
	r.GET("/sessions", h.ListSessions)

	api := r.Group("/api")
	{
		api.POST("/documents", uploadLimit, h.UploadDocument)
		api.POST("/ask", h.AskQuestion)
		api.GET("/sessions", h.ListSessions)
	}

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, CodeNotFound, "Endpoint not found")
	})

	return r
}
