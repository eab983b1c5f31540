package api

import (
	"log"
	"net/http"

	"solvr/config"
	"solvr/solver"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SetupRouter builds the Gin engine with the CORS and request-ID middleware
// and the solve routes.
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(requestID())
	router.Use(cors(cfg.AllowedOrigin))

	s := &solver.Solver{MaxDepth: cfg.SolverMaxDepth}
	if cfg.SolverDebug {
		s.Logf = log.Printf
	}
	h := &handler{solver: s, verbatimErrors: cfg.VerbatimErrors}

	router.GET("/solve", h.solveQuery)
	router.POST("/solve", h.solveJSON)
	router.GET("/api/health", healthCheck)

	return router
}

func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

type handler struct {
	solver         *solver.Solver
	verbatimErrors bool
}

type solveRequest struct {
	Term string `json:"term"`
}

func (h *handler) solveQuery(c *gin.Context) {
	h.respond(c, c.Query("term"))
}

func (h *handler) solveJSON(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "No term provided")
		return
	}
	h.respond(c, req.Term)
}

func (h *handler) respond(c *gin.Context, term string) {
	if term == "" {
		c.String(http.StatusBadRequest, "No term provided")
		return
	}

	result, err := h.solver.Solve(term)
	if err != nil {
		if h.verbatimErrors {
			c.String(http.StatusInternalServerError, err.Error())
		} else {
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.String(http.StatusOK, result)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
