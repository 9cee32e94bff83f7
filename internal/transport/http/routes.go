// Package http exposes the kakuro library over a thin gin API: solve,
// solve-all, generate, verify, and health. spec.md §6 notes a CLI or
// service wrapper isn't required for the core library, but nothing
// forbids one either — this mirrors the teacher's
// internal/transport/http/routes.go layout (package-level cfg, a
// RegisterRoutes entry point, gin.H JSON responses) for the one
// concern the teacher actually built a transport layer around.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jellos/pykakuro/internal/core"
	"github.com/jellos/pykakuro/internal/kakuro"
	"github.com/jellos/pykakuro/pkg/config"
	"github.com/jellos/pykakuro/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires the solve/generate/verify/health endpoints onto
// r, keeping a package-level reference to c for handlers that need the
// configured solve timeout.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/solve/all", solveAllHandler)
		api.POST("/generate", generateHandler)
		api.POST("/verify", verifyHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

func toOptions(o core.Options) kakuro.Options {
	return kakuro.Options{MinVal: o.MinVal, MaxVal: o.MaxVal, Exclusive: o.Exclusive}
}

func solveHandler(c *gin.Context) {
	var req core.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := kakuro.FromTokens(req.Tokens, req.Width, toOptions(req.Options))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeout := solveTimeout(req.TimeoutMs)
	solved, err := p.Solve(timeout, false)
	if err != nil && !errors.Is(err, kakuro.ErrAlreadySolved) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, core.SolveResponse{
		Solved:   solved,
		Tokens:   p.Tokens(),
		Warnings: p.Warnings,
	})
}

func solveAllHandler(c *gin.Context) {
	var req core.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := kakuro.FromTokens(req.Tokens, req.Width, toOptions(req.Options))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeout := solveTimeout(req.TimeoutMs)
	solved, err := p.SolveAll(timeout, false, req.Cap)
	if err != nil && !errors.Is(err, kakuro.ErrAlreadySolved) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	solutions := make([][]any, len(p.Solutions))
	for i, sol := range p.Solutions {
		solutions[i] = sol.Raw()
	}

	c.JSON(http.StatusOK, core.SolveAllResponse{
		Solved:    solved,
		Solutions: solutions,
		Warnings:  p.Warnings,
	})
}

func generateHandler(c *gin.Context) {
	var req core.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := kakuro.GenerateRandom(req.Width, req.Height, kakuro.GenOptions{
		Seed:      req.Seed,
		Solved:    req.Solved,
		MinVal:    req.MinVal,
		MaxVal:    req.MaxVal,
		Exclusive: req.Exclusive,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, core.GenerateResponse{
		Board:      core.Board{Tokens: p.Tokens(), Width: p.Width()},
		Difficulty: p.Difficulty(),
	})
}

func verifyHandler(c *gin.Context) {
	var req core.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid := kakuro.VerifySolution(req.Tokens, req.Width, toOptions(req.Options))
	resp := core.VerifyResponse{Valid: valid}
	if !valid {
		tokens, err := kakuro.FromTokens(req.Tokens, req.Width, toOptions(req.Options))
		if err != nil {
			resp.Error = err.Error()
		} else if cerr := tokens.CheckSolution(req.Tokens); cerr != nil {
			resp.Error = cerr.Error()
		}
	}
	c.JSON(http.StatusOK, resp)
}

func solveTimeout(requestedMs int) time.Duration {
	if requestedMs > 0 {
		return time.Duration(requestedMs) * time.Millisecond
	}
	if cfg != nil {
		return cfg.SolveTimeout
	}
	return 5 * time.Second
}
