// Package server exposes the intake engine over HTTP. All routes speak
// JSON; the /process reply shape is the only contract external callers
// depend on.
package server

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"
)

// New builds the hertz server with all routes registered.
func New(addr string, handler *Handler, logger *zap.Logger) *server.Hertz {
	h := server.New(server.WithHostPorts(addr))

	h.POST("/process", handler.HandleProcess)
	h.GET("/health", handler.HandleHealth)
	h.POST("/saveProfile", handler.HandleSaveProfile)
	h.GET("/profile/:id", handler.HandleGetProfile)
	h.GET("/jobs", handler.HandleListJobs)
	h.POST("/populateJobs", handler.HandlePopulateJobs)
	h.POST("/conversation/start", handler.HandleConversationStart)
	h.POST("/conversation/process", handler.HandleConversationProcess)

	logger.Info("routes registered", zap.String("addr", addr))

	return h
}
