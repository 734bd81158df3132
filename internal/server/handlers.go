package server

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"

	"github.com/kaamkhoj/kaamkhoj/internal/conversation"
	"github.com/kaamkhoj/kaamkhoj/internal/engine"
	"github.com/kaamkhoj/kaamkhoj/internal/extract"
	"github.com/kaamkhoj/kaamkhoj/internal/matching"
	"github.com/kaamkhoj/kaamkhoj/internal/profile"
)

// Handler holds the collaborators the HTTP surface exposes.
type Handler struct {
	engine        *engine.Engine
	profiles      *profile.Store
	conversations *conversation.Service
	logger        *zap.Logger
}

func NewHandler(eng *engine.Engine, profiles *profile.Store, conversations *conversation.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		engine:        eng,
		profiles:      profiles,
		conversations: conversations,
		logger:        logger,
	}
}

type processRequest struct {
	Text       string `json:"text"`
	Field      string `json:"field"`
	Language   string `json:"language"`
	RetryCount int    `json:"retryCount"`
	SessionID  string `json:"sessionId"`
}

// HandleProcess runs one slot-filling attempt. The response shape
// {reply, extractedValue, success} is the contract voice clients depend on
// and must not change.
func (h *Handler) HandleProcess(ctx context.Context, c *app.RequestContext) {
	var req processRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "invalid request body"})
		return
	}

	field, err := extract.ParseField(req.Field)
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		// Voice clients predate session IDs; the caller's network address
		// is a weak but workable stand-in.
		sessionID = c.ClientIP()
	}

	result, err := h.engine.ProcessField(ctx, engine.Request{
		SessionID:  sessionID,
		Text:       req.Text,
		Field:      field,
		Language:   req.Language,
		RetryCount: req.RetryCount,
	})
	if err != nil {
		h.logger.Error("process field failed", zap.String("field", req.Field), zap.Error(err))
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "extraction failed"})
		return
	}

	c.JSON(consts.StatusOK, result)
}

func (h *Handler) HandleHealth(_ context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{
		"status":         "ok",
		"modelAvailable": h.engine.ModelAvailable(),
	})
}

func (h *Handler) HandleSaveProfile(ctx context.Context, c *app.RequestContext) {
	var body map[string]any
	if err := c.BindJSON(&body); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "invalid request body"})
		return
	}

	p, err := profile.DecodeProfile(body)
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}

	saved, err := h.profiles.Save(ctx, p)
	if err != nil {
		h.logger.Error("save profile failed", zap.Error(err))
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "could not save profile"})
		return
	}

	c.JSON(consts.StatusOK, saved)
}

func (h *Handler) HandleGetProfile(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if id == "" {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "profile id is required"})
		return
	}

	p, err := h.profiles.Get(ctx, id)
	if errors.Is(err, profile.ErrNotFound) {
		c.JSON(consts.StatusNotFound, utils.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("load profile failed", zap.String("id", id), zap.Error(err))
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "could not load profile"})
		return
	}

	c.JSON(consts.StatusOK, p)
}

// HandleListJobs returns the job catalogue, narrowed to listings matching
// a seeker when a profileId query parameter is supplied.
func (h *Handler) HandleListJobs(ctx context.Context, c *app.RequestContext) {
	jobs, err := h.profiles.ListJobs(ctx)
	if err != nil {
		h.logger.Error("list jobs failed", zap.Error(err))
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "could not list jobs"})
		return
	}

	profileID := c.Query("profileId")
	if profileID != "" {
		seeker, err := h.profiles.Get(ctx, profileID)
		if errors.Is(err, profile.ErrNotFound) {
			c.JSON(consts.StatusNotFound, utils.H{"error": "profile not found"})
			return
		}
		if err != nil {
			h.logger.Error("load profile failed", zap.String("id", profileID), zap.Error(err))
			c.JSON(consts.StatusInternalServerError, utils.H{"error": "could not load profile"})
			return
		}

		deps := matching.Deps{Logger: h.logger, Seeker: seeker}
		jobs, err = matching.Run(ctx, deps, matching.DefaultFilters(), jobs)
		if err != nil {
			h.logger.Error("job matching failed", zap.String("id", profileID), zap.Error(err))
			c.JSON(consts.StatusInternalServerError, utils.H{"error": "could not match jobs"})
			return
		}
	}

	c.JSON(consts.StatusOK, utils.H{"jobs": jobs})
}

func (h *Handler) HandlePopulateJobs(ctx context.Context, c *app.RequestContext) {
	var body []map[string]any
	if err := c.BindJSON(&body); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "invalid request body"})
		return
	}

	jobs, err := profile.DecodeJobs(body)
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}

	saved, err := h.profiles.ReplaceJobs(ctx, jobs)
	if err != nil {
		h.logger.Error("populate jobs failed", zap.Error(err))
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "could not save jobs"})
		return
	}

	c.JSON(consts.StatusOK, utils.H{"jobs": saved})
}

type conversationStartRequest struct {
	SessionID string `json:"sessionId"`
	Language  string `json:"language"`
}

func (h *Handler) HandleConversationStart(_ context.Context, c *app.RequestContext) {
	var req conversationStartRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "invalid request body"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = c.ClientIP()
	}

	h.conversations.InitSession(req.SessionID, req.Language)

	c.JSON(consts.StatusOK, utils.H{"sessionId": req.SessionID})
}

type conversationProcessRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
}

func (h *Handler) HandleConversationProcess(ctx context.Context, c *app.RequestContext) {
	var req conversationProcessRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "invalid request body"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = c.ClientIP()
	}

	reply, err := h.conversations.ProcessInput(ctx, req.SessionID, req.Text)
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}

	c.JSON(consts.StatusOK, reply)
}
