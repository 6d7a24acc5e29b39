package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/models/dto"
	"github.com/yigit/coachdesk/internal/app/services"
	"github.com/yigit/coachdesk/internal/middleware"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
	"github.com/yigit/coachdesk/internal/pkg/websocket"
)

// MessageController handles messages and their live subscriptions.
type MessageController struct {
	messageService services.MessageService
	hub            *websocket.Hub
}

// NewMessageController creates a new MessageController. hub may be nil,
// in which case subscriptions answer 503.
func NewMessageController(messageService services.MessageService, hub *websocket.Hub) *MessageController {
	return &MessageController{messageService: messageService, hub: hub}
}

// SendMessage stores a message
// @Summary Send a message
// @Description Subscribers of the recipient receive a message.created notification
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.NewMessage true "Message"
// @Success 201 {object} dto.APIResponse{data=models.Message}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	var in models.NewMessage
	if !bindJSON(ctx, &in) {
		return
	}
	msg, err := c.messageService.SendMessage(ctx.Request.Context(), in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, msg)
}

// GetMessageByID retrieves a message by ID
// @Summary Get a message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Message}
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /messages/{id} [get]
func (c *MessageController) GetMessageByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	msg, err := c.messageService.GetMessageByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, msg)
}

// GetAllMessages lists messages, optionally for one recipient
// @Summary List messages
// @Description recipientType and recipientId must be given together
// @Tags messages
// @Produce json
// @Param recipientType query string false "student, parent, batch or teacher"
// @Param recipientId query int false "Recipient ID"
// @Param page query int false "Page number (1-based); enables pagination"
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Message}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /messages [get]
func (c *MessageController) GetAllMessages(ctx *gin.Context) {
	rt, id, present, ok := recipientQuery(ctx)
	if !ok {
		return
	}
	if present {
		respondList(ctx, c.messageService.GetMessagesByRecipient(ctx.Request.Context(), rt, id))
		return
	}
	respondList(ctx, c.messageService.GetAllMessages(ctx.Request.Context()))
}

// DeleteMessage removes a message
// @Summary Delete a message
// @Tags messages
// @Param id path int true "Message ID" Format(int64) minimum(1)
// @Success 204 "Message deleted"
// @Router /messages/{id} [delete]
func (c *MessageController) DeleteMessage(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.messageService.DeleteMessage(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}

// Subscribe upgrades to a WebSocket that receives new messages for one recipient
// @Summary Subscribe to messages
// @Tags messages
// @Param recipientType query string true "student, parent, batch or teacher"
// @Param recipientId query int true "Recipient ID"
// @Success 101 "Switching protocols"
// @Failure 400 {object} dto.ErrorResponse "Invalid recipient"
// @Failure 503 {object} dto.ErrorResponse "Notifications disabled"
// @Router /messages/ws [get]
func (c *MessageController) Subscribe(ctx *gin.Context) {
	rt, id, present, ok := recipientQuery(ctx)
	if !ok {
		return
	}
	if !present {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("validation failed", map[string]string{
			"recipientType": "recipientType is required",
			"recipientId":   "recipientId is required",
		}))
		return
	}
	if c.hub == nil {
		ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "notifications are disabled")))
		return
	}

	logger := zerolog.Ctx(ctx.Request.Context()).With().Str("recipientType", string(rt)).Int64("recipientID", id).Logger()
	topic := websocket.Topic(string(rt), id)
	if err := websocket.ServeWS(c.hub, ctx.Writer, ctx.Request, topic, logger); err != nil {
		// The upgrader has already written an error response
		logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	logger.Debug().Str("topic", topic).Msg("Subscriber connected")
}

// recipientQuery reads the recipientType/recipientId pair. present is false
// when neither is supplied; ok is false after a 400.
func recipientQuery(ctx *gin.Context) (rt models.RecipientType, id int64, present, ok bool) {
	rawType, hasType := ctx.GetQuery("recipientType")
	id, hasID, ok := queryID(ctx, "recipientId")
	if !ok {
		return "", 0, true, false
	}
	if !hasType && !hasID {
		return "", 0, false, true
	}

	problems := validation.Errors{}
	if !hasType {
		problems["recipientType"] = "recipientType is required"
	} else if !validRecipientType(rawType) {
		problems["recipientType"] = "recipientType must be one of: student parent batch teacher"
	}
	if !hasID {
		problems["recipientId"] = "recipientId is required"
	}
	if err := problems.Err(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return "", 0, true, false
	}
	return models.RecipientType(rawType), id, true, true
}

func validRecipientType(s string) bool {
	for _, t := range validation.RecipientTypes {
		if s == t {
			return true
		}
	}
	return false
}
