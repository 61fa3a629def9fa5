package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/farhan1515/GYM-BOT/internal/collector"
	"github.com/farhan1515/GYM-BOT/internal/repository"
	"github.com/farhan1515/GYM-BOT/internal/services"
)

type sessionStore interface {
	Save(ctx context.Context, id string, state *repository.SessionState) error
	Get(ctx context.Context, id string) (*repository.SessionState, error)
	Delete(ctx context.Context, id string) error
}

// ChatHandler serves the questionnaire funnel itself: stateless step
// endpoints backed by a session store, and a websocket variant that keeps
// the session on the connection.
type ChatHandler struct {
	sessions    sessionStore
	leadService planOrchestrator
}

func NewChatHandler(sessions sessionStore, leadService planOrchestrator) *ChatHandler {
	return &ChatHandler{sessions: sessions, leadService: leadService}
}

func (h *ChatHandler) StartSession(c *fiber.Ctx) error {
	if h.sessions == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Chat sessions are not available"})
	}

	session := collector.NewSession()
	id := uuid.NewString()
	state := &repository.SessionState{Index: session.Index, Answers: session.Answers}
	if err := h.sessions.Save(c.Context(), id, state); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start chat session"})
	}

	return c.JSON(fiber.Map{
		"session_id": id,
		"question":   session.Current(),
		"progress":   session.Progress(),
	})
}

type answerRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

func (h *ChatHandler) AnswerSession(c *fiber.Ctx) error {
	if h.sessions == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Chat sessions are not available"})
	}

	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.SessionID == "" || req.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields: session_id, answer"})
	}

	state, err := h.sessions.Get(c.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat session not found or expired"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load chat session"})
	}

	session := collector.Restore(state.Index, state.Answers)
	next, err := session.Answer(req.Answer)
	if err != nil {
		// Session unchanged; the same question is re-served.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    err.Error(),
			"question": session.Current(),
			"progress": session.Progress(),
		})
	}

	if !session.Completed() {
		state.Index = session.Index
		state.Answers = session.Answers
		if err := h.sessions.Save(c.Context(), req.SessionID, state); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save chat session"})
		}
		return c.JSON(fiber.Map{
			"session_id": req.SessionID,
			"question":   next,
			"progress":   session.Progress(),
		})
	}

	if err := h.sessions.Delete(c.Context(), req.SessionID); err != nil {
		log.Printf("Failed to delete completed chat session %s: %v", req.SessionID, err)
	}

	sub, err := services.SubmissionFromPayload(session.Answers)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.leadService.GeneratePlan(c.Context(), sub)
	if err != nil {
		return mapGenerateError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"user_id":   result.LeadID,
		"diet_plan": result.DietPlan,
	})
}

// WebSocketUpgrade gates the chat websocket route.
func (h *ChatHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}
	return c.Next()
}

type wsFrame struct {
	Type     string              `json:"type"`
	Question *collector.Question `json:"question,omitempty"`
	Progress int                 `json:"progress,omitempty"`
	Error    string              `json:"error,omitempty"`
	UserID   string              `json:"user_id,omitempty"`
	DietPlan string              `json:"diet_plan,omitempty"`
}

type wsAnswer struct {
	Answer string `json:"answer"`
}

// HandleWebSocket drives one questionnaire session over a single socket.
// The session lives on the connection, so no session store is needed.
func (h *ChatHandler) HandleWebSocket(conn *websocket.Conn) {
	defer conn.Close()

	session := collector.NewSession()
	for !session.Completed() {
		if err := conn.WriteJSON(wsFrame{
			Type:     "question",
			Question: session.Current(),
			Progress: session.Progress(),
		}); err != nil {
			return
		}

		var answer wsAnswer
		if err := conn.ReadJSON(&answer); err != nil {
			return
		}

		if _, err := session.Answer(answer.Answer); err != nil {
			if writeErr := conn.WriteJSON(wsFrame{Type: "error", Error: err.Error()}); writeErr != nil {
				return
			}
		}
	}

	sub, err := services.SubmissionFromPayload(session.Answers)
	if err != nil {
		_ = conn.WriteJSON(wsFrame{Type: "error", Error: err.Error()})
		return
	}

	result, err := h.leadService.GeneratePlan(context.Background(), sub)
	if err != nil {
		_ = conn.WriteJSON(wsFrame{Type: "error", Error: generateErrorMessage(err)})
		return
	}

	_ = conn.WriteJSON(wsFrame{
		Type:     "result",
		UserID:   result.LeadID.String(),
		DietPlan: result.DietPlan,
	})
}

// generateErrorMessage mirrors mapGenerateError for the websocket path,
// where there is no HTTP status to carry the distinction.
func generateErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrLeadStore):
		return "Failed to save user data"
	case errors.Is(err, services.ErrGeneratorNotConfigured):
		return err.Error() + " Please ensure your Gemini API key is properly configured in the .env file."
	default:
		return "Failed to generate diet plan"
	}
}
