package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
	"github.com/campusos/campusos/internal/pkg/genai"
)

const assistantSystemInstruction = "You are the CampusOS Controller. You are efficient, precise, and helpful. " +
	"You control the campus events and data. Speak in a slightly robotic but friendly tone. " +
	"When asked to post notices, ensure they are professional."

const interviewPrompt = `
I am preparing for an interview for the following role/company: "%s".
Please act as a strict interviewer. Ask me 3 challenging technical questions and 1 behavioral question relevant to this role.
Format the output clearly.
`

// Assistant action vocabulary. pageRoutes maps navigate targets to client
// paths; anything outside the map falls back to the dashboard.
var (
	assistantTools = []genai.FunctionDecl{
		{
			Name:        "post_notice",
			Description: "Post a new notice to the campus board. Use this when the user explicitly asks to post a notice.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":      map[string]any{"type": "string", "description": "The title of the notice"},
					"content":    map[string]any{"type": "string", "description": "The full content of the notice"},
					"send_email": map[string]any{"type": "boolean", "description": "Whether to email all students"},
				},
				"required": []string{"title", "content"},
			},
		},
		{
			Name:        "navigate",
			Description: "Navigate to a specific page in the application.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"page": map[string]any{
						"type": "string",
						"enum": []string{"dashboard", "notices", "study-plan", "placement"},
					},
				},
				"required": []string{"page"},
			},
		},
	}

	pageRoutes = map[string]string{
		"dashboard":  "/",
		"notices":    "/notices",
		"study-plan": "/study-plan",
		"placement":  "/placement",
	}
)

// AssistantService defines the interface for the chat assistant and the
// mock interviewer. Both proxy the generative-language provider; the
// assistant additionally dispatches the model's function calls to domain
// operations.
type AssistantService interface {
	Chat(ctx context.Context, req *dto.AssistantRequest, callerRole models.Role) (*dto.AssistantResponse, error)
	MockInterview(ctx context.Context, roleContext string) (string, error)
}

// conversationalModel is the provider capability surface the service needs.
type conversationalModel interface {
	Converse(ctx context.Context, system string, history []genai.Message, tools []genai.FunctionDecl) (*genai.Reply, error)
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// noticePoster lets the assistant execute the post_notice action through
// the same domain operation humans use.
type noticePoster interface {
	PostNotice(ctx context.Context, req *dto.CreateNoticeRequest, callerRole models.Role) (int64, error)
}

// assistantServiceImpl implements AssistantService
type assistantServiceImpl struct {
	model   conversationalModel
	notices noticePoster
	logger  zerolog.Logger
}

// NewAssistantService creates a new AssistantService
func NewAssistantService(model conversationalModel, notices noticePoster, logger zerolog.Logger) AssistantService {
	return &assistantServiceImpl{
		model:   model,
		notices: notices,
		logger:  logger,
	}
}

// Chat runs one assistant turn. The transcript travels with the request
// (the server holds no conversation state). When the model calls
// post_notice, the notice domain operation runs under the caller's role,
// so the send_email coercion applies to the assistant exactly as it does
// to the form; the outcome is appended to the transcript as a
// system-authored message. navigate is returned for the client to perform.
func (s *assistantServiceImpl) Chat(ctx context.Context, req *dto.AssistantRequest, callerRole models.Role) (*dto.AssistantResponse, error) {
	history := make([]genai.Message, 0, len(req.History)+1)
	for _, msg := range req.History {
		role := msg.Role
		// system-authored outcome reports go back as model turns, the
		// provider only understands user and model roles
		if role != "user" {
			role = "model"
		}
		history = append(history, genai.Message{Role: role, Text: msg.Text})
	}
	history = append(history, genai.Message{Role: "user", Text: req.Message})

	reply, err := s.model.Converse(ctx, assistantSystemInstruction, history, assistantTools)
	if err != nil {
		s.logger.Error().Err(err).Msg("Assistant turn failed")
		return nil, apperrors.NewCustomError(apperrors.ErrGenerationFailed, err.Error())
	}

	resp := &dto.AssistantResponse{}

	if len(reply.Calls) == 0 {
		text := reply.Text
		if text == "" {
			text = "No response."
		}
		resp.Messages = append(resp.Messages, dto.AssistantMessage{Role: "model", Text: text})
		return resp, nil
	}

	for _, call := range reply.Calls {
		switch call.Name {
		case "post_notice":
			s.execPostNotice(ctx, call, callerRole, resp)
		case "navigate":
			page, _ := call.Args["page"].(string)
			path, ok := pageRoutes[page]
			if !ok {
				path = "/"
			}
			resp.NavigateTo = path
			resp.Messages = append(resp.Messages, dto.AssistantMessage{
				Role: "system",
				Text: fmt.Sprintf("EXECUTING: Navigating to %s...", page),
			})
		default:
			s.logger.Warn().Str("action", call.Name).Msg("Assistant requested unknown action")
			resp.Messages = append(resp.Messages, dto.AssistantMessage{
				Role: "system",
				Text: fmt.Sprintf("ERROR: Unknown action %q.", call.Name),
			})
		}
	}
	return resp, nil
}

func (s *assistantServiceImpl) execPostNotice(ctx context.Context, call genai.FunctionCall, callerRole models.Role, resp *dto.AssistantResponse) {
	title, _ := call.Args["title"].(string)
	content, _ := call.Args["content"].(string)
	sendEmail, _ := call.Args["send_email"].(bool)

	resp.Messages = append(resp.Messages, dto.AssistantMessage{
		Role: "system",
		Text: fmt.Sprintf("EXECUTING: Posting notice %q...", title),
	})

	noticeReq := &dto.CreateNoticeRequest{
		Title:     title,
		Content:   content,
		SendEmail: sendEmail,
		Category:  string(models.NoticeCategoryStudent),
	}
	if _, err := s.notices.PostNotice(ctx, noticeReq, callerRole); err != nil {
		s.logger.Error().Err(err).Str("title", title).Msg("Assistant notice post failed")
		resp.Messages = append(resp.Messages, dto.AssistantMessage{
			Role: "system",
			Text: "ERROR: Notice could not be posted.",
		})
		return
	}

	resp.Messages = append(resp.Messages, dto.AssistantMessage{
		Role: "system",
		Text: "SUCCESS: Notice posted.",
	})
}

// MockInterview asks the provider for interview questions about a role or
// company and relays the free-text reply.
func (s *assistantServiceImpl) MockInterview(ctx context.Context, roleContext string) (string, error) {
	text, err := s.model.GenerateContent(ctx, fmt.Sprintf(interviewPrompt, roleContext))
	if err != nil {
		s.logger.Error().Err(err).Msg("Interview generation failed")
		return "", apperrors.NewCustomError(apperrors.ErrGenerationFailed, err.Error())
	}
	return text, nil
}
