package chat

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/entities"
	"MediAssist-Backend/pkg/gemini"
	"MediAssist-Backend/pkg/medicine"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

const assistantPreamble = `You are MediAssist, a helpful AI health assistant. You help patients with symptom analysis, medication information, and general health guidance.
User's current medications: %s
Important:
- Provide helpful information but always recommend consulting a doctor for serious symptoms
- Be empathetic and clear
- If asked about drug interactions, check their medication list
- Never provide emergency medical advice - always recommend calling emergency services for urgent issues

User: %s`

type (
	ChatService interface {
		Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error)
		GetChatHistory(ctx context.Context, sessionID string, userID string) ([]domain.ChatMessageResponse, error)
		GetChatSessions(ctx context.Context, userID string) ([]domain.ChatSessionResponse, error)
	}

	chatService struct {
		chatRepository     ChatRepository
		medicineRepository medicine.MedicineRepository
		geminiClient       gemini.Client
	}
)

func NewChatService(chatRepository ChatRepository, medicineRepository medicine.MedicineRepository, geminiClient gemini.Client) ChatService {
	return &chatService{
		chatRepository:     chatRepository,
		medicineRepository: medicineRepository,
		geminiClient:       geminiClient,
	}
}

func (s *chatService) Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ChatResponse{}, domain.ErrParseUUID
	}

	sessionID := uuid.New()
	if req.SessionID != "" {
		sessionID, err = uuid.Parse(req.SessionID)
		if err != nil {
			return domain.ChatResponse{}, domain.ErrParseUUID
		}
	}

	userMessage := &entities.ChatMessage{
		ID:        uuid.New(),
		UserID:    userUUID,
		SessionID: sessionID,
		Role:      "user",
		Content:   req.Message,
	}
	if err := s.chatRepository.CreateMessage(ctx, userMessage); err != nil {
		return domain.ChatResponse{}, err
	}

	prompt := fmt.Sprintf(assistantPreamble, s.medicineContext(ctx, userID), req.Message)

	responseText, err := s.geminiClient.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("chat generation failed: %v", err)
		return domain.ChatResponse{}, domain.ErrGeminiProcessingFailed
	}

	assistantMessage := &entities.ChatMessage{
		ID:        uuid.New(),
		UserID:    userUUID,
		SessionID: sessionID,
		Role:      "assistant",
		Content:   responseText,
	}
	if err := s.chatRepository.CreateMessage(ctx, assistantMessage); err != nil {
		return domain.ChatResponse{}, err
	}

	return domain.ChatResponse{
		Response:  responseText,
		SessionID: sessionID.String(),
	}, nil
}

// medicineContext lists up to five of the user's stock medicines for the
// assistant prompt. Lookup problems degrade to "None".
func (s *chatService) medicineContext(ctx context.Context, userID string) string {
	medicines, err := s.medicineRepository.GetMedicines(ctx, userID, 5)
	if err != nil || len(medicines) == 0 {
		return "None"
	}

	entries := make([]string, 0, len(medicines))
	for _, m := range medicines {
		entries = append(entries, fmt.Sprintf("%s (%s)", m.Name, m.Dosage))
	}
	return strings.Join(entries, ", ")
}

func (s *chatService) GetChatHistory(ctx context.Context, sessionID string, userID string) ([]domain.ChatMessageResponse, error) {
	messages, err := s.chatRepository.GetMessages(ctx, userID, sessionID, 100)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, domain.ChatMessageResponse{
			ID:        m.ID.String(),
			SessionID: m.SessionID.String(),
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.CreatedAt,
		})
	}

	return response, nil
}

func (s *chatService) GetChatSessions(ctx context.Context, userID string) ([]domain.ChatSessionResponse, error) {
	sessions, err := s.chatRepository.GetSessions(ctx, userID, 100)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		lastMessage := session.Content
		if runes := []rune(lastMessage); len(runes) > 50 {
			lastMessage = string(runes[:50])
		}
		response = append(response, domain.ChatSessionResponse{
			SessionID:     session.SessionID,
			LastMessage:   lastMessage,
			LastTimestamp: session.CreatedAt,
		})
	}

	return response, nil
}
