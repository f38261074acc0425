package chat

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/entities"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubChatRepository struct {
	messages []*entities.ChatMessage
	sessions []ChatSessionRow
}

func (s *stubChatRepository) CreateMessage(_ context.Context, message *entities.ChatMessage) error {
	s.messages = append(s.messages, message)
	return nil
}

func (s *stubChatRepository) GetMessages(_ context.Context, _ string, _ string, _ int) ([]*entities.ChatMessage, error) {
	return s.messages, nil
}

func (s *stubChatRepository) GetSessions(_ context.Context, _ string, _ int) ([]ChatSessionRow, error) {
	return s.sessions, nil
}

type stubMedicineRepository struct {
	medicines []*entities.Medicine
}

func (s *stubMedicineRepository) AddMedicine(_ context.Context, _ *entities.Medicine) error {
	return nil
}

func (s *stubMedicineRepository) GetMedicineByID(_ context.Context, _ string) (*entities.Medicine, error) {
	return nil, nil
}

func (s *stubMedicineRepository) GetMedicines(_ context.Context, _ string, _ int) ([]*entities.Medicine, error) {
	return s.medicines, nil
}

func (s *stubMedicineRepository) UpdateMedicine(_ context.Context, _ *entities.Medicine) error {
	return nil
}

func (s *stubMedicineRepository) DeleteMedicine(_ context.Context, _ string) error {
	return nil
}

func (s *stubMedicineRepository) CountMedicines(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

type stubGeminiClient struct {
	response string
	err      error
}

func (s *stubGeminiClient) ExtractFromImage(_ context.Context, _ []byte, _ string) domain.ImageExtractionResult {
	return domain.ImageExtractionResult{}
}

func (s *stubGeminiClient) ExtractFromText(_ context.Context, _ string) []domain.MedicineMention {
	return nil
}

func (s *stubGeminiClient) GenerateText(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func TestChat_PersistsBothMessages(t *testing.T) {
	repo := &stubChatRepository{}
	service := NewChatService(repo, &stubMedicineRepository{}, &stubGeminiClient{response: "Take it with food."})

	res, err := service.Chat(context.Background(), domain.ChatRequest{Message: "When do I take aspirin?"}, uuid.NewString())

	assert.NoError(t, err)
	assert.Equal(t, "Take it with food.", res.Response)
	assert.NotEmpty(t, res.SessionID)
	assert.Len(t, repo.messages, 2)
	assert.Equal(t, "user", repo.messages[0].Role)
	assert.Equal(t, "assistant", repo.messages[1].Role)
}

func TestChat_GenerationFailureSurfaces(t *testing.T) {
	repo := &stubChatRepository{}
	service := NewChatService(repo, &stubMedicineRepository{}, &stubGeminiClient{err: errors.New("timeout")})

	_, err := service.Chat(context.Background(), domain.ChatRequest{Message: "hello"}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrGeminiProcessingFailed)
}

func TestGetChatSessions_TruncatesLastMessageOnRuneBoundary(t *testing.T) {
	repo := &stubChatRepository{sessions: []ChatSessionRow{
		{
			SessionID: uuid.NewString(),
			Content:   strings.Repeat("é", 80),
			CreatedAt: time.Now(),
		},
	}}
	service := NewChatService(repo, &stubMedicineRepository{}, &stubGeminiClient{})

	sessions, err := service.GetChatSessions(context.Background(), uuid.NewString())

	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, 50, utf8.RuneCountInString(sessions[0].LastMessage))
	assert.True(t, utf8.ValidString(sessions[0].LastMessage))
}
