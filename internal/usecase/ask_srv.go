package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/dto/response"
	"legal-assistant/pkg/document"
	"legal-assistant/pkg/inference"
	"legal-assistant/pkg/utils"
)

const promptTemplate = "Use the following document to answer this legal question:\n\n%s\n\nQuestion: %s"

type AskService interface {
	Answer(ctx context.Context, fileBytes []byte, filename, question string) (*response.AskResponse, error)
}

type askService struct {
	client *inference.Client
	config *utils.Config
	log    *zap.Logger
}

func NewAskService(client *inference.Client, config *utils.Config, log *zap.Logger) AskService {
	return &askService{
		client: client,
		config: config,
		log:    log,
	}
}

// Answer extracts the document text, composes a prompt and forwards it to
// the inference backend. Oversized documents are narrowed to the chunks
// most relevant to the question before prompting.
func (s *askService) Answer(ctx context.Context, fileBytes []byte, filename, question string) (*response.AskResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", entity.ErrInvalidInput)
	}
	if len(fileBytes) == 0 {
		return nil, fmt.Errorf("%w: empty file upload", entity.ErrInvalidInput)
	}

	text, err := document.ExtractText(fileBytes, filename)
	if err != nil {
		s.log.Warn("Document extraction failed",
			zap.Error(err),
			zap.String("filename", filename))
		return nil, err
	}

	text = document.SelectRelevant(text, question, s.config.Inference.MaxPromptChars)

	username, _ := utils.GetUsernameFromContext(ctx)
	s.log.Info("Assistant query",
		zap.String("username", username),
		zap.String("question", question),
		zap.String("filename", filename),
		zap.Int("document_chars", len(text)))

	prompt := fmt.Sprintf(promptTemplate, text, question)

	answer, err := s.client.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("Inference request failed", zap.Error(err), zap.String("filename", filename))
		return nil, err
	}

	return &response.AskResponse{Answer: answer}, nil
}
