package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"ai-datachat-be/internal/constant"
	"ai-datachat-be/internal/dto"
	"ai-datachat-be/internal/pkg/serverutils"
	"ai-datachat-be/internal/repository/contract"
	"ai-datachat-be/pkg/analysis"
	"ai-datachat-be/pkg/llm"
	"ai-datachat-be/pkg/querygen"
	"ai-datachat-be/pkg/store"

	"github.com/google/uuid"
)

// IChatService is the conversational orchestration layer.
type IChatService interface {
	// SubmitChat returns exactly one non-nil result: a ChatReply when the
	// caller supplied computed results, a QueryGenerationResult otherwise.
	SubmitChat(ctx context.Context, request *dto.SubmitChatRequest) (*store.ChatReply, *store.QueryGenerationResult, error)
	GetConversation(ctx context.Context, datasetId string) []store.Turn
	ClearConversation(ctx context.Context, datasetId string)
}

type chatService struct {
	conversationRepo contract.ConversationRepository
	queryGenerator   *querygen.Generator
	responder        *analysis.Responder
}

func NewChatService(
	conversationRepo contract.ConversationRepository,
	llmProvider llm.Provider,
) IChatService {
	llmLogger := initLLMLogger()

	return &chatService{
		conversationRepo: conversationRepo,
		queryGenerator:   querygen.NewGenerator(llmProvider, llmLogger),
		responder:        analysis.NewResponder(llmProvider, llmLogger, constant.AnalysisUnavailable),
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_assistant.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

func (cs *chatService) SubmitChat(ctx context.Context, request *dto.SubmitChatRequest) (*store.ChatReply, *store.QueryGenerationResult, error) {
	if request.Message == "" {
		return nil, nil, serverutils.NewClientError("message is required")
	}

	history := cs.historyFor(ctx, request.DatasetId)

	if request.HasComputedResults() {
		reply := cs.analyzeResults(ctx, request, history)
		return reply, nil, nil
	}

	result := cs.generateQuery(ctx, request, history)
	return nil, result, nil
}

// analyzeResults narrates already-computed rows and records both turns.
func (cs *chatService) analyzeResults(ctx context.Context, request *dto.SubmitChatRequest, history []llm.Message) *store.ChatReply {
	content, suggestions := cs.responder.Analyze(
		ctx,
		request.Message,
		request.ComputedResults,
		request.Schemas,
		history,
	)

	now := time.Now()
	cs.conversationRepo.Append(ctx, request.DatasetId,
		store.Turn{Role: store.RoleUser, Content: request.Message, Timestamp: now},
		store.Turn{Role: store.RoleAssistant, Content: content, Timestamp: now},
	)

	return &store.ChatReply{
		Id:              uuid.New(),
		Role:            store.RoleAssistant,
		Content:         content,
		CreatedAt:       now,
		ToolSuggestions: suggestions,
		Artifacts: []store.Artifact{
			{
				Kind:     store.ArtifactQueryResult,
				Data:     request.ComputedResults,
				RowCount: len(request.ComputedResults),
			},
		},
		Metadata: map[string]interface{}{
			"dataset_id": request.DatasetId,
			"path":       "analysis",
		},
	}
}

// generateQuery runs the generation pipeline; on any failure the result
// carries the canned guidance so the caller always has something to render.
func (cs *chatService) generateQuery(ctx context.Context, request *dto.SubmitChatRequest, history []llm.Message) *store.QueryGenerationResult {
	result := cs.queryGenerator.Generate(ctx, request.Message, request.Schemas, history)

	assistantContent := result.Explanation
	if result.Error != "" {
		result.Explanation = constant.CannedGuidance
		assistantContent = constant.CannedGuidance
	} else if assistantContent == "" {
		assistantContent = result.Query
	}

	now := time.Now()
	cs.conversationRepo.Append(ctx, request.DatasetId,
		store.Turn{Role: store.RoleUser, Content: request.Message, Timestamp: now},
		store.Turn{Role: store.RoleAssistant, Content: assistantContent, Timestamp: now},
	)

	return result
}

func (cs *chatService) GetConversation(ctx context.Context, datasetId string) []store.Turn {
	return cs.conversationRepo.Get(ctx, datasetId)
}

func (cs *chatService) ClearConversation(ctx context.Context, datasetId string) {
	cs.conversationRepo.Clear(ctx, datasetId)
}

func (cs *chatService) historyFor(ctx context.Context, datasetId string) []llm.Message {
	turns := cs.conversationRepo.Get(ctx, datasetId)
	history := make([]llm.Message, 0, len(turns))
	for _, turn := range turns {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	return history
}
