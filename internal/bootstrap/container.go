package bootstrap

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"ai-datachat-be/internal/config"
	"ai-datachat-be/internal/controller"
	"ai-datachat-be/internal/pkg/logger"
	"ai-datachat-be/internal/pkg/mailer"
	"ai-datachat-be/internal/repository/contract"
	"ai-datachat-be/internal/repository/memory"
	"ai-datachat-be/internal/repository/redisstore"
	"ai-datachat-be/internal/service"
	"ai-datachat-be/pkg/llm/factory"
	pkgNats "ai-datachat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatController  controller.IChatController
	ToolController  controller.IToolController
	EmailController controller.IEmailController

	// Background services (exposed for main.go to run)
	AuditService service.IAuditService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(&mailer.ProviderConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Email,
		Password:   cfg.SMTP.Password,
		Sender:     cfg.SMTP.Email,
		SenderName: cfg.SMTP.SenderName,
	})

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS forwarding is best-effort; nil means audit stays local
	var natsPub *pkgNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pkgNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. Conversation store backend
	var conversationRepo contract.ConversationRepository
	if cfg.App.ConversationStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		conversationRepo = redisstore.NewConversationRepository(rdb)
		log.Printf("[INFO] Using Conversation Store: REDIS")
	} else {
		conversationRepo = memory.NewConversationRepository()
		log.Printf("[INFO] Using Conversation Store: MEMORY")
	}

	// 4. LLM provider
	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Services
	auditService := service.NewAuditService(pubSub, pubSub, sysLogger, natsPub)
	chatService := service.NewChatService(conversationRepo, llmProvider)
	reminderService := service.NewReminderService(emailService, auditService)
	toolService := service.NewToolService(llmProvider, reminderService, auditService, initToolLogger())

	// 6. Controllers
	return &Container{
		ChatController:  controller.NewChatController(chatService),
		ToolController:  controller.NewToolController(toolService),
		EmailController: controller.NewEmailController(reminderService),

		AuditService: auditService,
	}
}

func initToolLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "tools.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[TOOLS] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
