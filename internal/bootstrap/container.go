package bootstrap

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"samvidhan-ai-be/internal/config"
	"samvidhan-ai-be/internal/controller"
	"samvidhan-ai-be/internal/pkg/logger"
	"samvidhan-ai-be/internal/pkg/mailer"
	"samvidhan-ai-be/internal/repository/implementation"
	"samvidhan-ai-be/internal/repository/unitofwork"
	"samvidhan-ai-be/internal/service"
	"samvidhan-ai-be/pkg/docsum"
	"samvidhan-ai-be/pkg/embedding"
	"samvidhan-ai-be/pkg/llm/factory"
	"samvidhan-ai-be/pkg/rag/classifier"
	"samvidhan-ai-be/pkg/rag/mapping"
	"samvidhan-ai-be/pkg/rag/memory"
	"samvidhan-ai-be/pkg/rag/retriever"
	"samvidhan-ai-be/pkg/rag/synthesizer"

	pktNats "samvidhan-ai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	ConversationController controller.IConversationController
	AssistantController    controller.IAssistantController
	StatuteController      controller.IStatuteController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewMistralProvider(cfg.Ai.MistralAPIKey)
		log.Printf("[INFO] Using Embedding Provider: MISTRAL")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GroqAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis is only dialed when the history backend needs it.
	var historyStore memory.HistoryStore
	if cfg.App.HistoryBackend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		historyStore = memory.NewRedisStore(rdb)
		log.Printf("[INFO] Using Chat History Backend: REDIS")
	} else {
		historyStore = memory.NewInMemoryStore()
		log.Printf("[INFO] Using Chat History Backend: MEMORY")
	}

	// 4. RAG Pipeline
	ragLogger := initRagLogger()
	mappingTable := mapping.NewTable()
	queryClassifier := classifier.New(llmProvider, ragLogger)
	passageRetriever := retriever.New(
		embeddingProvider,
		newChunkSearcher(implementation.NewStatuteChunkRepository(db)),
		ragLogger,
	)
	answerSynthesizer := synthesizer.New(
		llmProvider,
		queryClassifier,
		passageRetriever,
		historyStore,
		mappingTable,
		ragLogger,
	)
	documentSummarizer := docsum.New(llmProvider, ragLogger)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.EmbedChunkTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedChunkTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	conversationService := service.NewConversationService(uowFactory, historyStore)
	assistantService := service.NewAssistantService(
		uowFactory,
		answerSynthesizer,
		documentSummarizer,
		mappingTable,
		natsPub,
		sysLogger,
	)
	statuteService := service.NewStatuteService(publisherService)

	// 6. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		ConversationController: controller.NewConversationController(conversationService),
		AssistantController:    controller.NewAssistantController(assistantService),
		StatuteController:      controller.NewStatuteController(statuteService),

		ConsumerService: consumerService,
	}
}

// initRagLogger writes pipeline traces to a dedicated file so they do not
// interleave with request logs. Falls back to stdout if the file cannot
// be opened.
func initRagLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_rag.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[RAG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
