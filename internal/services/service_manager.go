package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/kamasanicharan/BoldScholars/internal/events"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	LogLevel slog.Level

	// Account of the permanent administrator. Role resolution treats a
	// matching email as admin regardless of the persisted record.
	SuperAdminEmail string

	// When false, locked content is served with its file URL even to
	// anonymous visitors. Meant for staging environments.
	LockEnforced bool

	DefaultTimeout time.Duration
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	db        *gorm.DB
	repo      repositories.Repository
	bus       *events.Bus
	logger    *slog.Logger
	validator *validator.Validator
	config    ServiceManagerConfig

	// Service instances
	authService     AuthService
	userService     UserService
	contentService  ContentService
	catalogService  CatalogService
	updateService   UpdateService
	feedbackService FeedbackService
	exportService   ExportService

	sessions *SessionStore

	// Lifecycle management
	initialized bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(db *gorm.DB, repo repositories.Repository, bus *events.Bus, logger *slog.Logger, validator *validator.Validator, config ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		db:        db,
		repo:      repo,
		bus:       bus,
		logger:    logger,
		validator: validator,
		config:    config,
	}
}

// NewDefaultServiceManager creates a service manager with default configuration
func NewDefaultServiceManager(db *gorm.DB, repo repositories.Repository, bus *events.Bus, logger *slog.Logger, validator *validator.Validator) ServiceManager {
	config := ServiceManagerConfig{
		LogLevel:        slog.LevelInfo,
		SuperAdminEmail: "boldscholars@gmail.com",
		LockEnforced:    true,
		DefaultTimeout:  30 * time.Second,
	}
	return NewServiceManager(db, repo, bus, logger, validator, config)
}

// Initialize sets up all services and starts the catalog live sync.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.sessions = NewSessionStore()

	sm.authService = NewAuthService(sm.repo, sm.sessions, sm.logger, sm.validator, sm.config.SuperAdminEmail)
	sm.logger.Info("Auth service initialized")

	sm.userService = NewUserService(sm.repo, sm.logger, sm.validator)
	sm.logger.Info("User service initialized")

	sm.contentService = NewContentService(sm.repo, sm.bus.Publisher, sm.logger, sm.validator)
	sm.logger.Info("Content service initialized")

	sm.updateService = NewUpdateService(sm.repo, sm.bus.Publisher, sm.logger, sm.validator)
	sm.logger.Info("Update service initialized")

	sm.feedbackService = NewFeedbackService(sm.repo, sm.bus.Publisher, sm.logger, sm.validator)
	sm.logger.Info("Feedback service initialized")

	sm.exportService = NewExportService(sm.repo, sm.logger)
	sm.logger.Info("Export service initialized")

	sm.catalogService = NewCatalogService(sm.repo, sm.bus.Subscriber, sm.logger, sm.config.LockEnforced)
	if err := sm.catalogService.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog service: %w", err)
	}
	sm.logger.Info("Catalog service initialized")

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

// Shutdown stops the catalog live sync and marks the manager unusable.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.catalogService.Close(); err != nil {
		sm.logger.Error("failed to stop catalog service", "error", err)
	}

	sm.initialized = false
	return nil
}

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}
	return nil
}

// Service getters
func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.authService
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.userService
}

func (sm *serviceManager) Content() ContentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.contentService
}

func (sm *serviceManager) Catalog() CatalogService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.catalogService
}

func (sm *serviceManager) Update() UpdateService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.updateService
}

func (sm *serviceManager) Feedback() FeedbackService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.feedbackService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.exportService
}
