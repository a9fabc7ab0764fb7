package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kamasanicharan/BoldScholars/internal/cache"
	"github.com/kamasanicharan/BoldScholars/internal/config"
	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
	"github.com/kamasanicharan/BoldScholars/internal/repositories/casdoor"
	blobs3 "github.com/kamasanicharan/BoldScholars/internal/repositories/s3"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	// Repository instances
	userProfile repositories.UserProfileRepository
	content     repositories.ContentRepository
	updatePost  repositories.UpdatePostRepository
	feedback    repositories.FeedbackRepository
	identity    repositories.IdentityRepository
	blob        repositories.BlobStore
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB            *gorm.DB
	RedisClient   *redis.Client
	CasdoorConfig casdoor.CasdoorConfig
	SpacesConfig  config.SpacesConfig
}

// NewPostgreSQLRepository creates a new repository aggregate with all
// sub-repositories wired to their backends.
func NewPostgreSQLRepository(cfg RepositoryConfig) (repositories.Repository, error) {
	repo := &PostgreSQLRepository{
		db:           cfg.DB,
		redisClient:  cfg.RedisClient,
		cacheManager: cache.NewCacheManager(cfg.RedisClient),
	}

	repo.userProfile = NewUserProfilePostgreSQL(cfg.DB)
	repo.content = NewContentPostgreSQL(cfg.DB, cfg.RedisClient)
	repo.updatePost = NewUpdatePostPostgreSQL(cfg.DB, cfg.RedisClient)
	repo.feedback = NewFeedbackPostgreSQL(cfg.DB)

	// Identity lives in Casdoor, blobs in the S3-compatible store.
	repo.identity = casdoor.NewIdentityCasdoor(cfg.CasdoorConfig, cfg.RedisClient)

	blob, err := blobs3.NewBlobS3(cfg.SpacesConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}
	repo.blob = blob

	return repo, nil
}

func (r *PostgreSQLRepository) UserProfile() repositories.UserProfileRepository {
	return r.userProfile
}

func (r *PostgreSQLRepository) Content() repositories.ContentRepository {
	return r.content
}

func (r *PostgreSQLRepository) UpdatePost() repositories.UpdatePostRepository {
	return r.updatePost
}

func (r *PostgreSQLRepository) Feedback() repositories.FeedbackRepository {
	return r.feedback
}

func (r *PostgreSQLRepository) Identity() repositories.IdentityRepository {
	return r.identity
}

func (r *PostgreSQLRepository) Blob() repositories.BlobStore {
	return r.blob
}

// WithTransaction executes fn within a database transaction. The external
// collaborators (identity provider, blob store) are passed through; only
// the database-backed repositories are rebound to the transaction.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &PostgreSQLRepository{
			db:           tx,
			redisClient:  r.redisClient,
			cacheManager: r.cacheManager,

			userProfile: NewUserProfilePostgreSQL(tx),
			content:     NewContentPostgreSQL(tx, r.redisClient),
			updatePost:  NewUpdatePostPostgreSQL(tx, r.redisClient),
			feedback:    NewFeedbackPostgreSQL(tx),
			identity:    r.identity,
			blob:        r.blob,
		}
		return fn(txRepo)
	})
}

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// ===== REPOSITORY MANAGER =====

type postgreSQLRepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &postgreSQLRepositoryManager{config: config}
}

// Initialize migrates the schema and constructs the repository aggregate.
func (m *postgreSQLRepositoryManager) Initialize() error {
	err := m.config.DB.AutoMigrate(
		&models.UserProfile{},
		&models.ContentItem{},
		&models.UpdatePost{},
		&models.Feedback{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	repo, err := NewPostgreSQLRepository(m.config)
	if err != nil {
		return err
	}
	m.repo = repo
	return nil
}

func (m *postgreSQLRepositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *postgreSQLRepositoryManager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("repository manager not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.repo.Ping(ctx)
}

func (m *postgreSQLRepositoryManager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close()
}
