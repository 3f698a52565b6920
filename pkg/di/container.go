package di

import (
	"fmt"

	"gorm.io/gorm"

	"project-task-api/application/serviceimpl"
	"project-task-api/domain/repositories"
	"project-task-api/domain/services"
	"project-task-api/infrastructure/postgres"
	"project-task-api/interfaces/api/handlers"
	"project-task-api/pkg/config"
	"project-task-api/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB *gorm.DB

	// Repositories
	ProjectRepository repositories.ProjectRepository
	TaskRepository    repositories.TaskRepository
	AuditRepository   repositories.AuditRepository

	// Services
	ProjectService services.ProjectService
	TaskService    services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initDatabase(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	logger.Info("Container initialized")

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initDatabase() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	c.DB = db
	logger.Info("Database connected and migrated")

	return nil
}

func (c *Container) initRepositories() {
	c.ProjectRepository = postgres.NewProjectRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.AuditRepository = postgres.NewAuditRepository(c.DB)
}

func (c *Container) initServices() {
	c.ProjectService = serviceimpl.NewProjectService(c.ProjectRepository, c.AuditRepository)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.ProjectRepository, c.AuditRepository)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		ProjectService: c.ProjectService,
		TaskService:    c.TaskService,
	}
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
