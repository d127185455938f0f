package cmd

import (
	"time"

	adapterclock "github.com/bilalayas/takipcim/internal/adapters/clock"
	adaptereditor "github.com/bilalayas/takipcim/internal/adapters/editor"
	adapterstorage "github.com/bilalayas/takipcim/internal/adapters/storage"
	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/ports"
	"github.com/bilalayas/takipcim/internal/services"
	"github.com/bilalayas/takipcim/internal/tracker"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	DataService    *services.DataService
	SummaryService *services.SummaryService
	TaskService    *services.TaskService

	Clock  ports.Clock
	Editor ports.EditorOpener

	// Internal - for cleanup and tracker wiring
	repo ports.Repository
}

// NewContainer creates a new Container over the SQLite database at dbPath
func NewContainer(dbPath string) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}
	return newContainer(repo, adapterclock.System{}), nil
}

func newContainer(repo ports.Repository, clock ports.Clock) *Container {
	return &Container{
		Clock:          clock,
		DataService:    services.NewDataService(repo, clock),
		Editor:         adaptereditor.NewOpener(),
		SummaryService: services.NewSummaryService(repo, repo, repo, clock),
		TaskService:    services.NewTaskService(repo, repo, clock),
		repo:           repo,
	}
}

// NewTracker creates a tracker recording into the container's repository
func (c *Container) NewTracker(settings *config.Settings) *tracker.Tracker {
	return tracker.New(c.repo, c.repo, c.Clock, tracker.Options{
		HoldStep: tracker.HoldStepFor(settings.GetHoldDuration()),
	})
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
