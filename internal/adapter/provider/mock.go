package provider

import (
	"log/slog"
	"sync"
	"time"

	"github.com/differentialHQ/differential/internal/domain"
)

// Mock is a provider for self-hosted workers: it provisions no compute and
// treats wake-up notifications as log lines. Deployments released against it
// still flow through the full lifecycle, which keeps local development and
// tests honest about the state machine.
type Mock struct {
	// MinInterval spaces wake-up notifications; the zero value defaults to 5s.
	MinInterval time.Duration

	mu       sync.Mutex
	created  map[string]domain.Deployment
	updated  map[string]int
	notified map[string]int
}

// NewMock builds a Mock provider.
func NewMock() *Mock {
	return &Mock{
		created:  make(map[string]domain.Deployment),
		updated:  make(map[string]int),
		notified: make(map[string]int),
	}
}

// Name implements domain.DeploymentProvider.
func (m *Mock) Name() string { return "mock" }

// Schema describes the provider's config surface. The mock takes none.
func (m *Mock) Schema() string { return "{}" }

// MinimumNotificationInterval implements domain.DeploymentProvider.
func (m *Mock) MinimumNotificationInterval() time.Duration {
	if m.MinInterval > 0 {
		return m.MinInterval
	}
	return 5 * time.Second
}

// Create records the deployment as provisioned.
func (m *Mock) Create(_ domain.Context, d domain.Deployment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[d.ID] = d
	slog.Info("mock provider create", slog.String("deployment_id", d.ID), slog.String("service", d.Service))
	return nil
}

// Update records a re-release of an existing deployment's service.
func (m *Mock) Update(_ domain.Context, d domain.Deployment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updated[d.ID]++
	slog.Info("mock provider update", slog.String("deployment_id", d.ID), slog.String("service", d.Service))
	return nil
}

// Notify logs the wake-up. Self-hosted workers poll on their own schedule, so
// there is nothing to start.
func (m *Mock) Notify(_ domain.Context, d domain.Deployment, pendingJobs, liveMachines int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notified[d.ID]++
	slog.Info("mock provider notify",
		slog.String("deployment_id", d.ID),
		slog.String("service", d.Service),
		slog.Int("pending_jobs", pendingJobs),
		slog.Int("live_machines", liveMachines))
	return nil
}

// CreatedCount reports how many deployments Create has seen.
func (m *Mock) CreatedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

// Notifications reports how many wake-ups a deployment has received.
func (m *Mock) Notifications(deploymentID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notified[deploymentID]
}
