package domain

import "time"

// Event types published to the audit stream. Values are the wire names.
const (
	EventJobCreated         = "jobCreated"
	EventJobReceived        = "jobReceived"
	EventJobStatusRequest   = "jobStatusRequest"
	EventJobStalled         = "jobStalled"
	EventJobStalledTerminal = "jobStalledTerminal"
	EventMachinePing        = "machinePing"
	EventDeploymentCreated  = "deploymentCreated"
	EventDeploymentReleased = "deploymentReleased"
	EventDeploymentNotified = "deploymentNotified"
	EventFunctionInvocation = "functionInvocation"
)

// Event is one append-only audit record. Events are observability output,
// never control-plane state: losing one must not change job outcomes.
type Event struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	ClusterID    string            `json:"clusterId"`
	JobID        string            `json:"jobId,omitempty"`
	Service      string            `json:"service,omitempty"`
	MachineID    string            `json:"machineId,omitempty"`
	DeploymentID string            `json:"deploymentId,omitempty"`
	Meta         map[string]string `json:"meta,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}
