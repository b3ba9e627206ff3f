package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultHTTPPort           = "8080"
	defaultTemporalAddress    = "localhost:7233"
	defaultTemporalNS         = "default"
	defaultTaskQueue          = "claim-intake-task-queue"
	defaultCoordinatorAgentID = "69610b7f5e0239738a838d64"
	defaultAgentTimeout       = 60
	defaultStageDelayMS       = 1000
	defaultSubmitTimeout      = 180
)

type Config struct {
	HTTPPort           string
	TemporalAddress    string
	TemporalNamespace  string
	TemporalTaskQueue  string
	AgentBaseURL       string
	AgentAPIKey        string
	CoordinatorAgentID string
	AgentTimeoutSec    int
	StageDelayMS       int
	SubmitTimeoutSec   int
	WorkflowIDPrefix   string
}

func Load() (Config, error) {
	cfg := Config{
		HTTPPort:           getenv("HTTP_PORT", defaultHTTPPort),
		TemporalAddress:    getenv("TEMPORAL_ADDRESS", defaultTemporalAddress),
		TemporalNamespace:  getenv("TEMPORAL_NAMESPACE", defaultTemporalNS),
		TemporalTaskQueue:  getenv("TEMPORAL_TASK_QUEUE", defaultTaskQueue),
		AgentBaseURL:       os.Getenv("AGENT_BASE_URL"),
		AgentAPIKey:        os.Getenv("AGENT_API_KEY"),
		CoordinatorAgentID: getenv("COORDINATOR_AGENT_ID", defaultCoordinatorAgentID),
		AgentTimeoutSec:    getenvInt("AGENT_TIMEOUT_SEC", defaultAgentTimeout),
		StageDelayMS:       getenvInt("STAGE_DELAY_MS", defaultStageDelayMS),
		SubmitTimeoutSec:   getenvInt("SUBMIT_TIMEOUT_SEC", defaultSubmitTimeout),
		WorkflowIDPrefix:   getenv("WORKFLOW_ID_PREFIX", "claim-intake"),
	}

	if cfg.AgentBaseURL == "" {
		return Config{}, fmt.Errorf("AGENT_BASE_URL is required")
	}

	return cfg, nil
}

func getenv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
