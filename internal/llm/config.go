package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of assistant task being performed.
type TaskType string

const (
	TaskConsult      TaskType = "consult"
	TaskBriefing     TaskType = "briefing"
	TaskIntervention TaskType = "intervention"
	TaskWeekly       TaskType = "weekly"
)

// TaskConfig holds per-task completion parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the assistant subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
// The assistant is disabled until an API key is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "https://api.groq.com/openai/v1",
		Model:      "llama-3.3-70b-versatile",
		TimeoutMs:  15000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskConsult:      {Temperature: 0.4, MaxTokens: 1024, TimeoutMs: 15000},
			TaskBriefing:     {Temperature: 0.3, MaxTokens: 768, TimeoutMs: 10000},
			TaskIntervention: {Temperature: 0.2, MaxTokens: 512, TimeoutMs: 10000},
			TaskWeekly:       {Temperature: 0.3, MaxTokens: 1536, TimeoutMs: 20000},
		},
	}
}

// LoadConfig reads assistant configuration from environment variables,
// falling back to defaults for any unset values. Setting an API key enables
// the assistant unless OVERWATCH_LLM_ENABLED says otherwise.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("OVERWATCH_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("OVERWATCH_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("OVERWATCH_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("OVERWATCH_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("OVERWATCH_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("OVERWATCH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("OVERWATCH_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
