package redis

import "testing"

func TestNewRedisStreamConfig(t *testing.T) {
	cfg := NewRedisStreamConfig("localhost:6379", "secret", "capmap-events", "capmap-group", "worker-1")

	if cfg.Stream != "capmap-events" || cfg.Group != "capmap-group" {
		t.Errorf("stream/group = %q/%q, want capmap-events/capmap-group", cfg.Stream, cfg.Group)
	}
	if cfg.ConsumerName != "worker-1" {
		t.Errorf("consumer name = %q, want worker-1", cfg.ConsumerName)
	}
}

func TestNewRedisStreamConfig_DefaultConsumerName(t *testing.T) {
	cfg := NewRedisStreamConfig("localhost:6379", "", "capmap-events", "capmap-group", "")

	if cfg.ConsumerName != DefaultConsumerName {
		t.Errorf("consumer name = %q, want %q", cfg.ConsumerName, DefaultConsumerName)
	}
}
