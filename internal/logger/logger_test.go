package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)

	config := NewConfig("info", "json", "ShopPlugin", "shop_v2", "1.0.0", "test")

	InitWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != DefaultServiceName {
		t.Errorf("Expected service=%s, got %v", DefaultServiceName, logEntry["service"])
	}
	if logEntry["plugin"] != "ShopPlugin" {
		t.Errorf("Expected plugin=ShopPlugin, got %v", logEntry["plugin"])
	}
	if logEntry["namespace"] != "shop_v2" {
		t.Errorf("Expected namespace=shop_v2, got %v", logEntry["namespace"])
	}
	if _, ok := logEntry["source"]; ok {
		t.Error("Expected no source location outside development")
	}
	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}
	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)

	InitWithWriter(NewConfig("warn", "text", "ShopPlugin", "", "v", "test"), &buf)

	Debug("hidden")
	Info("hidden too")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info records to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("Expected warn record, got %q", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID := GetRequestID(ctx)
	if requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Error("Expected no request ID on empty context")
	}

	log := FromContext(ctx)
	if log == nil {
		t.Error("Expected non-nil logger")
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b {
		t.Error("Expected distinct request IDs")
	}
	if len(a) != 36 {
		t.Errorf("Expected UUID string form, got %q", a)
	}
}

func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := (Config{Level: tt.level}).LogLevel(); got != tt.want {
			t.Errorf("LogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestConfigBaseAttributes(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantKeys  []string
		namespace string
	}{
		{
			name:     "namespace derived from plugin is omitted",
			cfg:      NewConfig("info", "text", "ShopPlugin", "shopplugin", "dev", "dev"),
			wantKeys: []string{AttrKeyService, AttrKeyPlugin, AttrKeyVersion, AttrKeyEnvironment},
		},
		{
			name:      "explicit namespace is carried",
			cfg:       NewConfig("info", "text", "ShopPlugin", "market", "dev", "prod"),
			wantKeys:  []string{AttrKeyService, AttrKeyPlugin, AttrKeyNamespace, AttrKeyVersion, AttrKeyEnvironment},
			namespace: "market",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := tt.cfg.BaseAttributes()
			keys := make([]string, len(attrs))
			for i, a := range attrs {
				keys[i] = a.Key
				if a.Key == AttrKeyNamespace && a.Value.String() != tt.namespace {
					t.Errorf("Expected namespace=%s, got %s", tt.namespace, a.Value.String())
				}
			}
			if strings.Join(keys, ",") != strings.Join(tt.wantKeys, ",") {
				t.Errorf("Expected keys %v, got %v", tt.wantKeys, keys)
			}
		})
	}
}

func TestNewConfigAddSource(t *testing.T) {
	for env, want := range map[string]bool{"dev": true, "Development": true, "prod": false, "test": false} {
		if got := NewConfig("info", "text", "p", "", "v", env).AddSource; got != want {
			t.Errorf("AddSource for %q = %v, want %v", env, got, want)
		}
	}
}
