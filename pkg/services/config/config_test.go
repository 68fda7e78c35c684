package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// When
	cfg, err := Load("")

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Thresholds.MinSavingsRate != 0.10 {
		t.Errorf("expected MinSavingsRate=0.10, got %v", cfg.Thresholds.MinSavingsRate)
	}
	if cfg.Thresholds.MaxCategoryShare != 0.40 {
		t.Errorf("expected MaxCategoryShare=0.40, got %v", cfg.Thresholds.MaxCategoryShare)
	}
	if cfg.Thresholds.MinEmergencyFundMonths != 3 {
		t.Errorf("expected MinEmergencyFundMonths=3, got %v", cfg.Thresholds.MinEmergencyFundMonths)
	}
	if cfg.Benchmarks.MaxTips != 6 {
		t.Errorf("expected MaxTips=6, got %v", cfg.Benchmarks.MaxTips)
	}
	if cfg.Currency != "USD" {
		t.Errorf("expected Currency=USD, got %s", cfg.Currency)
	}
	if cfg.Watsonx.APIKey != "" {
		t.Errorf("expected empty watsonx key, got %s", cfg.Watsonx.APIKey)
	}
}

func TestLoad_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "valid.yaml")
	// No indentation inside the backtick block to avoid YAML parsing errors
	content := `currency: "EUR"
thresholds:
  min_savings_rate: 0.15
server:
  port: "9090"
watsonx:
  url: "https://eu-de.ml.cloud.ibm.com"
  api_key: "k"
  model_id: "ibm/granite-13b-chat-v2"
  project_id: "p"`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := Load(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("expected Currency=EUR, got %s", cfg.Currency)
	}
	if cfg.Thresholds.MinSavingsRate != 0.15 {
		t.Errorf("expected MinSavingsRate=0.15, got %v", cfg.Thresholds.MinSavingsRate)
	}
	if cfg.Thresholds.MaxCategoryShare != 0.40 {
		t.Errorf("expected untouched MaxCategoryShare=0.40, got %v", cfg.Thresholds.MaxCategoryShare)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected Port=9090, got %s", cfg.Server.Port)
	}
	if cfg.Watsonx.ModelID != "ibm/granite-13b-chat-v2" {
		t.Errorf("expected ModelID=ibm/granite-13b-chat-v2, got %s", cfg.Watsonx.ModelID)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WATSONX_KEY", "env-key")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Watsonx.APIKey != "env-key" {
		t.Errorf("expected APIKey=env-key, got %s", cfg.Watsonx.APIKey)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("expected Port=7070, got %s", cfg.Server.Port)
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	err := os.WriteFile(path, []byte("currency: EUR: bad"), 0o644)
	if err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}

	// When
	_, err = Load(path)

	// Then
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
