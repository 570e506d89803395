package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PARTYMETA_LOG_LEVEL", "")
	t.Setenv("PARTYMETA_METRICS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogPretty || cfg.MetricsAddr != "" {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PARTYMETA_LOG_LEVEL", "debug")
	t.Setenv("PARTYMETA_LOG_PRETTY", "true")
	t.Setenv("PARTYMETA_METRICS_ADDR", ":9102")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{LogLevel: "debug", LogPretty: true, MetricsAddr: ":9102"}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("PARTYMETA_LOG_PRETTY", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for invalid bool")
	}
}
