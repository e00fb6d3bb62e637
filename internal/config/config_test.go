package config

import "testing"

func validConfig() *Config {
	return &Config{
		Port:                  "8000",
		Env:                   "development",
		DatabaseURL:           "postgres://localhost:5432/insights",
		DBMaxConns:            20,
		DBMinConns:            5,
		RequestTimeoutSeconds: 30,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid dev config", func(c *Config) {}, false},
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }, true},
		{"production without signing key", func(c *Config) { c.Env = "production" }, true},
		{"production with signing key", func(c *Config) {
			c.Env = "production"
			c.AuthSigningKey = "secret"
		}, false},
		{"min conns above max", func(c *Config) { c.DBMinConns = 30 }, true},
		{"zero timeout", func(c *Config) { c.RequestTimeoutSeconds = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/insights")
	t.Setenv("ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.DBMaxConns != 20 || cfg.DBMinConns != 5 {
		t.Errorf("pool bounds = %d/%d, want 20/5", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.RequestTimeoutSeconds != 30 {
		t.Errorf("RequestTimeoutSeconds = %d, want 30", cfg.RequestTimeoutSeconds)
	}
	if !cfg.IsDev() {
		t.Error("ENV=development must report IsDev")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ENV", "development")

	if _, err := Load(); err == nil {
		t.Fatal("Load must fail without DATABASE_URL")
	}
}
