package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port

		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_PageSizeBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Listing.DefaultPageSize = 200
	cfg.Listing.MaxPageSize = 100

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default page size exceeds max")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Storage.KeyPrefix != "contentd:" {
		t.Errorf("expected key prefix contentd:, got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Listing.DefaultPageSize != 10 || cfg.Listing.MaxPageSize != 100 {
		t.Errorf("expected page sizes 10/100, got %d/%d",
			cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Storage: StorageConfig{KeyPrefix: "custom:"},
		Listing: ListingConfig{DefaultPageSize: 25, MaxPageSize: 50},
	}
	cfg.ApplyDefaults()

	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("explicit key prefix overwritten: %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Listing.DefaultPageSize != 25 || cfg.Listing.MaxPageSize != 50 {
		t.Errorf("explicit page sizes overwritten: %d/%d",
			cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CONTENTD_TEST_VAR", "from-env")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"set variable", "value: ${CONTENTD_TEST_VAR}", "value: from-env"},
		{"unset variable", "value: ${CONTENTD_TEST_UNSET}", "value: "},
		{"default used", "value: ${CONTENTD_TEST_UNSET:-fallback}", "value: fallback"},
		{"default ignored when set", "value: ${CONTENTD_TEST_VAR:-fallback}", "value: from-env"},
		{"empty default", "value: ${CONTENTD_TEST_UNSET:-}", "value: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(expandEnvVars([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("expected local default, got %q", got)
	}

	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("expected prod, got %q", got)
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTP.Port)
	}
	if len(cfg.Database.Addrs) == 0 {
		t.Error("expected database addrs")
	}
	if cfg.Storage.KeyPrefix != "contentd:" {
		t.Errorf("expected key prefix contentd:, got %q", cfg.Storage.KeyPrefix)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("no-such-env"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
