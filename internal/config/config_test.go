package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/matchday-scraper/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DATA_DIR", "/srv/data")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogFormat != LogFormatJSON {
		t.Fatalf("prod log format = %q, want json", cfg.LogFormat)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("log level = %v", cfg.LogLevel)
	}
	if cfg.RawArchive != ArchiveFS || cfg.RawArchiveDir != "/srv/data/bbc-json" {
		t.Fatalf("archive = %q dir %q", cfg.RawArchive, cfg.RawArchiveDir)
	}
	if cfg.Source != SourceAPI || cfg.NormalizeWorkers != 1 {
		t.Fatalf("source = %q workers %d", cfg.Source, cfg.NormalizeWorkers)
	}
	if cfg.FeedTimeout != 20*time.Second || cfg.FeedMaxRetries != 2 || !cfg.FeedCircuitEnabled {
		t.Fatalf("feed config = %+v", cfg)
	}
	if cfg.TeamName != "Tranmere Rovers" || cfg.SquadDataset != "squad_numbers" {
		t.Fatalf("team = %q squad dataset = %q", cfg.TeamName, cfg.SquadDataset)
	}
}

func TestLoad_FeedOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "WARNING")
	t.Setenv("FEED_TIMEOUT", "5s")
	t.Setenv("FEED_MAX_RETRIES", "0")
	t.Setenv("FEED_CIRCUIT_ENABLED", "false")
	t.Setenv("NORMALIZE_WORKERS", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn || cfg.LogFormat != LogFormatConsole {
		t.Fatalf("log = %v/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.FeedTimeout != 5*time.Second || cfg.FeedMaxRetries != 0 || cfg.FeedCircuitEnabled {
		t.Fatalf("feed config = %+v", cfg)
	}
	if cfg.NormalizeWorkers != 4 {
		t.Fatalf("workers = %d", cfg.NormalizeWorkers)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"FEED_TIMEOUT":               "soon",
		"FEED_MAX_RETRIES":           "-1",
		"FEED_CIRCUIT_FAILURE_COUNT": "0",
		"RAW_ARCHIVE":                "s3",
		"SOURCE":                     "html",
		"NORMALIZE_WORKERS":          "0",
		"APP_LOG_FORMAT":             "xml",
		"BATCH_TIMEOUT":              "-1m",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoad_PostgresArchiveRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RAW_ARCHIVE", ArchivePostgres)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when RAW_ARCHIVE=postgres without DB_URL")
	}
}

func TestLoad_ArchiveSourceNeedsArchive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RAW_ARCHIVE", ArchiveNone)
	t.Setenv("SOURCE", SourceArchive)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when replaying without an archive")
	}
}
