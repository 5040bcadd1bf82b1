package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/matchday-scraper/internal/platform/logging"
)

const (
	ArchiveNone     = "none"
	ArchiveFS       = "fs"
	ArchivePostgres = "postgres"

	SourceAPI     = "api"
	SourceArchive = "archive"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config stores runtime configuration for the updater.
type Config struct {
	AppEnv                    string
	ServiceName               string
	ServiceVersion            string
	LogLevel                  logging.Level
	LogFormat                 string
	UptraceEnabled            bool
	UptraceDSN                string
	FeedBaseURL               string
	FeedCommentaryBaseURL     string
	FeedTeamURN               string
	FeedTimeout               time.Duration
	FeedMaxRetries            int
	FeedRetryBackoff          time.Duration
	FeedCircuitEnabled        bool
	FeedCircuitFailureCount   int
	FeedCircuitOpenTimeout    time.Duration
	FeedCircuitHalfOpenMaxReq int
	TeamName                  string
	Season                    string
	LeagueCompetition         string
	DataDir                   string
	SquadDataset              string
	RawArchive                string
	RawArchiveDir             string
	DBURL                     string
	DBDisablePreparedBinary   bool
	Source                    string
	NormalizeWorkers          int
	BatchTimeout              time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormatDefault := LogFormatConsole
	if appEnv == EnvProd {
		logFormatDefault = LogFormatJSON
	}
	logFormat := strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_FORMAT", logFormatDefault)))
	if logFormat != LogFormatJSON && logFormat != LogFormatConsole {
		return Config{}, fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", logFormat, LogFormatJSON, LogFormatConsole)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	feedTimeout, err := time.ParseDuration(getEnv("FEED_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_TIMEOUT: %w", err)
	}
	if feedTimeout <= 0 {
		return Config{}, fmt.Errorf("FEED_TIMEOUT must be > 0")
	}
	feedMaxRetries, err := getEnvAsInt("FEED_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_MAX_RETRIES: %w", err)
	}
	if feedMaxRetries < 0 {
		return Config{}, fmt.Errorf("FEED_MAX_RETRIES must be >= 0")
	}
	feedRetryBackoff, err := time.ParseDuration(getEnv("FEED_RETRY_BACKOFF", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_RETRY_BACKOFF: %w", err)
	}
	if feedRetryBackoff <= 0 {
		return Config{}, fmt.Errorf("FEED_RETRY_BACKOFF must be > 0")
	}
	feedCircuitEnabled, err := strconv.ParseBool(getEnv("FEED_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_ENABLED: %w", err)
	}
	feedCircuitFailureCount, err := getEnvAsInt("FEED_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if feedCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FEED_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	feedCircuitOpenTimeout, err := time.ParseDuration(getEnv("FEED_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if feedCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FEED_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	feedCircuitHalfOpenMaxReq, err := getEnvAsInt("FEED_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if feedCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("FEED_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	teamName := strings.TrimSpace(getEnv("TEAM_NAME", "Tranmere Rovers"))
	if teamName == "" {
		return Config{}, fmt.Errorf("TEAM_NAME cannot be empty")
	}

	rawArchive := strings.ToLower(strings.TrimSpace(getEnv("RAW_ARCHIVE", ArchiveFS)))
	switch rawArchive {
	case ArchiveNone, ArchiveFS, ArchivePostgres:
	default:
		return Config{}, fmt.Errorf("invalid RAW_ARCHIVE %q: valid values are %s, %s, %s", rawArchive, ArchiveNone, ArchiveFS, ArchivePostgres)
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if rawArchive == ArchivePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when RAW_ARCHIVE=%s", ArchivePostgres)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	source := strings.ToLower(strings.TrimSpace(getEnv("SOURCE", SourceAPI)))
	switch source {
	case SourceAPI, SourceArchive:
	default:
		return Config{}, fmt.Errorf("invalid SOURCE %q: valid values are %s, %s", source, SourceAPI, SourceArchive)
	}
	if source == SourceArchive && rawArchive == ArchiveNone {
		return Config{}, fmt.Errorf("SOURCE=%s requires RAW_ARCHIVE=%s or %s", SourceArchive, ArchiveFS, ArchivePostgres)
	}

	normalizeWorkers, err := getEnvAsInt("NORMALIZE_WORKERS", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse NORMALIZE_WORKERS: %w", err)
	}
	if normalizeWorkers < 1 {
		return Config{}, fmt.Errorf("NORMALIZE_WORKERS must be >= 1")
	}

	batchTimeout, err := time.ParseDuration(getEnv("BATCH_TIMEOUT", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BATCH_TIMEOUT: %w", err)
	}
	if batchTimeout <= 0 {
		return Config{}, fmt.Errorf("BATCH_TIMEOUT must be > 0")
	}

	dataDir := strings.TrimSpace(getEnv("DATA_DIR", "./data"))

	cfg := Config{
		AppEnv:                    appEnv,
		ServiceName:               getEnv("APP_SERVICE_NAME", "matchday-scraper"),
		ServiceVersion:            getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                  parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:                 logFormat,
		UptraceEnabled:            uptraceEnabled,
		UptraceDSN:                uptraceDSN,
		FeedBaseURL:               strings.TrimSpace(getEnv("FEED_BASE_URL", "https://web-cdn.api.bbci.co.uk/wc-poll-data/container")),
		FeedCommentaryBaseURL:     strings.TrimSpace(getEnv("FEED_COMMENTARY_BASE_URL", "https://www.bbc.com/wc-data/container/stream")),
		FeedTeamURN:               strings.TrimSpace(getEnv("FEED_TEAM_URN", "urn:bbc:sportsdata:football:team:tranmere-rovers")),
		FeedTimeout:               feedTimeout,
		FeedMaxRetries:            feedMaxRetries,
		FeedRetryBackoff:          feedRetryBackoff,
		FeedCircuitEnabled:        feedCircuitEnabled,
		FeedCircuitFailureCount:   feedCircuitFailureCount,
		FeedCircuitOpenTimeout:    feedCircuitOpenTimeout,
		FeedCircuitHalfOpenMaxReq: feedCircuitHalfOpenMaxReq,
		TeamName:                  teamName,
		Season:                    strings.TrimSpace(getEnv("SEASON", "2024/25")),
		LeagueCompetition:         strings.TrimSpace(getEnv("LEAGUE_COMPETITION", "League Two")),
		DataDir:                   dataDir,
		SquadDataset:              strings.TrimSpace(getEnv("SQUAD_DATASET", "squad_numbers")),
		RawArchive:                rawArchive,
		RawArchiveDir:             strings.TrimSpace(getEnv("RAW_ARCHIVE_DIR", dataDir+"/bbc-json")),
		DBURL:                     dbURL,
		DBDisablePreparedBinary:   dbDisablePreparedBinary,
		Source:                    source,
		NormalizeWorkers:          normalizeWorkers,
		BatchTimeout:              batchTimeout,
	}
	if cfg.DataDir == "" {
		return Config{}, fmt.Errorf("DATA_DIR cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
