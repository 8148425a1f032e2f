package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process-level configuration.
type Server struct {
	Addr           string        `env:"VISITGATE_ADDR" envDefault:":8080"`
	LogLevel       string        `env:"VISITGATE_LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"VISITGATE_REQUEST_TIMEOUT" envDefault:"30s"`
	OTelEndpoint   string        `env:"VISITGATE_OTEL_ENDPOINT"`

	Redis      RedisConfig
	Downstream Downstream
	Engine     Engine
}

// RedisConfig configures the optional reference-data cache.
type RedisConfig struct {
	URL          string        `env:"VISITGATE_REDIS_URL"`
	PoolSize     int           `env:"VISITGATE_REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"VISITGATE_REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"VISITGATE_REDIS_DIAL_TIMEOUT" envDefault:"2s"`
	ReadTimeout  time.Duration `env:"VISITGATE_REDIS_READ_TIMEOUT" envDefault:"1s"`
	WriteTimeout time.Duration `env:"VISITGATE_REDIS_WRITE_TIMEOUT" envDefault:"1s"`
}

// Downstream holds base URLs and call budgets for the collaborating services.
type Downstream struct {
	SchedulerURL    string        `env:"VISITGATE_SCHEDULER_URL" envDefault:"http://localhost:8081"`
	PrisonAPIURL    string        `env:"VISITGATE_PRISON_API_URL" envDefault:"http://localhost:8082"`
	AlertsURL       string        `env:"VISITGATE_ALERTS_URL" envDefault:"http://localhost:8083"`
	ContactsURL     string        `env:"VISITGATE_CONTACTS_URL" envDefault:"http://localhost:8084"`
	WhereaboutsURL  string        `env:"VISITGATE_WHEREABOUTS_URL" envDefault:"http://localhost:8085"`
	BankHolidaysURL string        `env:"VISITGATE_BANK_HOLIDAYS_URL" envDefault:"https://www.gov.uk"`
	Timeout         time.Duration `env:"VISITGATE_DOWNSTREAM_TIMEOUT" envDefault:"10s"`
	BreakerFailures int           `env:"VISITGATE_BREAKER_FAILURES" envDefault:"5"`
	BreakerCooldown time.Duration `env:"VISITGATE_BREAKER_COOLDOWN" envDefault:"5s"`
}

// Engine tunes the eligibility rules.
type Engine struct {
	ReferenceCacheTTL             time.Duration `env:"VISITGATE_REFERENCE_CACHE_TTL" envDefault:"1h"`
	ReviewRestrictionTypes        []string      `env:"VISITGATE_REVIEW_RESTRICTION_TYPES" envSeparator:"," envDefault:"RESTRICTED,CHILD"`
	VisitorReviewRestrictionTypes []string      `env:"VISITGATE_VISITOR_REVIEW_RESTRICTION_TYPES" envSeparator:"," envDefault:"BAN,CCTV,PREINF,RESTRICTED,CHILD,DIHCON,NONCON,VISIT_CUS,CLOSED"`
	SupportedAlertCodes           []string      `env:"VISITGATE_SUPPORTED_ALERT_CODES" envSeparator:"," envDefault:"UPIU,URCU,USU,UPLU,URS,URGC"`
	PriorityAppointmentCodes      []string      `env:"VISITGATE_PRIORITY_APPOINTMENT_CODES" envSeparator:"," envDefault:"CABA,CAHE,GENERAL,INST,LEGAL,MEDE,MEDO,OPTH,PHYS,VLB,VLLA"`
	// SessionTypeFallback is "closed" or "propagate".
	SessionTypeFallback string `env:"VISITGATE_SESSION_TYPE_FALLBACK" envDefault:"closed"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Engine.SessionTypeFallback {
	case "closed", "propagate":
	default:
		return Server{}, fmt.Errorf("VISITGATE_SESSION_TYPE_FALLBACK must be closed or propagate, got %q", cfg.Engine.SessionTypeFallback)
	}
	return cfg, nil
}
