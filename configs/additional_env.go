package configs

import (
	"time"

	"github.com/golangid/candi/candihelper"
)

// Environment additional in this service
type Environment struct {
	// RemoteProfileHost base url of the upstream researcher profile service
	RemoteProfileHost string `env:"REMOTE_PROFILE_HOST"`
	// RemoteProfileTimeout timeout budget for every upstream call
	RemoteProfileTimeout time.Duration `env:"REMOTE_PROFILE_TIMEOUT"`

	// ScholarFetchDelay simulated latency for the scholarly metrics stub
	ScholarFetchDelay time.Duration `env:"SCHOLAR_FETCH_DELAY"`

	SMTPHost      string `env:"SMTP_HOST"`
	SMTPPort      int    `env:"SMTP_PORT"`
	EmailUser     string `env:"EMAIL_USER"`
	EmailPassword string `env:"EMAIL_PASSWORD"`

	// LikeRegistryBackend "redis" or "inmem"
	LikeRegistryBackend string `env:"LIKE_REGISTRY_BACKEND"`

	MatchEventTopic         string        `env:"MATCH_EVENT_TOPIC"`
	DeferredResearcherTopic string        `env:"DEFERRED_RESEARCHER_TOPIC"`
	DeferredResearcherDelay time.Duration `env:"DEFERRED_RESEARCHER_DELAY"`
}

var additionalEnv Environment

// GetEnv get global additional environment
func GetEnv() Environment {
	return additionalEnv
}

func loadAdditionalEnv() {
	candihelper.MustParseEnv(&additionalEnv)
}
