package configs

import "time"

// Kafka configures the domain event publisher. Events are dropped when
// Brokers is empty.
type Kafka struct {
	Brokers      []string      `env:"BROKERS" envSeparator:","`
	Topic        string        `env:"TOPIC" envDefault:"affiliate-escrow.events"`
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"10ms"`
}

// Enabled reports whether at least one broker is configured.
func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}
