package redis

// DefaultConsumerName is used when no consumer name is supplied, e.g. when
// HOSTNAME is unset in a local run. Redis requires a non-empty name per
// group member.
const DefaultConsumerName = "capmap-consumer"

// RedisStreamConfig holds the connection and group coordinates for the
// validation event stream.
type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	Group         string
	ConsumerName  string
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, stream string, group string, consumerName string) *RedisStreamConfig {
	if consumerName == "" {
		consumerName = DefaultConsumerName
	}

	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        stream,
		Group:         group,
		ConsumerName:  consumerName,
	}
}
