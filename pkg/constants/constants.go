package constants

type ContextKey string

const (
	PoolKey   ContextKey = "pool"
	TxKey     ContextKey = "tx"
	ActorKey  ContextKey = "actor"
	LoggerKey ContextKey = "logger"
)
