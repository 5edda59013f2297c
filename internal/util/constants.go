package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// IdempotencyHeader 客户端重试记录进度时携带的幂等键
const IdempotencyHeader = "Idempotency-Key"

const DefaultQuizLimit = 10
