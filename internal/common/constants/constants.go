package constants

import "time"

const (
	BcryptCost = 10

	DefaultMaxRequestSize = 1 << 20

	MongoConnectTimeout = 15 * time.Second
	MongoMaxAttempts    = 10
	MongoRetryDelay     = 1 * time.Second

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultHTTPPort       = "3500"
	DefaultDatabaseName   = "technotes"
	DefaultRequestTimeout = 5 * time.Second

	UsersCollection = "users"
	NotesCollection = "notes"

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28

	RequestLogFile = "reqLog.log"
	ErrorLogFile   = "errLog.log"
	AppLogFile     = "app.log"
)

type RequestIDKeyType string

const RequestIDKey RequestIDKeyType = "request_id"
