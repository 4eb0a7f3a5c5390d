package model

import "time"

const DefaultTimeout = 2 * time.Second

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
)

const ContentTypeJSON = "application/json"

type ContextKey string

const (
	KeyContextLogger ContextKey = "logger"
	KeyContextClaims ContextKey = "claims"
	KeyContextPathID ContextKey = "path_id"
)

const KeyLoggerError = "error"
