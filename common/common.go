package common

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	ProjectID string

	GAEService string

	GAEVersion string

	Env string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

// Gin context keys set by the auth middleware.
var CtxKeys struct {
	UserID string
	Email  string
	Claims string
	UID    string
}

func init() {
	// The legacy deploys exported GCP_PROJECT; App Engine sets
	// GOOGLE_CLOUD_PROJECT. Accept both, newest first.
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", os.Getenv("GCP_PROJECT"))

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "connect-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	if IsLocalhost {
		Env = "development"
	} else {
		Env = "production"
		Production = true
	}

	CtxKeys.UserID = "userId"
	CtxKeys.Email = "email"
	CtxKeys.Claims = "claims"
	CtxKeys.UID = "uid"
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func String(v string) *string {
	return &v
}

func Int64(v int64) *int64 {
	return &v
}

func Bool(v bool) *bool {
	return &v
}

// Float
func Float(v float64) *float64 {
	return &v
}

func ToUnixMillis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

func MakeTimestamp() int64 {
	return ToUnixMillis(time.Now())
}
