package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS         = ""                // e.g. "example.com,example2.com"
	BIND_ADDRESS        = "0.0.0.0:8080"
	MYSQL_DSN           = ""                // MySQL will be used if this is set
	POSTGRES_DSN        = ""                // PostgreSQL will be used if MYSQL_DSN is not configured and this is set
	SQLITE_FILE         = "yatube.db"       // SQLite is the fallback when neither of the above is set
	DEBUG_MODE          = false
	LOG_LEVEL           = "info"            // debug, info, warn, error
	SESSION_KEY         = "this is a long key"
	SESSION_MAX_AGE     = 14 * 86400        // 2 weeks
	INDEX_CACHE_SECONDS = 20                // How long the rendered home feed is served from the page cache
	MEDIA_DIR           = "media"           // Post images are stored here unless S3_BUCKET is set
	S3_BUCKET           = ""
	S3_REGION           = "us-east-1"
	S3_ENDPOINT         = ""                // For S3 compatible services, e.g. MinIO
	S3_ACCESS_KEY       = ""
	S3_SECRET_KEY       = ""
	S3_PREFIX           = ""                // Key prefix inside the bucket
	GROUPS_FILE         = ""                // YAML file with groups to create/update at startup
	ADMIN_USERNAME      = ""                // If both are set, an admin account is ensured at startup
	ADMIN_PASSWORD      = ""
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("POSTGRES_DSN", &POSTGRES_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("LOG_LEVEL", &LOG_LEVEL)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvInt("SESSION_MAX_AGE", &SESSION_MAX_AGE)
	readEnvInt("INDEX_CACHE_SECONDS", &INDEX_CACHE_SECONDS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_ACCESS_KEY", &S3_ACCESS_KEY)
	readEnvString("S3_SECRET_KEY", &S3_SECRET_KEY)
	readEnvString("S3_PREFIX", &S3_PREFIX)
	readEnvString("GROUPS_FILE", &GROUPS_FILE)
	readEnvString("ADMIN_USERNAME", &ADMIN_USERNAME)
	readEnvString("ADMIN_PASSWORD", &ADMIN_PASSWORD)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}
