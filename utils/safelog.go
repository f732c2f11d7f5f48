// utils/safelog.go
// ============================================================================
// SAFE LOGGING - hides financial figures in production
// ============================================================================

package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

var (
	// IsProduction switches masking on.
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	// LogLevel filters Safe* output (DEBUG, INFO, WARN, ERROR).
	LogLevel = ParseLogLevel(os.Getenv("LOG_LEVEL"))
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func ParseLogLevel(level string) int {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// ============================================================================
// MASKING
// ============================================================================

var (
	amountWithCurrencyRegex = regexp.MustCompile(`(\$|€|£)\s?\d[\d,]*(\.\d+)?|\b\d[\d,]*(\.\d+)?\s?(USD|EUR|GBP|LKR)\b`)

	// "amount":123.45 style fragments of JSON bodies
	jsonAmountRegex = regexp.MustCompile(`"(amount|value|worth|originalValue|currentValue)"\s*:\s*-?\d+(\.\d+)?`)
)

// MaskString hides money amounts in a log line when running in production.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}
	result := amountWithCurrencyRegex.ReplaceAllString(input, "***")
	result = jsonAmountRegex.ReplaceAllStringFunc(result, func(m string) string {
		return m[:strings.Index(m, ":")+1] + "***"
	})
	return result
}

// MaskAmount renders an amount, or *** in production.
func MaskAmount(amount float64) string {
	if IsProduction {
		return "***"
	}
	return fmt.Sprintf("%.2f", amount)
}

// ============================================================================
// LOGGING
// ============================================================================

func SafeDebug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeInfo(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[INFO] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeWarn(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	log.Printf("[WARN] %s", MaskString(fmt.Sprintf(format, args...)))
}

// SafeError is never filtered.
func SafeError(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", MaskString(fmt.Sprintf(format, args...)))
}

// LogRecordAction logs a mutation of a collection. Only identifiers are
// logged, never record contents.
func LogRecordAction(action string, resource string, id string) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[Record] %s - Resource: %s ID: %s", action, resource, id)
}

// LogAPIRequest logs a finished request.
func LogAPIRequest(method string, path string, requestID string, statusCode int, duration string) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[API] %s %s - Request: %s Status: %d Duration: %s",
		method,
		path,
		requestID,
		statusCode,
		duration)
}

// GetEnvMode returns "production" or "development".
func GetEnvMode() string {
	if IsProduction {
		return "production"
	}
	return "development"
}

// LogStartup prints the startup banner.
func LogStartup(appName string, version string, port string) {
	log.Printf("🚀 %s v%s starting...", appName, version)
	log.Printf("   Mode: %s", GetEnvMode())
	log.Printf("   Port: %s", port)
	log.Printf("   Log Level: %d", LogLevel)
	if IsProduction {
		log.Printf("   ⚠️  Production mode: amounts will be masked in logs")
	}
}
