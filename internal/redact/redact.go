// Package redact provides utilities for scrubbing sensitive information from
// strings before they are logged. Error text flowing out of the database
// layer can contain connection strings, SQL fragments, or signed tokens;
// these must never end up verbatim in log output.
package redact

import "regexp"

// Redaction placeholders.
const (
	credentialPlaceholder = "[REDACTED_CREDENTIAL]"
	jwtPlaceholder        = "[REDACTED_JWT]"
	sqlPlaceholder        = "[REDACTED_SQL]"
	secretPlaceholder     = "[REDACTED_KEY]"
)

var (
	// Database connection strings with embedded credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Signed JWTs (three base64url segments starting with the JOSE header).
	jwtRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// SQL statement fragments leaked from driver errors.
	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE)[\s\w,*()='"$]*`,
	)

	// Secret-bearing key=value pairs. The value class excludes brackets so
	// placeholders left by earlier rules are not consumed, and the key and
	// separator are kept so the log line stays attributable.
	secretRegex = regexp.MustCompile(
		`(?i)(password|passwd|secret|token|api[_-]?key)(['"\s:=]+)[^'"&\s\[\]]{3,}`,
	)

	// Applied in order; connection strings first so their passwords never
	// survive long enough for a later pattern to partially match them.
	rules = []struct {
		re          *regexp.Regexp
		replacement string
	}{
		{dbConnRegex, credentialPlaceholder},
		{jwtRegex, jwtPlaceholder},
		{secretRegex, "${1}${2}" + secretPlaceholder},
		{sqlRegex, sqlPlaceholder},
	}
)

// String scrubs all known sensitive patterns from s.
func String(s string) string {
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.replacement)
	}
	return s
}

// Error scrubs the error's message. Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
