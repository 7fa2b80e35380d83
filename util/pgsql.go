package util

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	_ "github.com/lib/pq"
)

// PgsqlDsn tags connections with application_name and, when invalid certificates
// are accepted, lowers a verifying sslmode to require.
func PgsqlDsn(raw string, acceptInvalidCerts bool) (string, error) {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("PgsqlDsn -> %w", err)
		}
		q := u.Query()
		if q.Get("application_name") == "" {
			q.Set("application_name", ApplicationName)
		}
		if acceptInvalidCerts && isVerifyingSslMode(q.Get("sslmode")) {
			q.Set("sslmode", "require")
		}
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	//key=value form
	params, err := parseKeyValueDsn(raw)
	if err != nil {
		return "", fmt.Errorf("PgsqlDsn -> %w", err)
	}
	hasAppName := false
	for i := range params {
		switch params[i].key {
		case "application_name":
			hasAppName = true
		case "sslmode":
			if acceptInvalidCerts && isVerifyingSslMode(params[i].value) {
				params[i].value = "require"
			}
		}
	}
	if !hasAppName {
		params = append(params, dsnParam{key: "application_name", value: ApplicationName})
	}
	fields := make([]string, 0, len(params))
	for _, p := range params {
		fields = append(fields, p.key+"="+quoteDsnValue(p.value))
	}
	return strings.Join(fields, " "), nil
}

type dsnParam struct {
	key   string
	value string
}

// parseKeyValueDsn splits a libpq "key = value" string. Values may be single
// quoted, and a backslash escapes the next character in both forms.
func parseKeyValueDsn(raw string) ([]dsnParam, error) {
	var params []dsnParam
	r := []rune(raw)
	i := 0
	skipSpaces := func() {
		for i < len(r) && unicode.IsSpace(r[i]) {
			i++
		}
	}
	for {
		skipSpaces()
		if i >= len(r) {
			return params, nil
		}
		start := i
		for i < len(r) && r[i] != '=' && !unicode.IsSpace(r[i]) {
			i++
		}
		key := string(r[start:i])
		skipSpaces()
		if key == "" || i >= len(r) || r[i] != '=' {
			return nil, fmt.Errorf("missing \"=\" after %q in connection string", key)
		}
		i++
		skipSpaces()

		var value strings.Builder
		if i < len(r) && r[i] == '\'' {
			i++
			closed := false
			for i < len(r) {
				c := r[i]
				i++
				if c == '\\' && i < len(r) {
					value.WriteRune(r[i])
					i++
					continue
				}
				if c == '\'' {
					closed = true
					break
				}
				value.WriteRune(c)
			}
			if !closed {
				return nil, fmt.Errorf("unterminated quoted value for %q in connection string", key)
			}
		} else {
			for i < len(r) && !unicode.IsSpace(r[i]) {
				if r[i] == '\\' && i+1 < len(r) {
					i++
				}
				value.WriteRune(r[i])
				i++
			}
		}
		params = append(params, dsnParam{key: key, value: value.String()})
	}
}

func quoteDsnValue(value string) string {
	if value != "" && !strings.ContainsAny(value, " \t\n\r'\\") {
		return value
	}
	return EncloseValue(value, strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace)
}

var verifyingSslModes = []string{"verify-ca", "verify-full"}

func isVerifyingSslMode(mode string) bool {
	return InSlice(mode, verifyingSslModes)
}
