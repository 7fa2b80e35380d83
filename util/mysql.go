package util

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MysqlDsn strips the mysql:// scheme and, when invalid certificates are accepted,
// turns tls=true into tls=skip-verify.
func MysqlDsn(raw string, acceptInvalidCerts bool) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) >= len("mysql://") && strings.EqualFold(raw[:len("mysql://")], "mysql://") {
		raw = raw[len("mysql://"):]
	}
	cfg, err := mysql.ParseDSN(raw)
	if err != nil {
		return "", fmt.Errorf("MysqlDsn -> %w", err)
	}
	if acceptInvalidCerts && cfg.TLSConfig == "true" {
		cfg.TLSConfig = "skip-verify"
	}
	return cfg.FormatDSN(), nil
}
