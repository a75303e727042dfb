package database

import (
	"strconv"
	"strings"
)

// Dialect SQL 방언 (드라이버별 차이 흡수)
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
)

// ParseDialect maps a config driver name to a Dialect.
func ParseDialect(driver string) (Dialect, bool) {
	switch Dialect(strings.ToLower(driver)) {
	case SQLite:
		return SQLite, true
	case MySQL:
		return MySQL, true
	case Postgres:
		return Postgres, true
	}
	return "", false
}

// DriverName database/sql 드라이버 이름
func (d Dialect) DriverName() string {
	switch d {
	case Postgres:
		return "pgx"
	default:
		return string(d)
	}
}

// SupportsReturning reports whether INSERT ... RETURNING id is available.
func (d Dialect) SupportsReturning() bool {
	return d != MySQL
}

// Rebind rewrites ? placeholders into $1, $2 ... for PostgreSQL.
// Placeholders inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if d != Postgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// column type helpers
func (d Dialect) identityColumn() string {
	switch d {
	case MySQL:
		return "id BIGINT AUTO_INCREMENT PRIMARY KEY"
	case Postgres:
		return "id BIGSERIAL PRIMARY KEY"
	default:
		// AUTOINCREMENT: 삭제된 id 재사용 방지
		return "id INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}

func (d Dialect) blobType() string {
	switch d {
	case MySQL:
		return "LONGBLOB"
	case Postgres:
		return "BYTEA"
	default:
		return "BLOB"
	}
}

// tableOptions MySQL 은 바이너리 콜레이션으로 device_id/sensor_type 을 대소문자, 후행 공백까지 구분한다
func (d Dialect) tableOptions() string {
	if d == MySQL {
		return " CHARACTER SET utf8mb4 COLLATE utf8mb4_bin"
	}
	return ""
}
