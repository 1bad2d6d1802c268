// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the few differences between the supported databases
type Dialect struct {
	Name   string // "postgres" or "sqlite"
	Driver string // database/sql driver name

	numbered bool // $1, $2 placeholders instead of ?
}

var (
	Postgres = Dialect{Name: "postgres", Driver: "postgres", numbered: true}
	SQLite   = Dialect{Name: "sqlite", Driver: "sqlite"}
)

// DialectFor resolves a configured database type
func DialectFor(databaseType string) (Dialect, error) {
	switch strings.ToLower(databaseType) {
	case Postgres.Name, "postgresql":
		return Postgres, nil
	case SQLite.Name, "sqlite3":
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database type %q", databaseType)
}

// Rebind rewrites ? placeholders into the dialect's native form.
// Queries in this package never contain a literal '?'.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
