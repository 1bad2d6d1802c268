// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "testing"

func TestDialectFor(t *testing.T) {
	tests := []struct {
		input   string
		want    Dialect
		wantErr bool
	}{
		{"postgres", Postgres, false},
		{"PostgreSQL", Postgres, false},
		{"sqlite", SQLite, false},
		{"sqlite3", SQLite, false},
		{"mysql", Dialect{}, true},
		{"", Dialect{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DialectFor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DialectFor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DialectFor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRebind(t *testing.T) {
	query := "INSERT INTO scores (id, time) VALUES (?, ?)"

	if got := SQLite.Rebind(query); got != query {
		t.Errorf("SQLite.Rebind changed the query: %q", got)
	}

	want := "INSERT INTO scores (id, time) VALUES ($1, $2)"
	if got := Postgres.Rebind(query); got != want {
		t.Errorf("Postgres.Rebind = %q, want %q", got, want)
	}
}

func TestWithSSLMode(t *testing.T) {
	tests := []struct {
		name string
		url  string
		mode string
		want string
	}{
		{"no mode", "postgres://u@h/db", "", "postgres://u@h/db"},
		{"append query", "postgres://u@h/db", "require", "postgres://u@h/db?sslmode=require"},
		{"append to existing query", "postgres://u@h/db?connect_timeout=5", "require", "postgres://u@h/db?connect_timeout=5&sslmode=require"},
		{"already set", "postgres://u@h/db?sslmode=disable", "require", "postgres://u@h/db?sslmode=disable"},
		{"key value form", "host=h dbname=db", "require", "host=h dbname=db sslmode=require"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithSSLMode(tt.url, tt.mode); got != tt.want {
				t.Errorf("WithSSLMode(%q, %q) = %q, want %q", tt.url, tt.mode, got, tt.want)
			}
		})
	}
}
