package database

import (
	"testing"

	"vehicle-lookup-api/internal/config"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		Name:     "vehicles",
		User:     "app",
		Password: "p@ss:word",
		SSLMode:  "disable",
	})
	want := "postgres://app:p%40ss%3Aword@db:5433/vehicles?sslmode=disable"
	if got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}
