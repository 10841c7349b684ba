package pgdb

import (
	"testing"

	"github.com/trezcool/gradebook/core"
)

func Test_dataSourceName(t *testing.T) {
	conf := core.DatabaseConfig{
		Engine:   "postgres",
		Host:     "db",
		Port:     5432,
		Name:     "gradebook",
		User:     "grader",
		Password: "p@ss",
	}

	tests := []struct {
		name       string
		dbName     string
		disableTLS bool
		want       string
	}{
		{name: "tls", dbName: "gradebook", want: "postgres://grader:p%40ss@db:5432/gradebook?sslmode=require&timezone=utc"},
		{name: "no tls", dbName: "gradebook", disableTLS: true, want: "postgres://grader:p%40ss@db:5432/gradebook?sslmode=disable&timezone=utc"},
		{name: "admin db", dbName: "postgres", want: "postgres://grader:p%40ss@db:5432/postgres?sslmode=require&timezone=utc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := conf
			c.DisableTLS = tt.disableTLS
			if got := dataSourceName(tt.dbName, c); got != tt.want {
				t.Errorf("dataSourceName() = %v, want %v", got, tt.want)
			}
		})
	}
}
