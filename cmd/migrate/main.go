// migrate aplica o revierte las migraciones embebidas del esquema.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down [n]   (por defecto n=1)
//	go run ./cmd/migrate version
//
// La conexión sale de DATABASE_URL o de DB_HOST, DB_PORT, DB_USER...
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pilotosfah/pilotos-api/internal/infrastructure/postgres"
	"github.com/pilotosfah/pilotos-api/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	dsn := cfg.DB.ConnectionString()

	switch os.Args[1] {
	case "up":
		if err := postgres.MigrateUp(dsn); err != nil {
			fmt.Fprintf(os.Stderr, "Migrar: %v\n", err)
			os.Exit(1)
		}
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			n, err := strconv.Atoi(os.Args[2])
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "Pasos inválidos: %q\n", os.Args[2])
				os.Exit(2)
			}
			steps = n
		}
		if err := postgres.MigrateDown(dsn, steps); err != nil {
			fmt.Fprintf(os.Stderr, "Revertir: %v\n", err)
			os.Exit(1)
		}
	case "version":
	default:
		usage()
	}

	v, dirty, err := postgres.MigrationVersion(dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Versión: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Versión del esquema: %d (dirty=%t)\n", v, dirty)
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: migrate up | down [n] | version")
	os.Exit(2)
}
