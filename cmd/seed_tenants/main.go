// seed_tenants genera un script SQL para poblar la tabla tenants a partir del
// export CSV del sistema anterior (delimitado por ';', codificado en ISO-8859-1).
//
// Columnas esperadas: nombre;apellido;cedula;telefono;email;contacto_emergencia
//
// Uso: go run ./cmd/seed_tenants [ruta/inquilinos.csv]
// Por defecto busca inquilinos.csv en el directorio actual.
// Escribe: seeds/tenants.sql (aplicar a mano con psql, no es una migración)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type legacyTenant struct {
	firstName        string
	lastName         string
	idPassport       string
	phone            string
	email            string
	emergencyContact string
}

func main() {
	csvPath := "inquilinos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El sistema anterior exporta en ISO-8859-1 (tildes y eñes).
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	seen := make(map[string]bool)
	var tenants []legacyTenant
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "nombre") {
			continue // cabecera
		}
		if len(rec) < 3 {
			fmt.Fprintf(os.Stderr, "Fila %d ignorada: menos de 3 columnas\n", i+1)
			continue
		}
		t := legacyTenant{
			firstName:  strings.TrimSpace(rec[0]),
			lastName:   strings.TrimSpace(rec[1]),
			idPassport: strings.TrimSpace(rec[2]),
		}
		if len(rec) > 3 {
			t.phone = strings.TrimSpace(rec[3])
		}
		if len(rec) > 4 {
			t.email = strings.TrimSpace(rec[4])
		}
		if len(rec) > 5 {
			t.emergencyContact = strings.TrimSpace(rec[5])
		}
		if t.firstName == "" || t.idPassport == "" {
			fmt.Fprintf(os.Stderr, "Fila %d ignorada: nombre o cédula vacíos\n", i+1)
			continue
		}
		// La cédula es única en el sistema: la primera aparición gana
		if seen[t.idPassport] {
			fmt.Fprintf(os.Stderr, "Fila %d ignorada: cédula duplicada %s\n", i+1, t.idPassport)
			continue
		}
		seen[t.idPassport] = true
		tenants = append(tenants, t)
	}

	moduleRoot := findModuleRoot()
	outDir := filepath.Join(moduleRoot, "seeds")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	outPath := filepath.Join(outDir, "tenants.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Inquilinos migrados desde el sistema anterior\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	for _, t := range tenants {
		fmt.Fprintf(out,
			"INSERT INTO tenants (id, first_name, last_name, id_passport_number, phone, email, emergency_contact, status, balance, created_at)\n"+
				"VALUES ('%s', '%s', '%s', '%s', '%s', '%s', '%s', 'active', 0, now())\n"+
				"ON CONFLICT (id_passport_number) DO NOTHING;\n",
			uuid.NewString(),
			escapeSQL(t.firstName), escapeSQL(t.lastName), escapeSQL(t.idPassport),
			escapeSQL(t.phone), escapeSQL(t.email), escapeSQL(t.emergencyContact),
		)
	}

	fmt.Printf("Generado %s: %d inquilinos\n", outPath, len(tenants))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
