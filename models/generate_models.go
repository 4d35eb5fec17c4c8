package models

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"time"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Column mismatch report

Lists database columns that no field of the corresponding model maps to.
Run with GENERATE_COLUMN_REPORT=true, or as the last step of GENERATE_MODELS=true.

	=== COLUMN MISMATCH REPORT ===
	--- Table: projects ---
	Found 1 columns not accounted for in model:
	  - legacy_owner
	=== SUMMARY ===
	Total mismatched columns across all tables: 1
*/

// All returns one zero value of every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Tag{},
		&Expertise{},
		&User{},
		&Interest{},
		&Project{},
		&ProjectTag{},
		&Technology{},
		&Position{},
	}
}

// GenerateModels migrates every model and writes typed query helpers to outPath.
func GenerateModels(db *gorm.DB, outPath string, out io.Writer) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)

	fmt.Fprintln(out, "Migrating models...")
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}
	fmt.Fprintln(out, "Database migration completed successfully!")

	if _, err := GenerateColumnMismatchReport(db, out); err != nil {
		return err
	}

	g.Execute()
	fmt.Fprintln(out, "Model generation complete!")
	return nil
}

// GenerateColumnMismatchReport prints the report and returns the total number of unmapped columns.
func GenerateColumnMismatchReport(db *gorm.DB, out io.Writer) (int, error) {
	fmt.Fprintln(out, "=== COLUMN MISMATCH REPORT ===")

	naming := schema.NamingStrategy{}
	tables := make(map[string]interface{})
	for _, m := range All() {
		tables[tableNameOf(m, naming)] = m
	}
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, tableName := range names {
		fmt.Fprintf(out, "\n--- Table: %s ---\n", tableName)

		dbColumns, err := getTableColumns(db, tableName)
		if err != nil {
			if strings.Contains(err.Error(), "does not exist") {
				fmt.Fprintln(out, "Table does not exist yet (will be created during migration)")
				continue
			}
			return total, err
		}

		mismatches := findColumnMismatches(dbColumns, getModelFields(tables[tableName], naming))
		if len(mismatches) == 0 {
			fmt.Fprintln(out, "All columns are accounted for in the model.")
			continue
		}
		fmt.Fprintf(out, "Found %d columns not accounted for in model:\n", len(mismatches))
		for _, col := range mismatches {
			fmt.Fprintf(out, "  - %s\n", col)
		}
		total += len(mismatches)
	}

	fmt.Fprintf(out, "\n=== SUMMARY ===\n")
	fmt.Fprintf(out, "Total mismatched columns across all tables: %d\n", total)
	return total, nil
}

func tableNameOf(model interface{}, naming schema.NamingStrategy) string {
	if t, ok := model.(schema.Tabler); ok {
		return t.TableName()
	}
	return naming.TableName(reflect.Indirect(reflect.ValueOf(model)).Type().Name())
}

func getTableColumns(db *gorm.DB, tableName string) ([]string, error) {
	var columns []string
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position
	`
	if err := db.Raw(query, tableName).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}

	if len(columns) == 0 {
		var tableExists bool
		tableQuery := `
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_schema = CURRENT_SCHEMA()
				AND table_name = ?
			)
		`
		if err := db.Raw(tableQuery, tableName).Scan(&tableExists).Error; err != nil {
			return nil, fmt.Errorf("error checking if table %s exists: %w", tableName, err)
		}
		if !tableExists {
			return nil, fmt.Errorf("table %s does not exist", tableName)
		}
	}

	return columns, nil
}

// getModelFields lists the column names a struct maps to. Relations and ignored fields are skipped.
func getModelFields(model interface{}, naming schema.NamingStrategy) []string {
	var fields []string
	t := reflect.Indirect(reflect.ValueOf(model)).Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous || !field.IsExported() {
			continue
		}

		gormTag := field.Tag.Get("gorm")
		if gormTag == "-" || strings.Contains(gormTag, "foreignKey:") {
			continue
		}
		if isRelation(field.Type) {
			continue
		}

		if columnName := extractColumnNameFromGormTag(gormTag); columnName != "" {
			fields = append(fields, columnName)
			continue
		}
		fields = append(fields, naming.ColumnName("", field.Name))
	}

	return fields
}

func isRelation(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Slice:
		return true
	case reflect.Struct:
		return t != reflect.TypeOf(time.Time{})
	}
	return false
}

func extractColumnNameFromGormTag(gormTag string) string {
	for _, part := range strings.Split(gormTag, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}
	return mismatches
}
