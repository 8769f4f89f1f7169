package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/atlasops/wsrflow/internal/db"
	"github.com/atlasops/wsrflow/internal/mapping"
	"github.com/atlasops/wsrflow/internal/upload"
)

// Config is the full configuration surface of the pipeline. Values come
// from an optional config.yaml with environment overrides; there is no
// CLI.
type Config struct {
	Database db.Config

	// ReportsDir is scanned for report files and ZIP bundles.
	ReportsDir string
	// WorkbookPath points at the master workbook holding the mapping
	// reference sheet and receiving the pivot tabs.
	WorkbookPath string
	// MappingSheet is the reference tab name inside the workbook.
	MappingSheet string
	// BatchSize is the bulk path insert batch size.
	BatchSize int
}

// Load reads configuration: defaults first, then config.yaml if present,
// then environment variables like WSR_DATABASE_HOST or WSR_REPORTS_DIR.
func Load(configPath string) (Config, error) {
	cfg := Config{
		Database:     db.DefaultConfig(),
		ReportsDir:   "./processed",
		WorkbookPath: "./wsr-master.xlsx",
		MappingSheet: mapping.DefaultSheetName,
		BatchSize:    upload.DefaultBatchSize,
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()      // allow environment overrides
	v.SetEnvPrefix("WSR") // map env vars like WSR_DATABASE_HOST
	// Dotted keys map to underscore env names (database.host -> WSR_DATABASE_HOST).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("reports.dir")
	v.BindEnv("workbook.path")
	v.BindEnv("workbook.mapping_sheet")
	v.BindEnv("upload.batch_size")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Just log it, use defaults + env
		fmt.Println("No config.yaml found, using defaults and env vars")
	} else {
		fmt.Println("Loaded config.yaml")
	}

	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("reports.dir") {
		cfg.ReportsDir = v.GetString("reports.dir")
	}
	if v.IsSet("workbook.path") {
		cfg.WorkbookPath = v.GetString("workbook.path")
	}
	if v.IsSet("workbook.mapping_sheet") {
		cfg.MappingSheet = v.GetString("workbook.mapping_sheet")
	}
	if v.IsSet("upload.batch_size") {
		if size := v.GetInt("upload.batch_size"); size > 0 {
			cfg.BatchSize = size
		}
	}

	return cfg, nil
}
