// yoga-setup provisions a fresh journal database: it applies the schema
// migrations and loads the reference catalogs plus a batch of sample
// classes. The schema step is idempotent; the data step is not, so
// re-running the tool duplicates the seed rows.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/alou/yoga-journal/pkg/config"
	"github.com/alou/yoga-journal/pkg/database"
	"github.com/alou/yoga-journal/pkg/seed"
)

const migrationsPath = "migrations"

func main() {
	fmt.Println("Yoga Journal Setup")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()

	cfg, err := promptConnection()
	if err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Println("\n1. Connecting...")
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		color.Red("✗ could not open connection: %v", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		color.Red("✗ could not reach %s:%d/%s: %v", cfg.Host, cfg.Port, cfg.Database, err)
		os.Exit(1)
	}
	color.Green("  ✓ connected to %s:%d/%s", cfg.Host, cfg.Port, cfg.Database)

	fmt.Println("\n2. Applying schema migrations...")
	if err := database.RunMigrations(db, migrationsPath, zap.NewNop()); err != nil {
		color.Red("✗ migrations failed: %v", err)
		os.Exit(1)
	}
	color.Green("  ✓ schemas %s and %s ready", config.AppSchema, config.AnalyticsSchema)

	data, err := seed.Load()
	if err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}

	fmt.Println("\n3. Inserting reference data...")
	if err := seed.InsertReference(ctx, db, data); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}
	color.Green("  ✓ %d locations inserted", len(data.Locations))
	color.Green("  ✓ %d class types inserted", len(data.ClassTypes))
	color.Green("  ✓ %d themes inserted", len(data.Themes))

	fmt.Println("\n4. Inserting sample classes...")
	if err := seed.InsertSampleClasses(ctx, db, data); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}
	color.Green("  ✓ %d sample classes inserted", len(data.SampleClasses))

	fmt.Println("\n5. Verifying...")
	if err := printSummary(ctx, db); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}

	fmt.Println()
	color.Green("Setup complete.")
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Export PGHOST/PGUSER/PGPASSWORD/PGDATABASE (or write config.yaml)")
	fmt.Println("  2. Run the journal server")
}

// promptConnection collects connection settings interactively. The password
// is read with echo disabled.
func promptConnection() (*config.DatabaseConfig, error) {
	reader := bufio.NewReader(os.Stdin)

	host, err := ask(reader, "Host", "localhost")
	if err != nil {
		return nil, err
	}
	portRaw, err := ask(reader, "Port", "5432")
	if err != nil {
		return nil, err
	}
	port, err := strconv.Atoi(portRaw)
	if err != nil {
		return nil, fmt.Errorf("port must be a number: %q", portRaw)
	}
	user, err := ask(reader, "User", "yoga")
	if err != nil {
		return nil, err
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("could not read password: %w", err)
	}

	dbName, err := ask(reader, "Database", config.DefaultDatabase)
	if err != nil {
		return nil, err
	}

	return &config.DatabaseConfig{
		Host:     host,
		Port:     port,
		User:     user,
		Password: string(password),
		Database: dbName,
		SSLMode:  "disable",
	}, nil
}

func ask(reader *bufio.Reader, label, fallback string) (string, error) {
	fmt.Printf("%s [%s]: ", label, fallback)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", strings.ToLower(label), err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

func printSummary(ctx context.Context, db *sql.DB) error {
	tables := []string{"locations", "class_types", "themes", "classes_taught"}
	for _, table := range tables {
		var count int
		// Table names come from the fixed list above, never from input.
		query := fmt.Sprintf("SELECT COUNT(*) FROM app_data.%s", table)
		if err := db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return fmt.Errorf("failed to count %s: %w", table, err)
		}
		fmt.Printf("  %-16s %d rows\n", table, count)
	}
	return nil
}
