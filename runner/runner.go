// Package runner applies the migration chain to a live PostgreSQL database.
//
// Applied revisions are recorded in schema_revisions, activity in
// migration_logs. Each migration's statements and its success record commit
// in one transaction, so the recorded state always matches what was actually
// applied. Runs are assumed to be exclusive; nothing here guards against two
// concurrent runners.
package runner

import (
	"context"
	"fmt"
	"os/user"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Khrischatyy/fieldhire-db/database"
	"github.com/Khrischatyy/fieldhire-db/migration"
	"github.com/Khrischatyy/fieldhire-db/migrations"
)

// Record is one row of the schema_revisions tracking table.
type Record struct {
	ID            int
	Revision      string
	Label         string
	AppliedAt     time.Time
	ExecutionTime time.Duration
	ExecutedBy    string
	Status        string
	ErrorMessage  string
	Checksum      string
}

// LogEntry is one row of the migration_logs activity table.
type LogEntry struct {
	ID        int
	Timestamp time.Time
	Level     string
	Message   string
	User      string
	Details   string
	Revision  string
}

func getConn() (*pgx.Conn, context.Context, error) {
	ctx := context.Background()
	conn, err := database.Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get connection: %v", err)
	}
	return conn, ctx, nil
}

func ensureRevisionTables(conn *pgx.Conn, ctx context.Context) error {
	_, err := conn.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_revisions (
		id SERIAL PRIMARY KEY,
		revision TEXT NOT NULL UNIQUE,
		label TEXT,
		applied_at TIMESTAMP DEFAULT now(),
		execution_time INTERVAL,
		executed_by TEXT,
		status TEXT DEFAULT 'success',
		error_message TEXT,
		checksum TEXT
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_revisions table: %v", err)
	}

	_, err = conn.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS migration_logs (
		id SERIAL PRIMARY KEY,
		timestamp TIMESTAMP DEFAULT now(),
		level TEXT NOT NULL,
		message TEXT NOT NULL,
		user_name TEXT,
		details TEXT,
		revision TEXT
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to create migration_logs table: %v", err)
	}

	return nil
}

func currentUser() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}

func logActivity(conn *pgx.Conn, ctx context.Context, level, message, revision, details string) {
	// Best effort: a failed activity log never aborts the run itself.
	_, _ = conn.Exec(ctx, `
		INSERT INTO migration_logs (level, message, user_name, revision, details)
		VALUES ($1, $2, $3, $4, $5)
	`, level, message, currentUser(), revision, details)
}

func appliedRevisions(conn *pgx.Conn, ctx context.Context) (map[string]bool, error) {
	rows, err := conn.Query(ctx, `SELECT revision FROM schema_revisions WHERE status = 'success';`)
	if err != nil {
		return nil, fmt.Errorf("query applied revisions: %v", err)
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var rev string
		if err := rows.Scan(&rev); err != nil {
			return nil, fmt.Errorf("scan revision: %v", err)
		}
		applied[rev] = true
	}
	return applied, rows.Err()
}

func failedRevisions(conn *pgx.Conn, ctx context.Context) ([]Record, error) {
	rows, err := conn.Query(ctx, `SELECT revision, error_message FROM schema_revisions WHERE status = 'failed';`)
	if err != nil {
		return nil, fmt.Errorf("query failed revisions: %v", err)
	}
	defer rows.Close()

	var failed []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Revision, &r.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan failed revision: %v", err)
		}
		failed = append(failed, r)
	}
	return failed, rows.Err()
}

func applyMigration(conn *pgx.Conn, ctx context.Context, m *migration.Migration) error {
	startTime := time.Now()

	stmts, err := m.UpSQL()
	if err != nil {
		return fmt.Errorf("render %s: %v", m.Revision, err)
	}
	checksum, err := migration.Checksum(m)
	if err != nil {
		return fmt.Errorf("checksum %s: %v", m.Revision, err)
	}

	logActivity(conn, ctx, "INFO", fmt.Sprintf("Applying %s (%s)", m.Revision, m.Label), m.Revision, "")

	// Statements and the success record commit together.
	execErr := func() error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin: %v", err)
		}
		defer tx.Rollback(ctx)

		for _, stmt := range stmts {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("exec %q: %v", firstLine(stmt), err)
			}
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO schema_revisions (revision, label, execution_time, executed_by, status, checksum)
			VALUES ($1, $2, $3, $4, 'success', $5)
		`, m.Revision, m.Label, time.Since(startTime), currentUser(), checksum)
		if err != nil {
			return fmt.Errorf("record revision: %v", err)
		}

		return tx.Commit(ctx)
	}()

	if execErr != nil {
		logActivity(conn, ctx, "ERROR", fmt.Sprintf("Migration failed: %s", m.Revision), m.Revision, execErr.Error())
		_, insertErr := conn.Exec(ctx, `
			INSERT INTO schema_revisions (revision, label, execution_time, executed_by, status, error_message, checksum)
			VALUES ($1, $2, $3, $4, 'failed', $5, $6)
		`, m.Revision, m.Label, time.Since(startTime), currentUser(), execErr.Error(), checksum)
		if insertErr != nil {
			return fmt.Errorf("recording failed revision %s: %v", m.Revision, insertErr)
		}
		return fmt.Errorf("applying %s: %v", m.Revision, execErr)
	}

	logActivity(conn, ctx, "SUCCESS", fmt.Sprintf("Applied %s", m.Revision), m.Revision,
		fmt.Sprintf("Execution time: %v", time.Since(startTime)))
	return nil
}

func rollbackMigration(conn *pgx.Conn, ctx context.Context, m *migration.Migration) error {
	startTime := time.Now()

	stmts, err := m.DownSQL()
	if err != nil {
		return fmt.Errorf("render %s: %v", m.Revision, err)
	}

	logActivity(conn, ctx, "INFO", fmt.Sprintf("Rolling back %s (%s)", m.Revision, m.Label), m.Revision, "")

	execErr := func() error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin: %v", err)
		}
		defer tx.Rollback(ctx)

		for _, stmt := range stmts {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("exec %q: %v", firstLine(stmt), err)
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM schema_revisions WHERE revision = $1;`, m.Revision); err != nil {
			return fmt.Errorf("remove revision record: %v", err)
		}

		return tx.Commit(ctx)
	}()

	if execErr != nil {
		logActivity(conn, ctx, "ERROR", fmt.Sprintf("Rollback failed: %s", m.Revision), m.Revision, execErr.Error())
		return fmt.Errorf("rolling back %s: %v", m.Revision, execErr)
	}

	logActivity(conn, ctx, "SUCCESS", fmt.Sprintf("Rolled back %s", m.Revision), m.Revision,
		fmt.Sprintf("Execution time: %v", time.Since(startTime)))
	return nil
}

// Upgrade applies all pending migrations up to target, or to the chain head
// when target is empty.
func Upgrade(target string) error {
	chain, err := migrations.Chain()
	if err != nil {
		return fmt.Errorf("invalid migration chain: %v", err)
	}

	conn, ctx, err := getConn()
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if err := ensureRevisionTables(conn, ctx); err != nil {
		return fmt.Errorf("ensure revision tables: %v", err)
	}

	failed, err := failedRevisions(conn, ctx)
	if err != nil {
		return fmt.Errorf("check failed revisions: %v", err)
	}
	if len(failed) > 0 {
		fmt.Println("❌ Found failed migrations that need to be resolved:")
		for _, r := range failed {
			fmt.Printf("   - %s: %s\n", r.Revision, r.ErrorMessage)
		}
		fmt.Println("💡 Remove the failed rows from schema_revisions once resolved, then retry.")
		return fmt.Errorf("failed migrations detected")
	}

	applied, err := appliedRevisions(conn, ctx)
	if err != nil {
		return err
	}

	pending, err := chain.Pending(applied, target)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("✅ No pending migrations.")
		return nil
	}

	fmt.Printf("Applying %d migration(s)...\n", len(pending))
	for _, m := range pending {
		fmt.Printf("Applying: %s (%s)\n", m.Revision, m.Label)
		if err := applyMigration(conn, ctx, m); err != nil {
			return err
		}
	}

	fmt.Println("✅ All migrations applied.")
	return nil
}

// Downgrade rolls back the most recent migrations, newest first.
func Downgrade(steps int) error {
	chain, err := migrations.Chain()
	if err != nil {
		return fmt.Errorf("invalid migration chain: %v", err)
	}

	conn, ctx, err := getConn()
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if err := ensureRevisionTables(conn, ctx); err != nil {
		return fmt.Errorf("ensure revision tables: %v", err)
	}

	applied, err := appliedRevisions(conn, ctx)
	if err != nil {
		return err
	}

	suffix, err := chain.AppliedSuffix(applied)
	if err != nil {
		return err
	}
	if len(suffix) == 0 {
		fmt.Println("✅ No migrations to rollback.")
		return nil
	}

	if steps > len(suffix) {
		steps = len(suffix)
		fmt.Printf("⚠️  Only %d migrations applied, rolling back all.\n", len(suffix))
	}

	fmt.Printf("Rolling back %d migration(s)...\n", steps)
	for _, m := range suffix[:steps] {
		fmt.Printf("Rolling back: %s (%s)\n", m.Revision, m.Label)
		if err := rollbackMigration(conn, ctx, m); err != nil {
			return err
		}
	}

	fmt.Println("✅ Rollback completed.")
	return nil
}

// DowngradeTo rolls back until the given revision is the newest applied one.
func DowngradeTo(target string) error {
	chain, err := migrations.Chain()
	if err != nil {
		return fmt.Errorf("invalid migration chain: %v", err)
	}
	if chain.Get(target) == nil {
		return fmt.Errorf("unknown revision %s", target)
	}

	conn, ctx, err := getConn()
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if err := ensureRevisionTables(conn, ctx); err != nil {
		return fmt.Errorf("ensure revision tables: %v", err)
	}

	applied, err := appliedRevisions(conn, ctx)
	if err != nil {
		return err
	}

	suffix, err := chain.AppliedSuffix(applied)
	if err != nil {
		return err
	}

	var toRollback []*migration.Migration
	for _, m := range suffix {
		if m.Revision == target {
			break
		}
		toRollback = append(toRollback, m)
	}
	if len(toRollback) == len(suffix) && !applied[target] {
		return fmt.Errorf("revision %s is not applied", target)
	}
	if len(toRollback) == 0 {
		fmt.Println("✅ Already at the requested revision.")
		return nil
	}

	fmt.Printf("Rolling back %d migration(s) to %s...\n", len(toRollback), target)
	for _, m := range toRollback {
		fmt.Printf("Rolling back: %s (%s)\n", m.Revision, m.Label)
		if err := rollbackMigration(conn, ctx, m); err != nil {
			return err
		}
	}

	fmt.Println("✅ Rollback completed.")
	return nil
}

// Status reports applied and pending revisions plus any failed records.
func Status() (applied []string, pending []string, failed []Record, err error) {
	chain, err := migrations.Chain()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid migration chain: %v", err)
	}

	conn, ctx, err := getConn()
	if err != nil {
		return nil, nil, nil, err
	}
	defer conn.Close(ctx)

	if err := ensureRevisionTables(conn, ctx); err != nil {
		return nil, nil, nil, err
	}

	appliedMap, err := appliedRevisions(conn, ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	for _, m := range chain.Ordered() {
		if appliedMap[m.Revision] {
			applied = append(applied, m.Revision)
		} else {
			pending = append(pending, m.Revision)
		}
	}

	failed, err = failedRevisions(conn, ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	return applied, pending, failed, nil
}

// Current returns the newest applied revision, or "" when nothing is
// applied yet.
func Current() (string, error) {
	chain, err := migrations.Chain()
	if err != nil {
		return "", fmt.Errorf("invalid migration chain: %v", err)
	}

	conn, ctx, err := getConn()
	if err != nil {
		return "", err
	}
	defer conn.Close(ctx)

	if err := ensureRevisionTables(conn, ctx); err != nil {
		return "", err
	}

	applied, err := appliedRevisions(conn, ctx)
	if err != nil {
		return "", err
	}

	suffix, err := chain.AppliedSuffix(applied)
	if err != nil {
		return "", err
	}
	if len(suffix) == 0 {
		return "", nil
	}
	return suffix[0].Revision, nil
}

// Preview prints the SQL of all pending migrations without applying them.
func Preview(target string) error {
	chain, err := migrations.Chain()
	if err != nil {
		return fmt.Errorf("invalid migration chain: %v", err)
	}

	conn, ctx, err := getConn()
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if err := ensureRevisionTables(conn, ctx); err != nil {
		return fmt.Errorf("ensure revision tables: %v", err)
	}

	applied, err := appliedRevisions(conn, ctx)
	if err != nil {
		return err
	}

	pending, err := chain.Pending(applied, target)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("✅ No pending migrations.")
		return nil
	}

	fmt.Println("\n================ DRY RUN: Migration Preview ================")
	for _, m := range pending {
		fmt.Printf("\n-- %s: %s --\n", m.Revision, m.Label)
		upSQL, err := m.UpSQL()
		if err != nil {
			return fmt.Errorf("render %s: %v", m.Revision, err)
		}
		downSQL, err := m.DownSQL()
		if err != nil {
			return fmt.Errorf("render %s: %v", m.Revision, err)
		}
		fmt.Println("-- Upgrade SQL --")
		fmt.Println(strings.Join(upSQL, "\n"))
		fmt.Println("\n-- Downgrade SQL --")
		fmt.Println(strings.Join(downSQL, "\n"))
	}
	fmt.Println("============================================================")
	fmt.Println("(Dry run only. No migrations were applied.)")
	return nil
}

// History retrieves revision records with optional limit and revision filter.
func History(conn *pgx.Conn, limit int, revisionFilter string) ([]Record, error) {
	ctx := context.Background()

	query := `
		SELECT id, revision, COALESCE(label, ''), applied_at, execution_time, executed_by,
		       status, COALESCE(error_message, ''), COALESCE(checksum, '')
		FROM schema_revisions
	`

	var args []interface{}
	argCount := 0

	if revisionFilter != "" {
		argCount++
		query += fmt.Sprintf(" WHERE revision ILIKE $%d", argCount)
		args = append(args, "%"+revisionFilter+"%")
	}

	query += " ORDER BY applied_at DESC"

	if limit > 0 {
		argCount++
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, limit)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query revision history: %v", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var executionTime *time.Duration

		err := rows.Scan(&r.ID, &r.Revision, &r.Label, &r.AppliedAt, &executionTime,
			&r.ExecutedBy, &r.Status, &r.ErrorMessage, &r.Checksum)
		if err != nil {
			return nil, fmt.Errorf("scan revision record: %v", err)
		}
		if executionTime != nil {
			r.ExecutionTime = *executionTime
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// Logs retrieves migration activity logs, newest first.
func Logs(conn *pgx.Conn, limit int) ([]LogEntry, error) {
	ctx := context.Background()

	query := `
		SELECT id, timestamp, level, message, COALESCE(user_name, ''), COALESCE(details, ''), COALESCE(revision, '')
		FROM migration_logs
		ORDER BY timestamp DESC
	`

	var args []interface{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query migration logs: %v", err)
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Level, &e.Message, &e.User, &e.Details, &e.Revision); err != nil {
			return nil, fmt.Errorf("scan log entry: %v", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i] + " ..."
	}
	return stmt
}
