package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT,
		full_name TEXT,
		password_hash TEXT,
		role TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProfileTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tutor_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		verified BOOLEAN,
		headline TEXT,
		bio TEXT,
		subjects TEXT,
		city TEXT,
		teaching_mode TEXT,
		hourly_rate INTEGER,
		experience_years INTEGER,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE institution_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		verified BOOLEAN,
		institution_name TEXT NOT NULL,
		institution_type TEXT,
		established_year INTEGER,
		website TEXT,
		city TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE student_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		grade_level TEXT,
		school TEXT,
		city TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createVerificationRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_requests (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		user_type TEXT NOT NULL,
		status TEXT NOT NULL,
		verified_by TEXT,
		verified_at DATETIME,
		rejection_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCourseTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE courses (
		id TEXT PRIMARY KEY,
		tutor_id TEXT NOT NULL,
		title TEXT NOT NULL,
		subject TEXT NOT NULL,
		description TEXT,
		level TEXT,
		price INTEGER,
		duration_weeks INTEGER,
		is_active BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE enrollments (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		student_id TEXT NOT NULL,
		status TEXT NOT NULL,
		enrolled_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createRequirementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE requirements (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		subject TEXT NOT NULL,
		description TEXT,
		city TEXT,
		preferred_mode TEXT,
		budget INTEGER,
		status TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createMessageTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE conversations (
		id TEXT PRIMARY KEY,
		tutor_id TEXT NOT NULL,
		student_id TEXT NOT NULL,
		last_message_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL,
		sender_id TEXT NOT NULL,
		body TEXT NOT NULL,
		read_at DATETIME,
		created_at DATETIME
	);`)
}

func createScheduleSlotTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE schedule_slots (
		id TEXT PRIMARY KEY,
		tutor_id TEXT NOT NULL,
		course_id TEXT,
		student_id TEXT,
		starts_at DATETIME NOT NULL,
		ends_at DATETIME NOT NULL,
		status TEXT NOT NULL,
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
