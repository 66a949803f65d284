package service

import (
	"context"
	"database/sql"
	"fmt"

	"intellisql/models"
)

// DefaultStudents is the sample data written by the seed command.
var DefaultStudents = []models.Student{
	{Name: "Krish", Class: "Data Science", Section: "A", Marks: 90},
	{Name: "Sudhanshu", Class: "Data Science", Section: "B", Marks: 100},
	{Name: "Darius", Class: "Data Science", Section: "A", Marks: 86},
	{Name: "Vikash", Class: "DEVOPS", Section: "A", Marks: 50},
	{Name: "Dipesh", Class: "DEVOPS", Section: "A", Marks: 35},
}

const createStudentTable = `CREATE TABLE IF NOT EXISTS STUDENT (
	NAME TEXT,
	CLASS TEXT,
	SECTION TEXT,
	MARKS INTEGER
)`

// SeedStudents creates the STUDENT table in the file at dbPath if needed
// and replaces its rows with students. It is the only write path in the
// module and is used by the seed command, never by the query pipeline.
func SeedStudents(ctx context.Context, dbPath string, students []models.Student) error {
	db, err := sql.Open("sqlite3", buildDSN(dbPath, false))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createStudentTable); err != nil {
		return fmt.Errorf("failed to create STUDENT table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM STUDENT"); err != nil {
		return fmt.Errorf("failed to clear STUDENT table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO STUDENT (NAME, CLASS, SECTION, MARKS) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range students {
		if _, err := stmt.ExecContext(ctx, s.Name, s.Class, s.Section, s.Marks); err != nil {
			return fmt.Errorf("failed to insert %s: %w", s.Name, err)
		}
	}

	return tx.Commit()
}
