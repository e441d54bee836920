// Package integrationtest provides db helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-petr/account-ledger/internal/accountrepo"
	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/internal/personrepo"
	"github.com/go-petr/account-ledger/pkg/dbpkg"
	"github.com/go-petr/account-ledger/pkg/randompkg"
)

// Flush flushes all db tables without droping.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	var tables string

	const query = `
	SELECT string_agg(table_name, ', ')
	FROM information_schema.tables
	WHERE table_schema='public' AND table_name NOT LIKE 'schema_%';`

	row := db.QueryRow(query)

	err := row.Scan(&tables)
	if err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}

	if _, err := db.Exec(`TRUNCATE TABLE ` + tables + " RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// SeedPerson inserts a random person and returns it.
func SeedPerson(t *testing.T, db *sql.DB) domain.Person {
	t.Helper()

	repo := personrepo.NewRepoPGS(db)

	person, err := repo.Create(context.Background(), domain.CreatePersonParams{
		Name:      randompkg.Name(),
		Document:  randompkg.Document(),
		BirthDate: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seeding person failed. err: %v", err)
	}

	return person
}

// SeedAccount inserts an account with zero balance and the given daily
// withdrawal limit for the person and returns it.
func SeedAccount(t *testing.T, db *sql.DB, personID int32, dailyWithdrawalLimit string) domain.Account {
	t.Helper()

	repo := accountrepo.NewRepoPGS(db)

	account, err := repo.Create(context.Background(), domain.CreateAccountParams{
		PersonID:             personID,
		DailyWithdrawalLimit: dailyWithdrawalLimit,
		AccountType:          randompkg.AccountType(),
	})
	if err != nil {
		t.Fatalf("seeding account failed. err: %v", err)
	}

	return account
}
