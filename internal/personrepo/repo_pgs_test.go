//go:build integration

package personrepo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/internal/integrationtest"
	"github.com/go-petr/account-ledger/internal/middleware"
	"github.com/go-petr/account-ledger/internal/personrepo"
	"github.com/go-petr/account-ledger/pkg/configpkg"
	"github.com/go-petr/account-ledger/pkg/randompkg"
)

var (
	dbDriver string
	dbSource string
	ctx      context.Context
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	logger := middleware.GetLogger(config)
	ctx = logger.WithContext(context.Background())

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)
	repo := personrepo.NewRepoPGS(db)

	arg := domain.CreatePersonParams{
		Name:      randompkg.Name(),
		Document:  randompkg.Document(),
		BirthDate: time.Date(1985, time.March, 3, 0, 0, 0, 0, time.UTC),
	}

	got, err := repo.Create(ctx, arg)
	require.NoError(t, err)

	require.NotZero(t, got.ID)
	require.NotZero(t, got.CreatedAt)
	require.Equal(t, arg.Name, got.Name)
	require.Equal(t, arg.Document, got.Document)
	require.True(t, arg.BirthDate.Equal(got.BirthDate))

	t.Run("ErrDocumentAlreadyExists", func(t *testing.T) {
		duplicate, err := repo.Create(ctx, arg)
		require.EqualError(t, err, domain.ErrDocumentAlreadyExists.Error())
		require.Empty(t, duplicate)
	})
}

func TestGet(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)
	repo := personrepo.NewRepoPGS(db)

	want := integrationtest.SeedPerson(t, db)

	got, err := repo.Get(ctx, want.ID)
	require.NoError(t, err)

	ignoreBirthDate := cmpopts.IgnoreFields(domain.Person{}, "BirthDate")
	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, ignoreBirthDate, compareCreatedAt); diff != "" {
		t.Errorf("repo.Get(ctx, %v) returned unexpected difference (-want +got):\n%s", want.ID, diff)
	}

	require.True(t, want.BirthDate.Equal(got.BirthDate))

	t.Run("ErrPersonNotFound", func(t *testing.T) {
		missing, err := repo.Get(ctx, 0)
		require.EqualError(t, err, domain.ErrPersonNotFound.Error())
		require.Empty(t, missing)
	})
}
