package transactionservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/pkg/clockpkg"
	"github.com/go-petr/account-ledger/pkg/errorspkg"
	"github.com/go-petr/account-ledger/pkg/randompkg"
)

var testDay = time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC)

func testAccount(id int32, balance string) domain.Account {
	return domain.Account{
		ID:                   id,
		PersonID:             randompkg.IntBetween(1, 100),
		Balance:              balance,
		DailyWithdrawalLimit: "300",
		AccountType:          randompkg.AccountType(),
		ActiveFlag:           true,
		CreatedAt:            time.Now().Truncate(time.Second).UTC(),
	}
}

func TestDeposit(t *testing.T) {
	account := testAccount(1, "150")

	testCases := []struct {
		name          string
		accountID     int32
		amount        string
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Account, err error)
	}{
		{
			name:      "InvalidAmount",
			accountID: account.ID,
			amount:    "!@#$",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			},
		},
		{
			name:      "NegativeAmount",
			accountID: account.ID,
			amount:    "-100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrNegativeAmount.Error())
			},
		},
		{
			name:      "ZeroAmount",
			accountID: account.ID,
			amount:    "0",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrNegativeAmount.Error())
			},
		},
		{
			name:      "AccountNotFound",
			accountID: account.ID,
			amount:    "100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Deposit(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("100")).
					Times(1).
					Return(domain.Account{}, domain.Transaction{}, domain.ErrAccountNotFound)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrAccountNotFound.Error())
			},
		},
		{
			name:      "AccountBlocked",
			accountID: account.ID,
			amount:    "100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Deposit(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("100")).
					Times(1).
					Return(domain.Account{}, domain.Transaction{}, domain.ErrAccountBlocked)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrAccountBlocked.Error())
			},
		},
		{
			name:      "InternalError",
			accountID: account.ID,
			amount:    "100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Deposit(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("100")).
					Times(1).
					Return(domain.Account{}, domain.Transaction{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name:      "OK",
			accountID: account.ID,
			amount:    "100",
			buildStubs: func(repo *MockRepo) {
				credited := account
				credited.Balance = "250"

				repo.EXPECT().Deposit(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("100")).
					Times(1).
					Return(credited, domain.Transaction{AccountID: account.ID, Value: "100"}, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, "250", res.Balance)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo, clockpkg.Fixed(testDay))

			res, err := service.Deposit(context.Background(), tc.accountID, tc.amount)
			tc.checkResponse(res, err)
		})
	}
}

func TestWithdraw(t *testing.T) {
	account := testAccount(1, "150")

	testCases := []struct {
		name          string
		accountID     int32
		amount        string
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Account, err error)
	}{
		{
			name:      "InvalidAmount",
			accountID: account.ID,
			amount:    "50!",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Withdraw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			},
		},
		{
			name:      "NegativeAmount",
			accountID: account.ID,
			amount:    "-50",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Withdraw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrNegativeAmount.Error())
			},
		},
		{
			name:      "LimitExceeded",
			accountID: account.ID,
			amount:    "260",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Withdraw(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("260"), gomock.Eq(testDay)).
					Times(1).
					Return(domain.Account{}, domain.Transaction{}, domain.ErrWithdrawalLimitExceeded)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrWithdrawalLimitExceeded.Error())
			},
		},
		{
			name:      "AccountBlocked",
			accountID: account.ID,
			amount:    "50",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Withdraw(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("50"), gomock.Eq(testDay)).
					Times(1).
					Return(domain.Account{}, domain.Transaction{}, domain.ErrAccountBlocked)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrAccountBlocked.Error())
			},
		},
		{
			name:      "OK",
			accountID: account.ID,
			amount:    "50",
			buildStubs: func(repo *MockRepo) {
				debited := account
				debited.Balance = "100"

				repo.EXPECT().Withdraw(gomock.Any(), gomock.Eq(account.ID), gomock.Eq("50"), gomock.Eq(testDay)).
					Times(1).
					Return(debited, domain.Transaction{AccountID: account.ID, Value: "-50"}, nil)
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, "100", res.Balance)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo, clockpkg.Fixed(testDay))

			res, err := service.Withdraw(context.Background(), tc.accountID, tc.amount)
			tc.checkResponse(res, err)
		})
	}
}

func TestList(t *testing.T) {
	account := testAccount(1, "100")

	transactions := []domain.Transaction{
		{ID: 2, AccountID: account.ID, Value: "-50", TransactionDate: testDay},
		{ID: 1, AccountID: account.ID, Value: "100", TransactionDate: testDay.Add(-time.Hour)},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)

	wantArg := domain.ListTransactionsParams{
		AccountID: account.ID,
		Limit:     10,
		Offset:    10,
	}

	repo.EXPECT().List(gomock.Any(), gomock.Eq(wantArg)).
		Times(1).
		Return(transactions, nil)

	service := New(repo, clockpkg.Fixed(testDay))

	got, err := service.List(context.Background(), account.ID, 10, 2)
	require.NoError(t, err)
	require.Equal(t, transactions, got)
}
