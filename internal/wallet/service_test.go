package wallet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ermolnik/kopilka/internal/wallet"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    wallet.CreateParams
		setupMock func(m *wallet.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: wallet.CreateParams{
				RelevanceTime: 1700000000000,
				DateCreated:   1690000000000,
				Currency: wallet.Currency{
					ID:       1,
					Title:    "Euro",
					Symbol:   "€",
					CharCode: "EUR",
				},
				Accounts: []wallet.Account{
					{ID: "acc1", Title: "Daily", Type: wallet.AccountTypeBudget},
				},
			},
			setupMock: func(m *wallet.MockRepository) {
				m.EXPECT().
					CreateWallet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w *wallet.Wallet) error {
						w.ID = 1
						return nil
					})
			},
		},
		{
			name:   "RepoError",
			params: wallet.CreateParams{},
			setupMock: func(m *wallet.MockRepository) {
				m.EXPECT().
					CreateWallet(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := wallet.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := wallet.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotZero(t, got.ID)
			assert.Equal(t, tt.params.Currency, got.Currency)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := wallet.NewMockRepository(ctrl)
	repo.EXPECT().
		GetWallet(gomock.Any(), int64(11)).
		Return(&wallet.Wallet{ID: 11, Accounts: []wallet.Account{}}, nil)

	svc := wallet.NewService(repo)

	got, err := svc.Get(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	// accounts are wire-model-only; hydration yields an empty list
	assert.NotNil(t, got.Accounts)
	assert.Empty(t, got.Accounts)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := wallet.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateWallet(gomock.Any(), int64(99), gomock.Any()).
		Return(false, nil)

	svc := wallet.NewService(repo)

	got, err := svc.Update(context.Background(), 99, wallet.CreateParams{})
	assert.NoError(t, err)
	assert.False(t, got)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := wallet.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteWallet(gomock.Any(), int64(999)).
		Return(false, nil)

	svc := wallet.NewService(repo)

	got, err := svc.Delete(context.Background(), 999)
	assert.NoError(t, err)
	assert.False(t, got)
}
