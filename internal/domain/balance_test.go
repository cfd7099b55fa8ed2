package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", value, err)
	}
	return d
}

func TestSumBalance_SignedSum(t *testing.T) {
	userID := uuid.New()

	statements := []Statement{
		{UserID: userID, Type: OperationDeposit, Amount: dec(t, "500")},
		{UserID: userID, Type: OperationWithdraw, Amount: dec(t, "120.50")},
		{UserID: userID, Type: OperationDeposit, Amount: dec(t, "0.50")},
	}

	got := SumBalance(userID, statements)
	if !got.Equal(dec(t, "380")) {
		t.Errorf("expected balance 380, got %s", got)
	}
}

func TestSumBalance_EmptyHistory(t *testing.T) {
	got := SumBalance(uuid.New(), nil)
	if !got.IsZero() {
		t.Errorf("expected zero balance, got %s", got)
	}
}

func TestSumBalance_TransferRoles(t *testing.T) {
	sender := uuid.New()
	recipient := uuid.New()

	statements := []Statement{
		{UserID: sender, Type: OperationDeposit, Amount: dec(t, "500")},
		{UserID: recipient, SenderID: &sender, Type: OperationTransfer, Amount: dec(t, "200")},
	}

	if got := SumBalance(sender, statements); !got.Equal(dec(t, "300")) {
		t.Errorf("expected sender balance 300, got %s", got)
	}
	if got := SumBalance(recipient, statements); !got.Equal(dec(t, "200")) {
		t.Errorf("expected recipient balance 200, got %s", got)
	}
}

func TestSumBalance_SelfTransferNetsToZero(t *testing.T) {
	userID := uuid.New()

	statements := []Statement{
		{UserID: userID, Type: OperationDeposit, Amount: dec(t, "100")},
		{UserID: userID, SenderID: &userID, Type: OperationTransfer, Amount: dec(t, "40")},
	}

	if got := SumBalance(userID, statements); !got.Equal(dec(t, "100")) {
		t.Errorf("expected balance 100 after self-transfer, got %s", got)
	}
}

func TestSumBalance_IgnoresOtherAccounts(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()

	statements := []Statement{
		{UserID: other, Type: OperationDeposit, Amount: dec(t, "999")},
		{UserID: userID, Type: OperationDeposit, Amount: dec(t, "10")},
	}

	if got := SumBalance(userID, statements); !got.Equal(dec(t, "10")) {
		t.Errorf("expected balance 10, got %s", got)
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "positive", amount: "0.01", wantErr: false},
		{name: "large", amount: "100000", wantErr: false},
		{name: "zero", amount: "0", wantErr: true},
		{name: "negative", amount: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(dec(t, tt.amount))
			if tt.wantErr && err != ErrInvalidAmount {
				t.Errorf("expected ErrInvalidAmount, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
