package request

import (
	"testing"

	"eventos_api/internal/domain/entities"
)

func TestAffiliateRegistrationRequest_ToInput(t *testing.T) {
	in := AffiliateRegistrationRequest{FullName: "Carlos", PayoutMethod: " Bank_Transfer "}.ToInput()
	if in.PayoutMethod != entities.PayoutBankTransfer {
		t.Fatalf("expected bank_transfer, got %q", in.PayoutMethod)
	}
	if in.FullName != "Carlos" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
