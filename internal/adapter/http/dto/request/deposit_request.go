package request

import "encoding/json"

// DepositCreateRequest is the payload for the deposit route.
//
// `mp_payload` is forwarded to Mercado Pago after the amount and reference are
// overwritten from the stored quote. A bare Mercado Pago body is accepted too.
type DepositCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
