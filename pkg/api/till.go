package api

// CartLine is one cart row. Amounts are in minor units; the *Text fields are
// formatted for display.
type CartLine struct {
	ProductID     int64  `json:"productId"`
	Name          string `json:"name"`
	UnitPrice     int64  `json:"unitPrice"`
	UnitPriceText string `json:"unitPriceText"`
	Quantity      int    `json:"quantity"`
	LineTotal     int64  `json:"lineTotal"`
	LineTotalText string `json:"lineTotalText"`
	Category      string `json:"category"`
}

type Receipt struct {
	Method     string `json:"method"`
	Subtotal   int64  `json:"subtotal"`
	Tax        int64  `json:"tax"`
	GrandTotal int64  `json:"grandTotal"`
	Tendered   int64  `json:"tendered"`
	Change     int64  `json:"change"`
	SettledAt  int64  `json:"settledAt"`
}

type CheckoutView struct {
	SessionID      string   `json:"sessionId,omitempty"`
	State          string   `json:"state"`
	Method         string   `json:"method"`
	TenderText     string   `json:"tenderText"`
	Tendered       int64    `json:"tendered"`
	Subtotal       int64    `json:"subtotal"`
	SubtotalText   string   `json:"subtotalText"`
	Tax            int64    `json:"tax"`
	TaxText        string   `json:"taxText"`
	GrandTotal     int64    `json:"grandTotal"`
	GrandTotalText string   `json:"grandTotalText"`
	Change         int64    `json:"change"`
	ChangeText     string   `json:"changeText"`
	Shortfall      bool     `json:"shortfall"`
	OutOfRange     bool     `json:"outOfRange,omitempty"`
	CanSubmit      bool     `json:"canSubmit"`
	Processing     bool     `json:"processing"`
	Settled        bool     `json:"settled"`
	Receipt        *Receipt `json:"receipt,omitempty"`
	Failure        string   `json:"failure,omitempty"`
}

type Till struct {
	ID           string        `json:"id"`
	CashierID    string        `json:"cashierId"`
	OpenedAt     int64         `json:"openedAt"`
	Lines        []*CartLine   `json:"lines"`
	Subtotal     int64         `json:"subtotal"`
	SubtotalText string        `json:"subtotalText"`
	ItemCount    int           `json:"itemCount"`
	Checkout     *CheckoutView `json:"checkout"`
}

// TillResponse is returned by every TillService call that leaves the till
// open.
type TillResponse struct {
	Till *Till `json:"till"`
}

type OpenTillRequest struct{}

type GetTillRequest struct {
	TillID string `json:"tillId"`
}

type CloseTillRequest struct {
	TillID string `json:"tillId"`
}

type CloseTillResponse struct{}

type AddItemRequest struct {
	TillID    string `json:"tillId"`
	ProductID int64  `json:"productId"`
}

type UpdateQuantityRequest struct {
	TillID    string `json:"tillId"`
	ProductID int64  `json:"productId"`
	Delta     int    `json:"delta"`
}

type RemoveItemRequest struct {
	TillID    string `json:"tillId"`
	ProductID int64  `json:"productId"`
}

type ClearCartRequest struct {
	TillID string `json:"tillId"`
}

type OpenCheckoutRequest struct {
	TillID string `json:"tillId"`
}

type SelectPaymentMethodRequest struct {
	TillID string `json:"tillId"`
	Method string `json:"method"`
}

type SetTenderRequest struct {
	TillID string `json:"tillId"`
	Tender string `json:"tender"`
}

type QuickTenderRequest struct {
	TillID string `json:"tillId"`
	// Preset is "exact", "100k" or "200k".
	Preset string `json:"preset"`
}

type SubmitPaymentRequest struct {
	TillID string `json:"tillId"`
	// IdempotencyKey makes retried submissions safe. The Idempotency-Key
	// header is used when empty.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

type CancelCheckoutRequest struct {
	TillID string `json:"tillId"`
}

type RetryPaymentRequest struct {
	TillID string `json:"tillId"`
}
