package ledger

// Kind classifies a journal entry.
type Kind string

const (
	KindOpen   Kind = "open"   // initial balance loaded from storage
	KindStake  Kind = "stake"  // money moved from the balance onto the table
	KindPayout Kind = "payout" // settlement credit, may be zero
	KindRefund Kind = "refund" // staked money returned without settlement
)

// Entry is a single movement in the ledger journal.
type Entry struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	Kind      Kind   `json:"kind"`
	Amount    int    `json:"amount"`
	Balance   int    `json:"balance"` // balance after the movement
	Staked    int    `json:"staked"`  // staked total after the movement
	Reason    string `json:"reason,omitempty"`
}
