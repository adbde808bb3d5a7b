package alerts

import (
	"encoding/json"
	"time"

	"github.com/DROP-ML/MoneyBalance/internal/analytics"
)

// BudgetAlertMessage is the wire form of a budget warning handed to the
// notification collaborator. It carries everything needed to render an
// alert without reading the store.
type BudgetAlertMessage struct {
	Category   string    `json:"category"`
	Level      string    `json:"level"`
	SpentCents int64     `json:"spent_cents"`
	LimitCents int64     `json:"limit_cents"`
	Ratio      float64   `json:"ratio"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewBudgetAlertMessage converts a budget status into its wire form.
func NewBudgetAlertMessage(status analytics.BudgetStatus) *BudgetAlertMessage {
	return &BudgetAlertMessage{
		Category:   status.Category,
		Level:      string(status.Level),
		SpentCents: status.Spent.Cents,
		LimitCents: status.Limit.Cents,
		Ratio:      status.Ratio,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *BudgetAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BudgetAlertMessageFromJSON decodes a message from JSON bytes.
func BudgetAlertMessageFromJSON(data []byte) (*BudgetAlertMessage, error) {
	var msg BudgetAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
