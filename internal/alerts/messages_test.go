package alerts

import (
	"testing"

	"github.com/DROP-ML/MoneyBalance/internal/analytics"
	"github.com/DROP-ML/MoneyBalance/internal/core"
)

func TestBudgetAlertMessageWire(t *testing.T) {
	status := analytics.BudgetStatus{
		Category: "Food",
		Spent:    core.Money{Cents: 9000},
		Limit:    core.Money{Cents: 10000},
		Ratio:    0.9,
		Level:    analytics.BudgetWarning,
	}

	msg := NewBudgetAlertMessage(status)
	if msg.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	decoded, err := BudgetAlertMessageFromJSON(body)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if decoded.Category != "Food" || decoded.Level != "warning" {
		t.Fatalf("unexpected payload %+v", decoded)
	}
	if decoded.SpentCents != 9000 || decoded.LimitCents != 10000 || decoded.Ratio != 0.9 {
		t.Fatalf("amounts did not survive the wire: %+v", decoded)
	}
}

func TestBudgetAlertMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := BudgetAlertMessageFromJSON([]byte(`{]`)); err == nil {
		t.Fatalf("expected decode error")
	}
}
