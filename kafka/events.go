package kafka

import "time"

// StockOutRecordedEvent announces a completed stock-out transaction
type StockOutRecordedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	HistoryID uint      `json:"history_id"`
	ItemCount int       `json:"item_count"`
	TotalCost float64   `json:"total_cost"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockOutRecorded = "stockout.recorded"
)

// Kafka topics
const (
	TopicStockOutRecorded = "stock-out-recorded"
)
