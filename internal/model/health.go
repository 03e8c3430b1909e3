package model

// HealthMetric is a single health reading (weight, bmi, ...). Date is stamped
// by the server on creation.
type HealthMetric struct {
	ID    string  `json:"id"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Date  string  `json:"date"`
}

func (m HealthMetric) RecordID() string { return m.ID }

// StepEntry is a logged step count. Date is stamped by the server.
type StepEntry struct {
	ID    string  `json:"id"`
	Steps float64 `json:"steps"`
	Date  string  `json:"date"`
}

func (s StepEntry) RecordID() string { return s.ID }
