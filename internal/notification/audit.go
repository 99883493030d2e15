package notification

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/device"
)

// AuditEntry is a single audit log entry.
type AuditEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Event     string         `json:"event"`
	Device    *device.Record `json:"device,omitempty"`
	Details   string         `json:"details,omitempty"`
}

// Auditor writes an append-only audit trail.
type Auditor struct {
	mu   sync.Mutex
	file *os.File
}

// NewAuditor creates a new auditor.
func NewAuditor(filePath string) (*Auditor, error) {
	if filePath == "" {
		return &Auditor{}, nil
	}

	f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening audit file: %w", err)
	}

	return &Auditor{file: f}, nil
}

// Close closes the audit file.
func (a *Auditor) Close() {
	if a.file != nil {
		a.file.Close()
	}
}

// LogDeviceAdded records a device accepted into the registry.
func (a *Auditor) LogDeviceAdded(rec device.Record) {
	a.log(AuditEntry{
		Timestamp: time.Now(),
		Event:     "device_added",
		Device:    &rec,
	})
}

// LogCalcFault records a computation fault that ended the session early.
func (a *Auditor) LogCalcFault(err error) {
	a.log(AuditEntry{
		Timestamp: time.Now(),
		Event:     "calc_fault",
		Details:   err.Error(),
	})
}

// LogSessionEnd records the end of an interactive session.
func (a *Auditor) LogSessionEnd(devices int, totalKWh, totalCost float64) {
	a.log(AuditEntry{
		Timestamp: time.Now(),
		Event:     "session_end",
		Details:   fmt.Sprintf("devices=%d total_kwh=%.2f total_cost=%.2f", devices, totalKWh, totalCost),
	})
}

func (a *Auditor) log(entry AuditEntry) {
	if a.file == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	a.file.Write(data)
	a.file.Write([]byte("\n"))
}
