package notification

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/thalesmenezes286/consumo-energia-pc/internal/device"
)

// Color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Notifier handles terminal output and file logging.
type Notifier struct {
	mu           sync.Mutex
	logFile      *os.File
	logger       *log.Logger
	colorEnabled bool
	verbose      bool
}

// NewNotifier creates a new notifier.
func NewNotifier(logFilePath string, colorEnabled, verbose bool) (*Notifier, error) {
	n := &Notifier{
		colorEnabled: colorEnabled,
		verbose:      verbose,
	}

	if logFilePath != "" {
		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		n.logFile = f
		n.logger = log.New(f, "", log.LstdFlags)
	}

	return n, nil
}

// Close closes the log file.
func (n *Notifier) Close() {
	if n.logFile != nil {
		n.logFile.Close()
	}
}

// Info logs an informational message.
func (n *Notifier) Info(msg string) {
	n.emit(colorGreen, "INFO", msg)
}

// Warn logs a warning message.
func (n *Notifier) Warn(msg string) {
	n.emit(colorYellow, "WARN", msg)
}

// Error logs an error message.
func (n *Notifier) Error(msg string) {
	n.emit(colorRed, "ERROR", msg)
}

// Debug logs a debug message (only if verbose).
func (n *Notifier) Debug(msg string) {
	if !n.verbose {
		return
	}
	n.emit(colorCyan, "DEBUG", msg)
}

// DeviceAdded logs a device record accepted into the session registry.
// Console output stays quiet unless verbose; the log file always gets it.
func (n *Notifier) DeviceAdded(rec device.Record) {
	n.mu.Lock()
	defer n.mu.Unlock()

	line := fmt.Sprintf("device added: %s %dW %dh/day %dd/month -> %.2f kWh, %.2f/month",
		rec.Name, rec.PowerWatts, rec.HoursPerDay, rec.DaysPerMonth, rec.MonthlyKWh, rec.MonthlyCost)

	if n.verbose {
		if n.colorEnabled {
			fmt.Printf("%s[INFO]%s %s\n", colorGreen, colorReset, line)
		} else {
			fmt.Printf("[INFO] %s\n", line)
		}
	}
	if n.logger != nil {
		n.logger.Printf("[INFO] %s", line)
	}
}

func (n *Notifier) emit(color, level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.colorEnabled {
		fmt.Printf("%s[%s]%s %s\n", color, level, colorReset, msg)
	} else {
		fmt.Printf("[%s] %s\n", level, msg)
	}

	if n.logger != nil {
		n.logger.Printf("[%s] %s", level, msg)
	}
}

// FormatTimestamp formats a time for display.
func FormatTimestamp(t time.Time) string {
	return t.Format("15:04:05")
}
