package output

import "strings"

// LogLimit is the number of lines the log panel keeps.
const LogLimit = 16

// ANSI escape sequences used by the terminal.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[91m"
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiBlue   = "\033[94m"

	// ClearScreen clears the terminal and homes the cursor.
	ClearScreen = "\033[2J\033[H"
)

// Red colours s as an error.
func Red(s string) string { return ansiRed + s + ansiReset }

// Green colours s as an announcement.
func Green(s string) string { return ansiGreen + s + ansiReset }

// Yellow colours s as a notice.
func Yellow(s string) string { return ansiYellow + s + ansiReset }

// Blue colours s as a move.
func Blue(s string) string { return ansiBlue + s + ansiReset }

// LogPanel keeps the most recent log lines shown beside the board.
type LogPanel struct {
	lines []string
	limit int
}

// NewLogPanel creates a panel that keeps LogLimit lines.
func NewLogPanel() *LogPanel {
	return &LogPanel{limit: LogLimit}
}

// Add appends msg, one panel line per line of msg, dropping the oldest
// lines beyond the limit.
func (l *LogPanel) Add(msg string) {
	l.lines = append(l.lines, strings.Split(msg, "\n")...)
	if n := len(l.lines); n > l.limit {
		l.lines = append([]string(nil), l.lines[n-l.limit:]...)
	}
}

// Write implements io.Writer so the panel can serve as a log destination.
// A trailing newline does not produce an empty line.
func (l *LogPanel) Write(p []byte) (int, error) {
	l.Add(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// Lines returns the lines currently held, oldest first.
func (l *LogPanel) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Merge appends log lines to the right of the board text, aligned so the
// newest log line sits beside the last board line.
func Merge(boardText string, logLines []string) string {
	out := strings.Split(boardText, "\n")
	n := len(out)
	for i := 0; i < n && i < len(logLines); i++ {
		out[n-1-i] += "\t" + logLines[len(logLines)-1-i]
	}
	return strings.Join(out, "\n")
}
