package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Logger handles levelled logging with optional file output
type Logger struct {
	Verbose bool
	writer  io.Writer
	errOut  io.Writer
	color   bool
	mu      sync.Mutex
	fileLog *os.File
}

// New creates a new Logger writing to stdout and stderr
func New(verbose bool) *Logger {
	return NewWithWriter(os.Stdout, os.Stderr, verbose)
}

// NewWithWriter creates a Logger writing regular output to out and errors
// to errOut. Level prefixes are coloured only when out is a terminal.
func NewWithWriter(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{
		Verbose: verbose,
		writer:  out,
		errOut:  errOut,
		color:   isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetFileLog enables logging to a file
func (l *Logger) SetFileLog(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.fileLog = f
	return nil
}

// Close closes the log file if open
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		err := l.fileLog.Close()
		l.fileLog = nil
		return err
	}
	return nil
}

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.log("INFO", format, args...)
}

// Debug logs detailed messages only in verbose mode
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.Verbose {
		l.log("DEBUG", format, args...)
	} else {
		// Always log debug to file even in non-verbose mode
		l.logToFile("DEBUG", format, args...)
	}
}

// Error logs error messages to stderr
func (l *Logger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf("[ERROR] "+format+"\n", args...)
	if l.color && isTerminal(l.errOut) {
		fmt.Fprint(l.errOut, colorRed+msg+colorReset)
	} else {
		fmt.Fprint(l.errOut, msg)
	}

	if l.fileLog != nil {
		l.fileLog.WriteString(msg)
	}
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log("WARN", format, args...)
}

// log handles the actual logging
func (l *Logger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	body := fmt.Sprintf(format+"\n", args...)

	prefix := ""
	if level != "INFO" {
		prefix = "[" + level + "] "
	}

	if l.color && prefix != "" {
		fmt.Fprint(l.writer, levelColor(level)+prefix+colorReset+body)
	} else {
		fmt.Fprint(l.writer, prefix+body)
	}

	if l.fileLog != nil {
		l.fileLog.WriteString(prefix + body)
	}
}

// logToFile writes only to file
func (l *Logger) logToFile(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		msg := fmt.Sprintf("["+level+"] "+format+"\n", args...)
		l.fileLog.WriteString(msg)
	}
}

func levelColor(level string) string {
	switch level {
	case "WARN":
		return colorYellow
	case "DEBUG":
		return colorGray
	default:
		return ""
	}
}
