package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var (
	levelNames = map[LogLevel]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
		FATAL: "FATAL",
	}

	levelColors = map[LogLevel]string{
		DEBUG: "\033[36m", // Cyan
		INFO:  "\033[32m", // Green
		WARN:  "\033[33m", // Yellow
		ERROR: "\033[31m", // Red
		FATAL: "\033[35m", // Magenta
	}

	resetColor = "\033[0m"
)

// String returns the upper-case level name.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a config string (debug, info, warn, error) to a LogLevel.
// Unknown values fall back to INFO.
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// Logger writes levelled lines to the console and, optionally, a rotating file.
type Logger struct {
	level      LogLevel
	console    io.Writer
	file       io.Writer
	mu         sync.Mutex
	useColor   bool
	prefix     string
	showCaller bool
	exit       func(int)
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Config describes how the logger should be initialised.
type Config struct {
	Level      LogLevel
	LogDir     string
	MaxSize    int64 // bytes
	MaxAge     int   // days
	UseColor   bool
	ShowCaller bool
	Prefix     string
}

// Initialize boots the global logger instance if it has not been created yet.
func Initialize(config Config) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(config, os.Stdout)
		if err == nil {
			defaultLogger = l
		}
	})
	return err
}

// New builds a standalone logger writing to console and, when LogDir is set, to a daily file.
func New(config Config, console io.Writer) (*Logger, error) {
	l := &Logger{
		level:      config.Level,
		console:    console,
		useColor:   config.UseColor,
		prefix:     config.Prefix,
		showCaller: config.ShowCaller,
		exit:       os.Exit,
	}

	if config.LogDir != "" {
		if err := os.MkdirAll(config.LogDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rf := &rotatingFile{dir: config.LogDir, maxSize: config.MaxSize}
		if err := rf.open(time.Now()); err != nil {
			return nil, err
		}
		l.file = rf

		if config.MaxAge > 0 {
			go pruneLogFiles(config.LogDir, config.MaxAge)
		}
	}

	return l, nil
}

// rotatingFile reopens the log file when the day changes or the size limit is reached.
type rotatingFile struct {
	dir     string
	maxSize int64
	day     string
	size    int64
	f       *os.File
}

func (rf *rotatingFile) open(now time.Time) error {
	day := now.Format("2006-01-02")
	path := filepath.Join(rf.dir, fmt.Sprintf("server-%s.log", day))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	if rf.f != nil {
		rf.f.Close()
	}
	rf.f = f
	rf.day = day
	rf.size = info.Size()
	return nil
}

// Write is called with the Logger mutex held.
func (rf *rotatingFile) Write(p []byte) (int, error) {
	now := time.Now()
	if now.Format("2006-01-02") != rf.day {
		if err := rf.open(now); err != nil {
			return 0, err
		}
	} else if rf.maxSize > 0 && rf.size+int64(len(p)) > rf.maxSize {
		current := rf.f.Name()
		rf.f.Close()
		rf.f = nil
		archived := strings.TrimSuffix(current, ".log") + fmt.Sprintf("-%d.log", now.UnixNano())
		if err := os.Rename(current, archived); err != nil {
			return 0, fmt.Errorf("failed to archive log file: %w", err)
		}
		if err := rf.open(now); err != nil {
			return 0, err
		}
	}

	n, err := rf.f.Write(p)
	rf.size += int64(n)
	return n, err
}

// pruneLogFiles removes archived log files older than maxAge days, once an hour.
func pruneLogFiles(logDir string, maxAge int) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		removeOldLogFiles(logDir, maxAge, time.Now())
		<-ticker.C
	}
}

func removeOldLogFiles(logDir string, maxAge int, now time.Time) {
	files, _ := filepath.Glob(filepath.Join(logDir, "server-*.log"))
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > time.Duration(maxAge)*24*time.Hour {
			os.Remove(file)
		}
	}
}

// log writes the formatted entry to every destination.
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)

	caller := ""
	if l.showCaller {
		caller = callerLocation()
	}

	plain := fmt.Sprintf("%s%s [%s]%s %s\n", timestamp, caller, level, l.prefix, message)

	if l.console != nil {
		if l.useColor {
			l.console.Write([]byte(fmt.Sprintf("%s%s [%s]%s %s%s%s\n",
				timestamp, caller, level, l.prefix, levelColors[level], message, resetColor)))
		} else {
			l.console.Write([]byte(plain))
		}
	}
	if l.file != nil {
		l.file.Write([]byte(plain))
	}

	if level == FATAL {
		l.exit(1)
	}
}

// callerLocation returns the first stack frame outside this file.
func callerLocation() string {
	for skip := 2; skip < 8; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if filepath.Base(file) != "logger.go" {
			return fmt.Sprintf(" [%s:%d]", filepath.Base(file), line)
		}
	}
	return ""
}

// Debug logs at DEBUG on this logger.
func (l *Logger) Debug(format string, args ...interface{}) { l.log(DEBUG, format, args...) }

// Info logs at INFO on this logger.
func (l *Logger) Info(format string, args ...interface{}) { l.log(INFO, format, args...) }

// Warn logs at WARN on this logger.
func (l *Logger) Warn(format string, args ...interface{}) { l.log(WARN, format, args...) }

// Error logs at ERROR on this logger.
func (l *Logger) Error(format string, args ...interface{}) { l.log(ERROR, format, args...) }

// Public helper methods for the default logger.
func Debug(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(DEBUG, format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(INFO, format, args...)
	} else {
		log.Printf("[INFO] "+format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(WARN, format, args...)
	} else {
		log.Printf("[WARN] "+format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(ERROR, format, args...)
	} else {
		log.Printf("[ERROR] "+format, args...)
	}
}

func Fatal(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.log(FATAL, format, args...)
	} else {
		log.Fatalf("[FATAL] "+format, args...)
	}
}

// WithFields attaches structured fields to the log entry.
func WithFields(fields map[string]interface{}) *LogEntry {
	return &LogEntry{
		fields: fields,
		logger: defaultLogger,
	}
}

// WithFields attaches structured fields to an entry bound to this logger.
func (l *Logger) WithFields(fields map[string]interface{}) *LogEntry {
	return &LogEntry{fields: fields, logger: l}
}

// LogEntry represents a structured log entry builder.
type LogEntry struct {
	fields map[string]interface{}
	logger *Logger
}

func (e *LogEntry) Debug(format string, args ...interface{}) {
	e.log(DEBUG, format, args...)
}

func (e *LogEntry) Info(format string, args ...interface{}) {
	e.log(INFO, format, args...)
}

func (e *LogEntry) Warn(format string, args ...interface{}) {
	e.log(WARN, format, args...)
}

func (e *LogEntry) Error(format string, args ...interface{}) {
	e.log(ERROR, format, args...)
}

func (e *LogEntry) Fatal(format string, args ...interface{}) {
	e.log(FATAL, format, args...)
}

// Log allows emitting a message with an explicit level via the entry.
func (e *LogEntry) Log(level LogLevel, format string, args ...interface{}) {
	e.log(level, format, args...)
}

func (e *LogEntry) log(level LogLevel, format string, args ...interface{}) {
	if e.logger == nil || level < e.logger.level {
		return
	}

	message := fmt.Sprintf(format, args...)
	if fields := formatFields(e.fields); fields != "" {
		message = message + " | " + fields
	}

	e.logger.log(level, "%s", message)
}

// formatFields renders key=value pairs in key order so lines are stable.
func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, ", ")
}

// SetLevel updates the global logging level.
func SetLevel(level LogLevel) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.level = level
		defaultLogger.mu.Unlock()
	}
}

// GetLevel returns the current global logging level.
func GetLevel() LogLevel {
	if defaultLogger != nil {
		return defaultLogger.level
	}
	return INFO
}
