package common

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the application logger. It writes leveled, timestamped
// lines to stdout and, when enabled, to a size-rotated log file.
type Logger struct {
	mu          sync.Mutex
	level       LogLevel
	out         *log.Logger
	logFile     *os.File
	filePath    string
	maxFileSize int64
	maxBackups  int
}

// LogOptions holds configuration for InitLogger.
type LogOptions struct {
	Level       LogLevel
	EnableFile  bool
	MaxFileSize int64 // bytes before rotation, default 5MB
	MaxBackups  int   // rotated files to keep, default 5
}

const (
	defaultMaxFileSize = 5 * 1024 * 1024
	defaultMaxBackups  = 5
)

var (
	defaultLogger *Logger
	loggerOnce    sync.Once
)

// GetLogger returns the singleton logger instance.
func GetLogger() *Logger {
	loggerOnce.Do(func() {
		defaultLogger = &Logger{
			level:       LevelInfo,
			out:         log.New(os.Stdout, "", 0),
			maxFileSize: defaultMaxFileSize,
			maxBackups:  defaultMaxBackups,
		}
	})
	return defaultLogger
}

// InitLogger configures the singleton logger. Call early in startup.
func InitLogger(opts LogOptions) error {
	logger := GetLogger()
	logger.SetLevel(opts.Level)

	if opts.MaxFileSize > 0 {
		logger.maxFileSize = opts.MaxFileSize
	}
	if opts.MaxBackups > 0 {
		logger.maxBackups = opts.MaxBackups
	}

	if opts.EnableFile {
		return logger.EnableFileLogging()
	}
	return nil
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput redirects log output. Used in tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = log.New(w, "", 0)
}

// EnableFileLogging mirrors log output to a file under the config
// directory, rotating it when it exceeds the configured size.
func (l *Logger) EnableFileLogging() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	logDir := filepath.Join(configDir, "logs")

	// Refuse to follow symlinked log locations.
	if isSymlink(logDir) {
		return fmt.Errorf("log directory is a symlink")
	}
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, LogFileName)
	if isSymlink(logPath) {
		return fmt.Errorf("log file is a symlink")
	}

	l.rotateIfNeeded(logPath)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		l.logFile.Close()
	}

	l.logFile = file
	l.filePath = logPath
	l.out = log.New(io.MultiWriter(os.Stdout, file), "", 0)
	return nil
}

// Close closes the log file. Call on application shutdown.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}

// rotateIfNeeded rotates the log file once it exceeds maxFileSize.
func (l *Logger) rotateIfNeeded(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() < l.maxFileSize {
		return
	}
	l.rotate(logPath)
}

// rotate compresses the current log file into a timestamped backup and
// prunes backups beyond maxBackups.
func (l *Logger) rotate(logPath string) {
	l.mu.Lock()
	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}
	l.mu.Unlock()

	timestamp := time.Now().Format("20060102-150405")
	rotatedPath := fmt.Sprintf("%s.%s.gz", logPath, timestamp)

	if err := compressFile(logPath, rotatedPath); err != nil {
		// Compression failed; fall back to a plain rename.
		os.Rename(logPath, fmt.Sprintf("%s.%s", logPath, timestamp))
	} else {
		os.Remove(logPath)
	}

	l.pruneBackups(filepath.Dir(logPath))
}

// pruneBackups removes the oldest backups beyond maxBackups.
func (l *Logger) pruneBackups(logDir string) {
	matches, err := filepath.Glob(filepath.Join(logDir, LogFileName+".*"))
	if err != nil || len(matches) <= l.maxBackups {
		return
	}

	sort.Slice(matches, func(i, j int) bool {
		infoI, _ := os.Stat(matches[i])
		infoJ, _ := os.Stat(matches[j])
		if infoI == nil || infoJ == nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	for _, path := range matches[:len(matches)-l.maxBackups] {
		os.Remove(path)
	}
}

// log writes one formatted line if level passes the filter.
func (l *Logger) log(level LogLevel, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	caller := "???"
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	timestamp := time.Now().Format("2006/01/02 15:04:05")

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf("%s [%s] %s: %s", timestamp, level.String(), caller, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) { l.log(LevelDebug, msg, args...) }

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...interface{}) { l.log(LevelInfo, msg, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) { l.log(LevelWarn, msg, args...) }

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) { l.log(LevelError, msg, args...) }

// Shorthand functions for the default logger.

// LogDebug logs a debug message to the default logger.
func LogDebug(msg string, args ...interface{}) { GetLogger().Debug(msg, args...) }

// LogInfo logs an info message to the default logger.
func LogInfo(msg string, args ...interface{}) { GetLogger().Info(msg, args...) }

// LogWarn logs a warning message to the default logger.
func LogWarn(msg string, args ...interface{}) { GetLogger().Warn(msg, args...) }

// LogError logs an error message to the default logger.
func LogError(msg string, args ...interface{}) { GetLogger().Error(msg, args...) }

// CloseLogger closes the default logger.
func CloseLogger() error {
	return GetLogger().Close()
}

// isSymlink reports whether path is a symbolic link. A missing path is
// not a symlink.
func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// compressFile gzips src into dst.
func compressFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	gzWriter := gzip.NewWriter(dstFile)
	defer gzWriter.Close()

	_, err = io.Copy(gzWriter, srcFile)
	return err
}
