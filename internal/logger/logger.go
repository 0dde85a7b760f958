package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig chứa cấu hình logging cho toàn bộ ứng dụng
type LogConfig struct {
	Level      string // Log level: debug, info, warn, error
	Format     string // Format: text hoặc json
	Output     string // Output: stdout, file, both
	LogPath    string // Thư mục chứa file log (tương đối so với root project)
	AppFile    string // Tên file log chính
	ErrorFile  string // Tên file log lỗi
	MaxSize    int    // Kích thước tối đa mỗi file (MB) trước khi rotate
	MaxBackups int    // Số file cũ giữ lại
	MaxAge     int    // Số ngày giữ file cũ
	Compress   bool   // Nén file cũ
}

// DefaultConfig trả về cấu hình mặc định, đọc override từ environment variables
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		ErrorFile:  "error.log",
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LOG_PATH"); v != "" {
		cfg.LogPath = v
	}

	return cfg
}

var (
	// loggers map lưu các logger instances theo tên
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config chứa cấu hình logging
	config *LogConfig

	// rootDir lưu đường dẫn gốc của project
	rootDir string
)

// Init khởi tạo hệ thống logging với cấu hình
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Lấy rootDir
	if err := initRootDir(); err != nil {
		return fmt.Errorf("failed to initialize root directory: %w", err)
	}

	// Tạo thư mục logs nếu chưa tồn tại
	logPath := getLogPath()
	if err := os.MkdirAll(logPath, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	return nil
}

// initRootDir khởi tạo rootDir của project
func initRootDir() error {
	if rootDir != "" {
		return nil
	}

	// Bước 1: Thử lấy từ environment variable LOG_ROOT_DIR (ưu tiên cao nhất)
	if envRootDir := os.Getenv("LOG_ROOT_DIR"); envRootDir != "" {
		// Resolve symlinks trên Linux
		if resolvedPath, err := filepath.EvalSymlinks(envRootDir); err == nil {
			rootDir = resolvedPath
			return nil
		}
		rootDir = envRootDir
		return nil
	}

	// Bước 2: Thử lấy từ executable path
	executable, err := os.Executable()
	if err == nil {
		// Resolve symlinks (quan trọng khi chạy qua systemd)
		if resolvedExecutable, err := filepath.EvalSymlinks(executable); err == nil {
			executable = resolvedExecutable
		}

		// Lấy đường dẫn gốc của project (2 cấp trên thư mục cmd)
		// Ví dụ: /path/to/app/cmd/server/main -> /path/to/app
		rootDir = filepath.Dir(filepath.Dir(filepath.Dir(executable)))

		// Kiểm tra xem đường dẫn có hợp lệ không (có thư mục logs hoặc config)
		if _, err := os.Stat(filepath.Join(rootDir, "logs")); err == nil {
			return nil
		}
		if _, err := os.Stat(filepath.Join(rootDir, "config")); err == nil {
			return nil
		}
	}

	// Bước 3: Fallback: tìm thư mục project bằng cách đi lên từ working directory
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not get executable or working directory: %v", err)
	}

	currentDir := wd
	for i := 0; i < 5; i++ {
		if _, err := os.Stat(filepath.Join(currentDir, "logs")); err == nil {
			rootDir = currentDir
			return nil
		}
		if _, err := os.Stat(filepath.Join(currentDir, "config")); err == nil {
			rootDir = currentDir
			return nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break // Đã đến root
		}
		currentDir = parentDir
	}

	rootDir = wd
	return nil
}

// getLogPath trả về đường dẫn thư mục logs
func getLogPath() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	return filepath.Join(rootDir, config.LogPath)
}

// GetLogger trả về logger theo tên (app, error)
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Nếu chưa init, init với config mặc định
	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Failed to initialize logger: %v", err))
		}
	}

	// Trả về logger đã tồn tại
	if logger, ok := loggers[name]; ok {
		return logger
	}

	// Tạo logger mới
	logger := createLogger(name)
	loggers[name] = logger

	return logger
}

// createLogger tạo một logger mới với cấu hình
func createLogger(name string) *logrus.Logger {
	logger := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set formatter
	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return funcName, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	// Set output
	// ⚠️ QUAN TRỌNG: Dùng async hook cho tất cả writers để tránh blocking request handling
	// Nếu dùng MultiWriter trực tiếp, khi file I/O chậm sẽ block cả stdout
	var writers []io.Writer

	// File output với rotation
	if config.Output == "file" || config.Output == "both" {
		logFile := getLogFilePath(name)
		fileWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    config.MaxSize,    // MB
			MaxBackups: config.MaxBackups, // Số file cũ giữ lại
			MaxAge:     config.MaxAge,     // Số ngày
			Compress:   config.Compress,   // Nén file cũ
		}
		writers = append(writers, fileWriter)
	}

	// Stdout output
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	// Dùng async hook cho tất cả writers để tránh blocking
	if len(writers) > 0 {
		asyncHook := NewAsyncHookWithWriters(writers, 1000)
		logger.AddHook(asyncHook)
		// Không set output để tránh duplicate logs - hook xử lý tất cả
		logger.SetOutput(io.Discard)
	}

	// Bật caller logging
	logger.SetReportCaller(true)

	return logger
}

// getLogFilePath trả về đường dẫn file log cho logger name
func getLogFilePath(name string) string {
	logPath := getLogPath()
	var filename string

	switch name {
	case "app":
		filename = config.AppFile
	case "error":
		filename = config.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}

	return filepath.Join(logPath, filename)
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetErrorLogger trả về logger cho errors
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}

// WithRequest trả về entry có sẵn các field của request hiện tại (request id, method, path)
func WithRequest(c fiber.Ctx) *logrus.Entry {
	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}
	if requestID, ok := c.Locals("requestid").(string); ok && requestID != "" {
		fields["request_id"] = requestID
	}
	return GetAppLogger().WithFields(fields)
}
