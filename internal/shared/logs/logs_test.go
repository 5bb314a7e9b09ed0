package logs

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"DAOKit/internal/shared/config"
)

func TestInit_写入JSON文件(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daoctl.log")
	if err := Init("logs-test", config.LogConfig{FileDir: path, Level: "debug"}); err != nil {
		t.Fatalf("Init 失败: %v", err)
	}
	Info("hello", zap.String("role", "account"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("期望日志文件非空")
	}
	if Logger() == nil {
		t.Fatalf("期望 Logger() 非 nil")
	}
}
