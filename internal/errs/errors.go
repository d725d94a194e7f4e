package errs

import (
	"fmt"
)

// ========== Config 相关错误 ==========

func ErrReadConfigFileFailed(err error) error {
	return fmt.Errorf("read config file failed: %w", err)
}

func ErrUnmarshalConfigFailed(err error) error {
	return fmt.Errorf("unmarshal config failed: %w", err)
}

func ErrInvalidConfig(key, reason string) error {
	return fmt.Errorf("invalid config %s: %s", key, reason)
}
