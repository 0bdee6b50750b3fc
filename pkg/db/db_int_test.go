package db

import (
	"os"
	"path/filepath"
	"testing"

	"waleki.xyz/water-level-service/pkg/common"
	constant "waleki.xyz/water-level-service/pkg/common"
)

func TestWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(constant.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	testPath := filepath.Join(wd, "test.db")

	originalDBPath, hadOriginal := os.LookupEnv(constant.EnvKeyWalekiDBPath)

	if err := os.Setenv(constant.EnvKeyWalekiDBPath, testPath); err != nil {
		t.Fatalf("Failed to set WALEKI_DB_PATH: %v", err)
	}

	defer func() {
		if hadOriginal {
			_ = os.Setenv(constant.EnvKeyWalekiDBPath, originalDBPath)
		} else {
			_ = os.Unsetenv(constant.EnvKeyWalekiDBPath)
		}
		_ = os.Remove(testPath)
	}()

	instance, err := New(UseSqliteDialector())
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if instance.Conn == nil {
		t.Fatal("Expected non-nil DB connection")
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}
