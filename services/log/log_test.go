package log

import (
	"dishrank-food-tracker/structs"
	"dishrank-food-tracker/utils"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogService_LoggerInitWithoutConfig(t *testing.T) {
	utils.EnvConfig = nil

	var logService LogService
	logger := logService.LoggerInit("tracker")

	assert.Equal(t, os.Stdout, logger.Out)
}

func TestLogService_LoggerInitWritesFile(t *testing.T) {
	dir := t.TempDir()
	var config structs.EnviromentModel
	config.Log.Dir = dir
	utils.EnvConfig = &config
	defer func() { utils.EnvConfig = nil }()

	var logService LogService
	logger := logService.LoggerInit("tracker")
	logger.Info("entry stored")

	content, err := ioutil.ReadFile(filepath.Join(dir, time.Now().Format("2006-01-02"), "tracker.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "entry stored")
}
