package trackLog

import (
	"dishrank-food-tracker/services/log"
	"fmt"

	"github.com/sirupsen/logrus"
)

var logTracker *logrus.Entry

func LogTrackInit() {
	var trackerService log.LogService
	temp := trackerService.LoggerInit("tracker")
	logTracker = temp.WithFields(logrus.Fields{"task": "track", "name": "food-tracker"})
}

// Logger returns the tracker entry, initializing it on first use.
func Logger() *logrus.Entry {
	if logTracker == nil {
		LogTrackInit()
	}
	return logTracker
}

func Info(message string, needWriteLog bool) {
	if needWriteLog {
		Logger().Info(message)
	}
	fmt.Println(message)
}

func Error(message string, needWriteLog bool) {
	if needWriteLog {
		Logger().Error(message)
	}
	fmt.Println(message)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger().WithFields(fields)
}
