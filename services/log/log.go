package log

import (
	"dishrank-food-tracker/utils"
	"fmt"
	"net"
	"os"
	"path"
	"time"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

const hookHost = "dishrank-food-tracker"

type LogService struct{}

// LoggerInit builds a logger writing to logs/<date>/<name>.log, with ELK and
// Logstash hooks attached when enabled. Without loaded config it logs to
// stdout only.
func (l *LogService) LoggerInit(name string) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	config := utils.EnvConfig
	if config == nil {
		logger.Out = os.Stdout
		return logger
	}

	if src, err := l.openLogFile(config.Log.Dir, name); err != nil {
		fmt.Println(err.Error())
		logger.Out = os.Stdout
	} else {
		logger.Out = src
	}

	if config.Log.ElkEnable == 1 {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{config.Log.ElkURL},
		})
		if err != nil {
			logger.Debug(err.Error())
		} else if hook, err := elogrus.NewAsyncElasticHook(client, hookHost, logrus.DebugLevel, config.Log.ElkIndex); err != nil {
			logger.Debug(err.Error())
		} else {
			logger.Hooks.Add(hook)
		}
	}

	if config.Log.LogstashEnable == 1 {
		conn, err := net.Dial("udp", config.Log.LogstashURL)
		if err != nil {
			logger.Debug(err)
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": hookHost, "index": config.Log.LogstashIndex}))
			logger.Hooks.Add(hook)
		}
	}

	return logger
}

func (l *LogService) openLogFile(dir, name string) (*os.File, error) {
	if dir == "" {
		dir = "logs"
	}
	if !path.IsAbs(dir) {
		if wd, err := os.Getwd(); err == nil {
			dir = path.Join(wd, dir)
		}
	}
	logFilePath := path.Join(dir, time.Now().Format("2006-01-02"))
	if err := os.MkdirAll(logFilePath, 0755); err != nil {
		return nil, err
	}
	fileName := path.Join(logFilePath, name+".log")
	return os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
