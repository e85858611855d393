package main

import (
	"dishrank-food-tracker/database"
	"dishrank-food-tracker/enums"
	"dishrank-food-tracker/router"
	"dishrank-food-tracker/services"
	"dishrank-food-tracker/services/rabbitmq"
	"dishrank-food-tracker/services/track"
	"dishrank-food-tracker/services/trackLog"
	"dishrank-food-tracker/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// fatal ends the process after a crash has been reported.
var fatal = func(args ...interface{}) {
	trackLog.Logger().Fatal(args...)
}

func main() {
	defer handleCrash()

	// 初始化 env
	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("參數初始化成功...")

	trackLog.LogTrackInit()
	logger := trackLog.Logger()

	config := utils.EnvConfig
	db, err := database.Bootstrap(database.Config{
		URL:         config.Database.URL,
		MaxIdle:     config.Database.MaxIdle,
		MaxOpenConn: config.Database.MaxOpenConn,
		MaxLifeTime: config.Database.MaxLifeTime,
		LogEnable:   config.Database.LogEnable,
	}, logger)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	trackLog.Info(fmt.Sprintf("資料庫初始化成功... %d categories seeded", len(enums.FoodCategories)), true)

	publisher := eventPublisher()

	gin.SetMode(config.Router.Mode)
	route := router.Router(db, publisher, config.RabbitMQ.Queue)
	if err := route.Run(fmt.Sprintf(":%d", config.Router.Port)); err != nil {
		panic(err)
	}
}

// handleCrash logs a startup or serve failure, sends the crash alert and
// exits. It must be deferred directly so recover sees the panic.
func handleCrash() {
	r := recover()
	if r == nil {
		return
	}
	trackLog.WithFields(logrus.Fields{"task": "main"}).Error(fmt.Sprintf("tracker shutdown: %v", r))
	crashEmailAlert(fmt.Sprint(r))
	fatal(fmt.Sprintf("tracker shutdown: %v", r))
}

// eventPublisher connects the entry event queue when enabled. A broker that
// cannot be reached at startup is retried lazily on first publish.
func eventPublisher() track.Publisher {
	mq := utils.EnvConfig.RabbitMQ
	if mq.Enable != 1 {
		return nil
	}

	conn := rabbitmq.NewConnection(enums.EventConnection, mq.Domain, []string{mq.Queue})
	if err := conn.Reconnect(); err != nil {
		trackLog.Error(err.Error(), true)
	} else {
		trackLog.Info(fmt.Sprintf(" [ %s ] publishing entry events to [ %s ]", enums.EventConnection, mq.Queue), true)
	}
	return conn
}

func crashEmailAlert(reason string) {
	if utils.EnvConfig == nil || utils.EnvConfig.Email.APIUrl == "" {
		return
	}
	body := map[string]string{"service": enums.EventConnection, "reason": reason}
	if _, err := services.HttpRequest(http.MethodPost, utils.EnvConfig.Email.APIUrl, nil, body); err != nil {
		trackLog.Error(fmt.Sprintf("crash alert fail: %s", err.Error()), true)
	}
}
