package check

import (
	"dishrank-food-tracker/database"
	"dishrank-food-tracker/enums"
	"dishrank-food-tracker/services/rabbitmq"
	"dishrank-food-tracker/services/trackLog"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Database   string   `json:"database"`
	Queues     []string `json:"queue"`
	RoutineNum int      `json:"routine_num"`
}

func CheckAlive(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		success := true
		resMsg := "main thread alive"
		checkInfo := CheckInfo{Database: "ok"}

		if err := database.Ping(db); err != nil {
			success = false
			resMsg = fmt.Sprintf("database ping fail: %s", err.Error())
			checkInfo.Database = err.Error()
			trackLog.Error(resMsg, false)
		}

		// the event queue is optional, only report it when configured
		if rabbitConn := rabbitmq.GetConnection(enums.EventConnection); rabbitConn != nil {
			if !rabbitConn.Connected() {
				trackLog.Error("Api detect Connection lost, Reconnecting..", false)
				if err := rabbitConn.Reconnect(); err != nil {
					resMsg = fmt.Sprintf("reconnect rabbit fail: %s", err.Error())
					trackLog.Error(resMsg, false)
				}
			}
			queues, err := rabbitConn.Inspect()
			if err != nil {
				resMsg = err.Error()
				trackLog.Error(resMsg, false)
			}
			for _, queue := range queues {
				queueJson, _ := json.Marshal(queue)
				checkInfo.Queues = append(checkInfo.Queues, string(queueJson))
			}
		}

		checkInfo.RoutineNum = runtime.NumGoroutine()
		trackLog.Info(fmt.Sprintf("goroutine number: %d", checkInfo.RoutineNum), false)

		status := http.StatusOK
		if !success {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, AliveResponse{success, resMsg, checkInfo})
	}
}
