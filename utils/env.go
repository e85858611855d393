package utils

import (
	"dishrank-food-tracker/enums"
	"dishrank-food-tracker/structs"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var EnvConfig *structs.EnviromentModel

type EnvService struct{}

func (e *EnvService) InitEnv() {
	e.loadConfig()
	e.configToModel()
}

func (e *EnvService) loadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	e.setDefaults()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {

			// no config.yml, fall back to environment variables
			viper.AutomaticEnv()
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		} else {
			panic(fmt.Errorf("Fatal error config file: %s \n", err))
		}
	}
}

func (e *EnvService) setDefaults() {
	viper.SetDefault("db.max_idle", enums.DefaultMaxIdle)
	viper.SetDefault("db.max_open_conn", enums.DefaultMaxOpenConn)
	viper.SetDefault("db.max_life_time", enums.DefaultMaxLifeTime)
	viper.SetDefault("router.port", enums.DefaultRouterPort)
	viper.SetDefault("router.mode", "debug")
	viper.SetDefault("rabbitmq.queue", enums.DefaultQueue)
	viper.SetDefault("log.dir", enums.DefaultLogDir)
}

func (e *EnvService) configToModel() {
	var config structs.EnviromentModel
	config.Database.URL = viper.GetString("db.url")
	config.Database.MaxIdle = uint(viper.GetInt("db.max_idle"))
	config.Database.MaxOpenConn = uint(viper.GetInt("db.max_open_conn"))
	config.Database.MaxLifeTime = viper.GetString("db.max_life_time")
	config.Database.LogEnable = viper.GetInt("db.log_enable")
	config.RabbitMQ.Enable = viper.GetInt("rabbitmq.enable")
	config.RabbitMQ.Domain = viper.GetString("rabbitmq.domain")
	config.RabbitMQ.Queue = viper.GetString("rabbitmq.queue")
	config.Log.Dir = viper.GetString("log.dir")
	config.Log.ElkEnable = viper.GetInt("log.elk.enable")
	config.Log.ElkIndex = viper.GetString("log.elk.index")
	config.Log.ElkURL = viper.GetString("log.elk.url")
	config.Log.LogstashEnable = viper.GetInt("log.logstash.enable")
	config.Log.LogstashURL = viper.GetString("log.logstash.url")
	config.Log.LogstashIndex = viper.GetString("log.logstash.index")
	config.Email.APIUrl = viper.GetString("email.api_url")
	config.Router.Port = viper.GetInt("router.port")
	config.Router.Mode = viper.GetString("router.mode")

	if config.Database.URL == "" {
		panic(fmt.Errorf("Fatal error config: db.url (DB_URL) is required \n"))
	}
	EnvConfig = &config
}
