package structs

type EnviromentModel struct {
	Database database
	RabbitMQ rabbitmq
	Log      log
	Email    email
	Router   router
}

type database struct {
	URL         string
	MaxIdle     uint
	MaxLifeTime string
	MaxOpenConn uint
	LogEnable   int
}

type rabbitmq struct {
	Enable int
	Domain string
	Queue  string
}

type log struct {
	Dir            string
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
	LogstashIndex  string
}

type email struct {
	APIUrl string
}

type router struct {
	Port int
	Mode string
}
