package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		MaxTimeRequestsPerSeconds int
		AddonLockTTLInSeconds     int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
