package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	RequestTimeoutInSeconds        int
	LoginSessionExpiredTimeInHours int
	EnrollmentEventQueue           string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
