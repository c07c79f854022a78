package config

type InternalConfig struct {
	App    App
	JWT    AppJWT
	Mailer AppMailer
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	FrontendOrigin                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	OTPExpiredTimeInMinutes        int
	ReportUploadMaxSizeInMB        int64
	ReportPresignedUrlExpiryInHour int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMailer struct {
	EmailSender   string
	RabbitMQQueue string
}
