package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingUserIDKey           = "user_id"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingConversationIDKey   = "conversation_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingRedisKey            = "redis_key"
	LoggingLockExpirationKey   = "lock_expiration"
	LoggingLockValueKey        = "lock_value"
)
