package constvars

// Client-facing messages. Kept generic on purpose: expired and wrong
// OTP codes, and unknown email vs bad password, must be
// indistinguishable to the caller.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientForbiddenResource             = "You do not have access to this resource"

	ErrClientInvalidEmailOrPassword      = "Invalid email or password"
	ErrClientEmailAlreadyExists          = "User already exists with this email"
	ErrClientPhoneAlreadyRegistered      = "User already exists with this phone number"
	ErrClientAccountNotVerified          = "Please verify your email. OTP has been sent."
	ErrClientOTPInvalidOrExpired         = "Invalid or expired OTP"
	ErrClientOTPRequestTooMany           = "Too many OTP requests, please wait before trying again"
	ErrClientUserNotFound                = "User not found"
	ErrClientDoctorNotFound              = "Doctor not found"
	ErrClientAppointmentNotFound         = "Appointment not found"
	ErrClientSlotUnavailable             = "The selected time slot is no longer available"
	ErrClientSlotOutsideAvailability     = "The selected time slot is outside the doctor's availability"
	ErrClientAppointmentTerminal         = "This appointment can no longer be modified"
	ErrClientInvalidStatusTransition     = "Invalid appointment status transition"
	ErrClientPaymentNotFound             = "Payment record not found"
	ErrClientPaymentTerminal             = "This payment can no longer be modified"
	ErrClientConversationNotFound        = "Conversation not found"
	ErrClientConversationNotParticipant  = "You are not a participant of this conversation"
	ErrClientMedicineNotFound            = "Medicine not found"
	ErrClientMedicineAlreadyExists       = "A medicine with this name already exists"
	ErrClientLabTestNotFound             = "Lab test not found"
	ErrClientHealthReportNotFound        = "Health report not found"
	ErrClientFileTooLarge                = "Uploaded file exceeds the maximum allowed size"
	ErrClientCannotChatWithSelf          = "Cannot start a conversation with yourself"
	ErrClientTooManyRequests             = "Too many requests, please slow down"
)

// Dev messages double as stable machine-readable error kinds.
const (
	ErrDevCannotParseJSON            = "CANNOT_PARSE_JSON"
	ErrDevValidationFailed           = "VALIDATION_FAILED"
	ErrDevURLParamIDValidationFailed = "URL_PARAM_INVALID: %s"
	ErrDevServerDeadlineExceeded     = "SERVER_DEADLINE_EXCEEDED"
	ErrDevFailedToHashPassword       = "HASH_PASSWORD_FAILED"
	ErrDevInvalidCredentials         = "INVALID_CREDENTIALS"
	ErrDevEmailAlreadyExists         = "EMAIL_ALREADY_EXISTS"
	ErrDevPhoneAlreadyRegistered     = "PHONE_ALREADY_REGISTERED"
	ErrDevAccountNotVerified         = "ACCOUNT_NOT_VERIFIED"
	ErrDevOTPInvalid                 = "OTP_INVALID"
	ErrDevOTPGenerate                = "OTP_GENERATE_FAILED"
	ErrDevOTPRateLimited             = "OTP_RATE_LIMITED"
	ErrDevLoginRateLimited           = "LOGIN_RATE_LIMITED"
	ErrDevUserNotFound               = "USER_NOT_FOUND"
	ErrDevDoctorNotFound             = "DOCTOR_NOT_FOUND"
	ErrDevAppointmentNotFound        = "APPOINTMENT_NOT_FOUND"
	ErrDevSlotUnavailable            = "SLOT_UNAVAILABLE"
	ErrDevSlotOutsideAvailability    = "SLOT_OUTSIDE_AVAILABILITY"
	ErrDevAppointmentTerminal        = "APPOINTMENT_TERMINAL_STATUS"
	ErrDevInvalidStatusTransition    = "INVALID_STATUS_TRANSITION"
	ErrDevNotAppointmentParty        = "NOT_APPOINTMENT_PARTY"
	ErrDevPaymentNotFound            = "PAYMENT_NOT_FOUND"
	ErrDevPaymentTerminal            = "PAYMENT_TERMINAL_STATUS"
	ErrDevConversationNotFound       = "CONVERSATION_NOT_FOUND"
	ErrDevNotConversationParty       = "NOT_CONVERSATION_PARTICIPANT"
	ErrDevMedicineNotFound           = "MEDICINE_NOT_FOUND"
	ErrDevMedicineAlreadyExists      = "MEDICINE_ALREADY_EXISTS"
	ErrDevLabTestNotFound            = "LAB_TEST_NOT_FOUND"
	ErrDevHealthReportNotFound       = "HEALTH_REPORT_NOT_FOUND"
	ErrDevFileTooLarge               = "FILE_TOO_LARGE"
	ErrDevChatWithSelf               = "CHAT_WITH_SELF"
	ErrDevRoleForbidden              = "ROLE_FORBIDDEN"
	ErrDevCannotParseDate            = "CANNOT_PARSE_DATE"
	ErrDevCannotParseMultipartForm   = "CANNOT_PARSE_MULTIPART_FORM"

	ErrDevAuthTokenMissing          = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenInvalidOrExpired = "AUTH_TOKEN_INVALID_OR_EXPIRED"
	ErrDevAuthGenerateToken         = "AUTH_GENERATE_TOKEN_FAILED"
	ErrDevAuthSigningMethod         = "AUTH_UNEXPECTED_SIGNING_METHOD"
	ErrDevAuthInvalidSession        = "AUTH_INVALID_SESSION"

	ErrDevMongoDBInsertDocument = "MONGODB_INSERT_FAILED"
	ErrDevMongoDBCreateIndex    = "MONGODB_CREATE_INDEX_FAILED"
	ErrDevMongoDBFindDocument   = "MONGODB_FIND_FAILED"
	ErrDevMongoDBUpdateDocument = "MONGODB_UPDATE_FAILED"
	ErrDevMongoDBNotObjectID    = "MONGODB_INVALID_OBJECT_ID"
	ErrDevCannotMarshalJSON     = "CANNOT_MARSHAL_JSON"
	ErrDevRedisSet              = "REDIS_SET_FAILED"
	ErrDevRedisGet              = "REDIS_GET_FAILED: %s"
	ErrDevRedisDelete           = "REDIS_DELETE_FAILED"
	ErrDevRedisIncrement        = "REDIS_INCREMENT_FAILED"
	ErrDevRedisUnlock           = "REDIS_UNLOCK_FAILED"
	ErrDevRedisPublish          = "REDIS_PUBLISH_FAILED"
	ErrDevRabbitMQPublish       = "RABBITMQ_PUBLISH_FAILED"
	ErrDevSMTPSendEmail         = "SMTP_SEND_FAILED: %s"
	ErrDevMinioCreateObject     = "MINIO_PUT_OBJECT_FAILED: %s"
	ErrDevMinioPresignObject    = "MINIO_PRESIGN_OBJECT_FAILED: %s"
)
