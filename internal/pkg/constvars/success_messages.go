package constvars

const (
	ResponseUnknown = "unknown"

	// Auth messages
	RegisterSuccess    = "registration successful, OTP sent to your email"
	OTPVerifiedSuccess = "OTP verified successfully"
	OTPResentSuccess   = "OTP resent successfully"
	OTPPhoneSuccess    = "OTP sent to your phone"
	LoginSuccess       = "successfully login"
	LogoutSuccess      = "successfully logout"

	// Account messages
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"

	// Doctor directory messages
	DoctorListSuccess          = "doctors retrieved successfully"
	DoctorGetSuccess           = "doctor retrieved successfully"
	DoctorSlotsSuccess         = "available slots retrieved successfully"
	DoctorProfileUpsertSuccess = "doctor profile saved successfully"

	// Appointment messages
	AppointmentCreatedSuccess   = "appointment booked successfully"
	AppointmentListSuccess      = "appointments retrieved successfully"
	AppointmentGetSuccess       = "appointment retrieved successfully"
	AppointmentStatusSuccess    = "appointment status updated successfully"
	AppointmentCancelledSuccess = "appointment cancelled successfully"

	// Payment messages
	PaymentCreatedSuccess = "payment recorded successfully"
	PaymentListSuccess    = "payments retrieved successfully"
	PaymentGetSuccess     = "payment retrieved successfully"
	PaymentStatusSuccess  = "payment status updated successfully"

	// Chat messages
	ConversationCreatedSuccess = "conversation ready"
	ConversationListSuccess    = "conversations retrieved successfully"
	MessageListSuccess         = "messages retrieved successfully"
	MessageSentSuccess         = "message sent successfully"
	MessagesReadSuccess        = "messages marked as read"
	TypingSignalSuccess        = "typing signal relayed"

	// Catalog messages
	MedicineCreatedSuccess     = "medicine created successfully"
	MedicineUpdatedSuccess     = "medicine updated successfully"
	MedicineListSuccess        = "medicines retrieved successfully"
	MedicineGetSuccess         = "medicine retrieved successfully"
	LabTestOrderedSuccess      = "lab test ordered successfully"
	LabTestListSuccess         = "lab tests retrieved successfully"
	LabTestGetSuccess          = "lab test retrieved successfully"
	LabTestStatusSuccess       = "lab test status updated successfully"
	HealthReportUploadSuccess  = "health report uploaded successfully"
	HealthReportListSuccess    = "health reports retrieved successfully"
	HealthReportGetSuccess     = "health report retrieved successfully"
)
