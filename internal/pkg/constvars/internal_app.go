package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDCN_SVC_"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	ConsultationModeVideo    = "video"
	ConsultationModeInClinic = "in-clinic"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

const (
	LabTestStatusScheduled       = "Scheduled"
	LabTestStatusSampleCollected = "Sample Collected"
	LabTestStatusInProgress      = "In Progress"
	LabTestStatusCompleted       = "Completed"
	LabTestStatusCancelled       = "Cancelled"
)

const (
	MessageTypeText         = "text"
	MessageTypeImage        = "image"
	MessageTypeFile         = "file"
	MessageTypePrescription = "prescription"
	MessageTypeReport       = "report"
)

const (
	ChatEventMessage    = "message"
	ChatEventTyping     = "typing"
	ChatEventStopTyping = "stop-typing"
)

const (
	OTP_LENGTH = 6

	// OTPIssueMaxPerWindow caps issue/resend calls per account per window.
	OTPIssueMaxPerWindow      = 3
	OTPIssueWindowSec         = 600
	OTPRateLimiterGroup       = "OTP_ISSUE"
	SessionKeyFormat          = "session:%s"
	RateLimitKeyFormat        = "ratelimit:%s:%s"
	AppointmentLockKeyFormat  = "appointment:lock:%s:%s:%s"
	ChatChannelKeyFormat      = "chat:events:%s"
	AppPaginationUrlFormat    = "%s?page=%d&page_size=%d"
	AppointmentDateTimeFormat = "2006-01-02"
	SlotTimeFormat            = "15:04"
)
