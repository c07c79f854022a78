package constvars

const (
	MongoCollectionUsers         = "users"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPayments      = "payments"
	MongoCollectionConversations = "conversations"
	MongoCollectionChatMessages  = "chat_messages"
	MongoCollectionMedicines     = "medicines"
	MongoCollectionLabTests      = "lab_tests"
	MongoCollectionHealthReports = "health_reports"
)
