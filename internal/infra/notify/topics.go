package notify

const (
	TopicReminderDelivery = "reminder.delivery"
	TopicReminderSpeech   = "reminder.speech"
)
