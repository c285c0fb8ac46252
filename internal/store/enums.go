package store

// SendJobStatus is the lifecycle state of a daily send job
type SendJobStatus string

const (
	SendJobStatusQueued  SendJobStatus = "QUEUED"
	SendJobStatusRunning SendJobStatus = "RUNNING"
	SendJobStatusDone    SendJobStatus = "DONE"
	SendJobStatusFailed  SendJobStatus = "FAILED"
)

// EmailSendStatus is the state of a single outbound application
type EmailSendStatus string

const (
	EmailSendStatusReserved      EmailSendStatus = "RESERVED"
	EmailSendStatusPendingReview EmailSendStatus = "PENDING_REVIEW"
	EmailSendStatusSent          EmailSendStatus = "SENT"
	EmailSendStatusFailed        EmailSendStatus = "FAILED"
	EmailSendStatusBounced       EmailSendStatus = "BOUNCED"
	EmailSendStatusRejected      EmailSendStatus = "REJECTED"
	EmailSendStatusApproved      EmailSendStatus = "APPROVED"
)

// ResponseClassification labels an inbound reply
type ResponseClassification string

const (
	ClassificationUnclassified  ResponseClassification = "UNCLASSIFIED"
	ClassificationInterested    ResponseClassification = "INTERESTED"
	ClassificationNotInterested ResponseClassification = "NOT_INTERESTED"
	ClassificationNeedsInfo     ResponseClassification = "NEEDS_INFO"
	ClassificationAutoReply     ResponseClassification = "AUTO_REPLY"
	ClassificationBounce        ResponseClassification = "BOUNCE"
)

// Valid reports whether c is one of the known labels
func (c ResponseClassification) Valid() bool {
	switch c {
	case ClassificationUnclassified, ClassificationInterested, ClassificationNotInterested,
		ClassificationNeedsInfo, ClassificationAutoReply, ClassificationBounce:
		return true
	}
	return false
}

// JobTitleMatch controls how the job title filter compares titles
type JobTitleMatch string

const (
	JobTitleMatchExact    JobTitleMatch = "exact"
	JobTitleMatchContains JobTitleMatch = "contains"
	JobTitleMatchNone     JobTitleMatch = "none"
)

// MatchMode controls how enabled filters are combined
type MatchMode string

const (
	MatchModeAll MatchMode = "ALL"
	MatchModeAny MatchMode = "ANY"
)

// MailProvider selects the outbound transport of an account
type MailProvider string

const (
	MailProviderGmail  MailProvider = "gmail"
	MailProviderResend MailProvider = "resend"
)
