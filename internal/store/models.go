package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	quoted := make([]string, len(a))
	for i, item := range a {
		item = strings.ReplaceAll(item, `\`, `\\`)
		item = strings.ReplaceAll(item, `"`, `\"`)
		quoted[i] = `"` + item + `"`
	}
	// PostgreSQL array format: {"item1","item2"}
	return "{" + strings.Join(quoted, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	str = strings.TrimPrefix(strings.TrimSuffix(str, "}"), "{")
	if str == "" {
		*a = []string{}
		return nil
	}

	var (
		items   []string
		current strings.Builder
		quoted  bool
		escaped bool
	)
	for _, r := range str {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			items = append(items, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	items = append(items, current.String())
	*a = items
	return nil
}

// Account is a job seeker whose applications are sent by the pipeline
type Account struct {
	ID                     uuid.UUID     `db:"id" json:"id"`
	Name                   string        `db:"name" json:"name"`
	Email                  string        `db:"email" json:"email"`
	PartnerAccountID       *uuid.UUID    `db:"partner_account_id" json:"partner_account_id,omitempty"`
	Countries              StringArray   `db:"countries" json:"countries"`
	Cities                 StringArray   `db:"cities" json:"cities"`
	JobTitle               string        `db:"job_title" json:"job_title"`
	JobTitleMatch          JobTitleMatch `db:"job_title_match" json:"job_title_match"`
	MatchMode              MatchMode     `db:"match_mode" json:"match_mode"`
	FilterCountriesEnabled bool          `db:"filter_countries_enabled" json:"filter_countries_enabled"`
	FilterCitiesEnabled    bool          `db:"filter_cities_enabled" json:"filter_cities_enabled"`
	FilterJobTitleEnabled  bool          `db:"filter_job_title_enabled" json:"filter_job_title_enabled"`
	DriveFolderID          string        `db:"drive_folder_id" json:"drive_folder_id"`
	GoogleRefreshToken     string        `db:"google_refresh_token" json:"-"`
	MailProvider           MailProvider  `db:"mail_provider" json:"mail_provider"`
	CreatedAt              time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time     `db:"updated_at" json:"updated_at"`
}

// AccountSendProfile holds the per-account sending limits and warmup state
type AccountSendProfile struct {
	ID                uuid.UUID `db:"id" json:"id"`
	AccountID         uuid.UUID `db:"account_id" json:"account_id"`
	MinDaily          int       `db:"min_daily" json:"min_daily"`
	MaxDaily          int       `db:"max_daily" json:"max_daily"`
	CurrentDailyLimit int       `db:"current_daily_limit" json:"current_daily_limit"`
	TargetDailyLimit  int       `db:"target_daily_limit" json:"target_daily_limit"`
	DailyIncrement    int       `db:"daily_increment" json:"daily_increment"`
	WarmupActive      bool      `db:"warmup_active" json:"warmup_active"`
	Active            bool      `db:"active" json:"active"`
	PreviewEnabled    bool      `db:"preview_enabled" json:"preview_enabled"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// SendJob is the daily quota of an account
type SendJob struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	AccountID       uuid.UUID     `db:"account_id" json:"account_id"`
	SendDate        time.Time     `db:"send_date" json:"send_date"`
	Status          SendJobStatus `db:"status" json:"status"`
	EmailsToSend    int           `db:"emails_to_send" json:"emails_to_send"`
	EmailsSentCount int           `db:"emails_sent_count" json:"emails_sent_count"`
	StartedAt       *time.Time    `db:"started_at" json:"started_at,omitempty"`
	FinishedAt      *time.Time    `db:"finished_at" json:"finished_at,omitempty"`
	ErrorMessage    *string       `db:"error_message" json:"error_message,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// Remaining returns how many sends are still owed today
func (j SendJob) Remaining() int {
	if r := j.EmailsToSend - j.EmailsSentCount; r > 0 {
		return r
	}
	return 0
}

// JobOffer is a scraped job posting
type JobOffer struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Company      string    `db:"company" json:"company"`
	Title        string    `db:"title" json:"title"`
	Country      string    `db:"country" json:"country"`
	City         string    `db:"city" json:"city"`
	ContactEmail string    `db:"contact_email" json:"contact_email"`
	Description  string    `db:"description" json:"description"`
	URL          string    `db:"url" json:"url"`
	ScrapedAt    time.Time `db:"scraped_at" json:"scraped_at"`
}

// EmailSend is one application, reserved before it is sent
type EmailSend struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	AccountID         uuid.UUID       `db:"account_id" json:"account_id"`
	OfferID           uuid.UUID       `db:"offer_id" json:"offer_id"`
	SendJobID         *uuid.UUID      `db:"send_job_id" json:"send_job_id,omitempty"`
	RecipientEmail    string          `db:"recipient_email" json:"recipient_email"`
	Status            EmailSendStatus `db:"status" json:"status"`
	Subject           string          `db:"subject" json:"subject"`
	Body              string          `db:"body" json:"body"`
	AIGenerated       bool            `db:"ai_generated" json:"ai_generated"`
	AttachmentNames   StringArray     `db:"attachment_names" json:"attachment_names"`
	ProviderMessageID *string         `db:"provider_message_id" json:"provider_message_id,omitempty"`
	ThreadID          *string         `db:"thread_id" json:"thread_id,omitempty"`
	ErrorMessage      *string         `db:"error_message" json:"error_message,omitempty"`
	ResponseCount     int             `db:"response_count" json:"response_count"`
	LastResponseAt    *time.Time      `db:"last_response_at" json:"last_response_at,omitempty"`
	SentAt            *time.Time      `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// EmailResponse is a reply found in the thread of a sent application
type EmailResponse struct {
	ID                uuid.UUID              `db:"id" json:"id"`
	EmailSendID       uuid.UUID              `db:"email_send_id" json:"email_send_id"`
	AccountID         uuid.UUID              `db:"account_id" json:"account_id"`
	ProviderMessageID string                 `db:"provider_message_id" json:"provider_message_id"`
	ThreadID          string                 `db:"thread_id" json:"thread_id"`
	FromEmail         string                 `db:"from_email" json:"from_email"`
	Subject           string                 `db:"subject" json:"subject"`
	Snippet           string                 `db:"snippet" json:"snippet"`
	Body              string                 `db:"body" json:"body"`
	ReceivedAt        time.Time              `db:"received_at" json:"received_at"`
	Classification    ResponseClassification `db:"classification" json:"classification"`
	Confidence        float64                `db:"confidence" json:"confidence"`
	Reasoning         string                 `db:"reasoning" json:"reasoning"`
	IsRead            bool                   `db:"is_read" json:"is_read"`
	InReplyTo         string                 `db:"in_reply_to" json:"in_reply_to"`
	References        string                 `db:"references" json:"references"`
	ClassifiedAt      *time.Time             `db:"classified_at" json:"classified_at,omitempty"`
	CreatedAt         time.Time              `db:"created_at" json:"created_at"`
}

// BlockedRecipient is an address that must never be contacted again
type BlockedRecipient struct {
	Email     string    `db:"email" json:"email"`
	Reason    string    `db:"reason" json:"reason"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GlobalSendConfig is the singleton sending window and pacing configuration
type GlobalSendConfig struct {
	StartHour       int       `db:"start_hour" json:"start_hour"`
	EndHour         int       `db:"end_hour" json:"end_hour"`
	MinDelayMinutes int       `db:"min_delay_minutes" json:"min_delay_minutes"`
	MaxDelayMinutes int       `db:"max_delay_minutes" json:"max_delay_minutes"`
	Enabled         bool      `db:"enabled" json:"enabled"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
