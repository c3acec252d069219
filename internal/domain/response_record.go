package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResponseRecord is one filler's complete answer set for a published form.
// Records are immutable once created and are destroyed only as a cascade of
// their owning form's deletion. Answers map field ids to values shaped per
// the field's declared value shape.
type ResponseRecord struct {
	BaseModel
	FormID      uuid.UUID         `gorm:"type:uuid;not null;index:idx_form_responses_form_id" json:"formId"`
	Answers     datatypes.JSONMap `gorm:"type:jsonb" json:"responses"`
	SubmittedAt time.Time         `gorm:"type:timestamp;not null;index:idx_form_responses_submitted_at" json:"submittedAt"`
	IPAddress   string            `gorm:"type:varchar(64)" json:"ipAddress"`
	UserAgent   string            `gorm:"type:varchar(512)" json:"userAgent"`
	Form        Form              `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"form,omitempty"`
}

// TableName specifies the table name for ResponseRecord
func (ResponseRecord) TableName() string {
	return "form_responses"
}
