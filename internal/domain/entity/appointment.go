package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusDone      AppointmentStatus = "done"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusBooked, AppointmentStatusDone, AppointmentStatusNoShow, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a customer booking with one staff member. Customers book
// without an account, so contact details live on the row itself.
type Appointment struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StaffID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"staff_id"`
	CustomerName  string            `gorm:"type:varchar(255)" json:"customer_name,omitempty"`
	CustomerPhone string            `gorm:"type:varchar(32);index" json:"customer_phone,omitempty"`
	CustomerEmail string            `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	StartsAt      time.Time         `gorm:"not null;index" json:"starts_at"`
	EndsAt        time.Time         `gorm:"not null" json:"ends_at"`
	Status        AppointmentStatus `gorm:"type:appointment_status;not null;default:'booked';index" json:"status"`
	Remarks       string            `gorm:"type:text" json:"remarks,omitempty"`

	// Stamped by the reminder sweep; at most one reminder per appointment.
	ReminderEmailSentAt *time.Time `gorm:"index" json:"reminder_email_sent_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Staff Staff             `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Items []AppointmentItem `gorm:"foreignKey:AppointmentID" json:"items,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsBooked checks if the appointment still counts toward availability.
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}
