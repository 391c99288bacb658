package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Salon    SalonConfig
	Mail     MailConfig
	SMS      SMSConfig
	Booking  BookingConfig
	Reminder ReminderConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SalonConfig is rendered into confirmation and reminder messages.
type SalonConfig struct {
	Name    string
	Phone   string
	Address string
}

type MailConfig struct {
	SMTPHost string
	SMTPPort string
	From     string
}

type SMSConfig struct {
	WebhookURL string
	Token      string
}

type BookingConfig struct {
	// SlotStepMin is the slot start granularity in minutes.
	SlotStepMin int
	// HorizonDays bounds the next-open-day scan.
	HorizonDays int
	// NoShowBlockThreshold is how many no-shows block a phone number.
	NoShowBlockThreshold int
}

type ReminderConfig struct {
	// Interval between sweep runs.
	Interval time.Duration
	// Reminders go to appointments starting within [WindowStartMin, WindowEndMin)
	// minutes from now.
	WindowStartMin int
	WindowEndMin   int
	// MinLeadTime skips appointments booked too close to their start; a
	// reminder right after the confirmation email would just be noise.
	MinLeadTime time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	reminderInterval, err := time.ParseDuration(viper.GetString("REMINDER_INTERVAL"))
	if err != nil {
		reminderInterval = 5 * time.Minute
	}

	minLeadTime, err := time.ParseDuration(viper.GetString("REMINDER_MIN_LEAD_TIME"))
	if err != nil {
		minLeadTime = 2 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Salon: SalonConfig{
			Name:    getStringOrDefault("SALON_NAME", "Beauty Salon"),
			Phone:   getStringOrDefault("SALON_PHONE", "+961 70 000 000"),
			Address: getStringOrDefault("SALON_ADDRESS", "Hamra, Beirut"),
		},
		Mail: MailConfig{
			SMTPHost: viper.GetString("SMTP_HOST"),
			SMTPPort: viper.GetString("SMTP_PORT"),
			From:     getStringOrDefault("MAIL_FROM", "bookings@salon.local"),
		},
		SMS: SMSConfig{
			WebhookURL: viper.GetString("SMS_WEBHOOK_URL"),
			Token:      viper.GetString("SMS_WEBHOOK_TOKEN"),
		},
		Booking: BookingConfig{
			SlotStepMin:          getIntOrDefault("BOOKING_SLOT_STEP_MIN", 30),
			HorizonDays:          getIntOrDefault("BOOKING_HORIZON_DAYS", 60),
			NoShowBlockThreshold: getIntOrDefault("NO_SHOW_BLOCK_THRESHOLD", 2),
		},
		Reminder: ReminderConfig{
			Interval:       reminderInterval,
			WindowStartMin: getIntOrDefault("REMINDER_WINDOW_START_MIN", 50),
			WindowEndMin:   getIntOrDefault("REMINDER_WINDOW_END_MIN", 70),
			MinLeadTime:    minLeadTime,
		},
	}

	return config, nil
}

func getStringOrDefault(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func getIntOrDefault(key string, fallback int) int {
	if viper.IsSet(key) && viper.GetInt(key) != 0 {
		return viper.GetInt(key)
	}
	return fallback
}
