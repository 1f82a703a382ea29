package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Turso         TursoConfig
	AdminEmails   []string
	Cloudinary    CloudinaryConfig
	Slack         SlackConfig
	ProjectID     string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// CloudinaryConfig may be left empty; photo uploads fail with an explicit
// error when it is.
type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}
