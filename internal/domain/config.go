package domain

// ConfigProvider provides configuration paths.
type ConfigProvider interface {
	GetConfigDir() (string, error)
	GetSettingsPath() (string, error)
	GetCredentialsPath() (string, error)
}
