package config

var Conf Config

type Config struct {
	Application Application `yaml:"application" json:"application"`
}

type Application struct {
	DisplayName string     `yaml:"display-name" json:"display_name"`
	Server      Server     `yaml:"server" json:"server"`
	Datasource  Datasource `yaml:"datasource" json:"datasource"`
	Migration   string     `yaml:"migration"`
	Security    Security   `yaml:"security" json:"security"`
	Redis       Redis      `yaml:"redis" json:"redis"`
	WebAuthn    WebAuthn   `yaml:"webauthn" json:"webauthn"`
	Kafka       Kafka      `yaml:"kafka" json:"kafka"`
	Analytics   Analytics  `yaml:"analytics" json:"analytics"`
	Admin       Admin      `yaml:"admin" json:"admin"`
}

type Server struct {
	ContextPath string `yaml:"context-path" json:"context_path"`
	ApiVersion  string `yaml:"api-version" json:"api_version"`
	Port        string `yaml:"port"`
}

type Datasource struct {
	PrimaryURL            string `yaml:"primary-url" json:"primary_url"`
	MaxIdleConnections    int    `yaml:"max-idle-connections" json:"max_idle_connections"`
	MaxOpenConnections    int    `yaml:"max-open-connections" json:"max_open_connections"`
	ConnectionMaxLifetime int    `yaml:"connection-max-lifetime" json:"connection_max_lifetime"`
}

type Security struct {
	Secret                 string `yaml:"secret" json:"-"`
	Issuer                 string `yaml:"issuer" json:"issuer"`
	TokenValidityInSeconds int    `yaml:"token-validity-in-seconds" json:"token_validity_in_seconds"`
}

type Redis struct {
	Host string `yaml:"address" json:"address"`
}

type WebAuthn struct {
	RpDisplayName string `yaml:"rp-display-name" json:"rp_display_name"`
	RpOrigin      string `yaml:"rp-origin" json:"rp_origin"`
	RpID          string `yaml:"rp-id" json:"rp_id"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" json:"brokers"`
	Topic   string   `yaml:"topic" json:"topic"`
}

type Analytics struct {
	EnableDetailedTracking bool `yaml:"enable-detailed-tracking" json:"enable_detailed_tracking"`
}

type Admin struct {
	Emails []string `yaml:"emails" json:"emails"`
}
