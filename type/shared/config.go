package shared

type Config struct {
	Port             *string   `yaml:"port" validate:"required"`
	Cors             []*string `yaml:"cors"`
	SignNowApiUrl    *string   `yaml:"signnow_api_url" validate:"required"`
	SignNowClientId  *string   `yaml:"signnow_client_id" validate:"required"`
	SignNowSecret    *string   `yaml:"signnow_client_secret" validate:"required"`
	SignNowUser      *string   `yaml:"signnow_user" validate:"required"`
	SignNowPassword  *string   `yaml:"signnow_password" validate:"required"`
	WebhookSecretKey *string   `yaml:"webhook_secret_key" validate:"required"`
	JWTSecret        *string   `yaml:"jwt_secret"`
	MinIoEndpoint    *string   `yaml:"minio_endpoint"`
	MinIoAccessKey   *string   `yaml:"minio_access_key"`
	MinIoSecretKey   *string   `yaml:"minio_secret_key"`
	BucketSigned     *string   `yaml:"bucket_signed"`
	MailHost         *string   `yaml:"mail_host"`
	MailUser         *string   `yaml:"mail_user"`
	MailPass         *string   `yaml:"mail_pass"`
	MailNotify       *string   `yaml:"mail_notify"`
}

// ArchiveEnabled reports whether the signed-document archive is fully configured.
func (c *Config) ArchiveEnabled() bool {
	return c.MinIoEndpoint != nil && c.MinIoAccessKey != nil && c.MinIoSecretKey != nil && c.BucketSigned != nil
}

// MailEnabled reports whether the notification mailer is fully configured.
func (c *Config) MailEnabled() bool {
	return c.MailHost != nil && c.MailUser != nil && c.MailPass != nil && c.MailNotify != nil
}
