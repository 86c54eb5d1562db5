package config

import "time"

const (
	defaultTokenDuration       = time.Hour
	defaultTokenIssuer         = "go-travel-board"
	defaultRequestTimeout      = 10 * time.Second
	defaultUsersServiceURL     = "http://users:5000"
	defaultUsersServiceTimeout = 5 * time.Second
	defaultDBPort              = 5432
	defaultDBSSLMode           = "disable"
	defaultDotEnvPath          = ".env"
	dotEnvPathVariable         = "ENV_FILE"
)

var defaultAddresses = map[Service]string{
	ServiceUsers:  ":5000",
	ServicePosts:  ":5001",
	ServiceRoutes: ":5002",
}

// defaults returns the lowest-priority layer of the configuration.
// Boolean options all default to false so that any later source can enable them.
func defaults(service Service) *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration:  defaultTokenDuration,
			TokenIssuer:    defaultTokenIssuer,
			RoutesAuthMode: RoutesAuthValidate,
		},
		Storage: Storage{
			DB: DB{
				Port:    defaultDBPort,
				SSLMode: defaultDBSSLMode,
			},
		},
		Server: Server{
			HTTPAddress:    defaultAddresses[service],
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			UsersServiceURL: defaultUsersServiceURL,
			RequestTimeout:  defaultUsersServiceTimeout,
		},
	}
}
