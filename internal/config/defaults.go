package config

import "time"

// Built-in defaults applied after every other source.
const (
	DefaultPIN             = "1234"
	DefaultTokenIssuer     = "go-doc-keeper"
	DefaultSessionDuration = 8 * time.Hour
	DefaultDSN             = "doc-keeper.db"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultAdapterAddress  = "http://localhost:8080"
	DefaultAdapterTimeout  = 10 * time.Second
	DefaultSweepInterval   = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PIN:             DefaultPIN,
			TokenIssuer:     DefaultTokenIssuer,
			SessionDuration: DefaultSessionDuration,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			SweepInterval: DefaultSweepInterval,
		},
	}
}
