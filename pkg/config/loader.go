package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	loaded = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// Load populates the configuration struct from environment variables,
// loading a .env file first if one exists. Each configuration type is
// parsed once per process; later calls return the cached value so every
// component sees identical policy.
//
//	type Config struct {
//	    SigningKey string        `env:"SESSION_SIGNING_KEY,required"`
//	    TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// Missing .env is fine; real environments set variables directly.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	loaded[key] = cfg
	*v = cfg
	return nil
}

// Reset clears cached configurations. Intended for tests that mutate
// the environment between loads.
func Reset() {
	mu.Lock()
	loaded = make(map[string]any)
	mu.Unlock()
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.PkgPath() + "." + t.Name()
}
