// Package environment names the deployment environment and carries it through
// request contexts.
//
// Environment implements encoding.TextUnmarshaler so configuration structs can
// decode it directly:
//
//	type Config struct {
//		Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
// Middleware stores the environment in every request context; FromContext and
// LoggerExtractor read it back.
package environment
