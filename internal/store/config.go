package store

import "strings"

type Config struct {
	file string
}

type Option = func(c *Config)

// WithFile sets the path of the SQLite database file.
func WithFile(file string) Option {
	file = strings.TrimSpace(file)
	if file == "" {
		panic("file can't be blank")
	}
	if strings.Contains(file, "?") {
		panic("file can't contain ?")
	}
	return func(c *Config) {
		c.file = file
	}
}
