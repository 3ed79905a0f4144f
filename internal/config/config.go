/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config gathers everything the application reads from the environment
type Config struct {
	ListenAddr  string // Address the HTTP server binds to
	DBPath      string // Path of the SQLite database file
	TemplateDir string // Directory holding the HTML templates
	SecretKey   string // Key used to sign the session cookies

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	PageSize int // Items per page on every listing
}

// Load reads the configuration from the environment using Viper,
// falling back to defaults that work for local development
func Load() *Config {
	viper.SetDefault("LISTEN_ADDR", ":8080")
	viper.SetDefault("DB_PATH", "blog.db")
	viper.SetDefault("TEMPLATE_DIR", "web/templates")
	viper.SetDefault("SECRET_KEY", "dev-only-secret")
	viper.SetDefault("READ_TIMEOUT", 10*time.Second)
	viper.SetDefault("WRITE_TIMEOUT", 10*time.Second)
	viper.SetDefault("PAGE_SIZE", 10)

	viper.AutomaticEnv()

	return &Config{
		ListenAddr:   viper.GetString("LISTEN_ADDR"),
		DBPath:       viper.GetString("DB_PATH"),
		TemplateDir:  viper.GetString("TEMPLATE_DIR"),
		SecretKey:    viper.GetString("SECRET_KEY"),
		ReadTimeout:  viper.GetDuration("READ_TIMEOUT"),
		WriteTimeout: viper.GetDuration("WRITE_TIMEOUT"),
		PageSize:     viper.GetInt("PAGE_SIZE"),
	}
}
