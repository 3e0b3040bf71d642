package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the materialized poster configuration for one invocation.
// Precedence is CLI flag > config file > built-in default; the flags are
// bound into viper by the CLI before Load runs.
type Config struct {
	Out string

	Title    string
	Subtitle string
	Footer   string

	Pad       int
	TitleGap  int
	BlockGap  int
	LineGap   int
	WrapWidth int

	TitleSize    float64
	SubtitleSize float64
	FooterSize   float64

	Size   int
	Border int
	Dark   string
	Light  string
	Logo   string

	Debug bool
}

func setDefaults() {
	viper.SetDefault("output.path", "qr_biox.png")

	viper.SetDefault("poster.title", "Biox Systems")
	viper.SetDefault("poster.subtitle", "AI QR Code Generator")
	viper.SetDefault("poster.footer", "Biox Systems • AI QR Code Generator • 1994→2025")
	viper.SetDefault("poster.pad", 80)
	viper.SetDefault("poster.title-gap", 8)
	viper.SetDefault("poster.block-gap", 24)
	viper.SetDefault("poster.line-gap", 4)
	viper.SetDefault("poster.wrap-width", 50)
	viper.SetDefault("poster.title-size", 72.0)
	viper.SetDefault("poster.subtitle-size", 36.0)
	viper.SetDefault("poster.footer-size", 28.0)

	viper.SetDefault("qr.size", 1024)
	viper.SetDefault("qr.border", 4)
	viper.SetDefault("qr.dark", "#000000")
	viper.SetDefault("qr.light", "#ffffff")
	viper.SetDefault("qr.logo", "")

	viper.SetDefault("settings.debug", false)
}

// Load reads the optional config file and returns the materialized Config.
// With path empty, a bioxqr.yaml in the working directory is picked up if
// present; a missing file is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	setDefaults()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("bioxqr")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Out: viper.GetString("output.path"),

		Title:    viper.GetString("poster.title"),
		Subtitle: viper.GetString("poster.subtitle"),
		Footer:   viper.GetString("poster.footer"),

		Pad:       viper.GetInt("poster.pad"),
		TitleGap:  viper.GetInt("poster.title-gap"),
		BlockGap:  viper.GetInt("poster.block-gap"),
		LineGap:   viper.GetInt("poster.line-gap"),
		WrapWidth: viper.GetInt("poster.wrap-width"),

		TitleSize:    viper.GetFloat64("poster.title-size"),
		SubtitleSize: viper.GetFloat64("poster.subtitle-size"),
		FooterSize:   viper.GetFloat64("poster.footer-size"),

		Size:   viper.GetInt("qr.size"),
		Border: viper.GetInt("qr.border"),
		Dark:   viper.GetString("qr.dark"),
		Light:  viper.GetString("qr.light"),
		Logo:   viper.GetString("qr.logo"),

		Debug: viper.GetBool("settings.debug"),
	}, nil
}
