package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biox-systems/biox-qr/internal/adapters/config"
	"github.com/biox-systems/biox-qr/internal/adapters/logger"
	"github.com/biox-systems/biox-qr/internal/domain/service"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "biox-qr",
	Short:         "Branded QR poster generator",
	Long:          "biox-qr renders a print-ready PNG poster: title, subtitle, a scannable QR code with an optional centered logo, and a footer.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var generateCmd = &cobra.Command{
	Use:   "generate <data>",
	Short: "Render a QR poster for the given URL or text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if err = logger.Init(logger.Config{Debug: cfg.Debug}); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log, err := logger.Named("poster")
		if err != nil {
			return err
		}

		out, err := service.NewPosterService(log).Generate(args[0], cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Saved: %s\n", out)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the biox-qr version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default bioxqr.yaml in the working directory)")
	flags.String("out", "qr_biox.png", "output PNG path")
	flags.String("title", "Biox Systems", "title text; empty omits the block")
	flags.String("subtitle", "AI QR Code Generator", "subtitle text; empty omits the block")
	flags.String("footer", "Biox Systems • AI QR Code Generator • 1994→2025", "footer text; empty omits the block")
	flags.String("logo", "", "logo image composited at the QR center; ignored if missing")
	flags.String("dark", "#000000", "module color, hex or color name")
	flags.String("light", "#ffffff", "background color, hex or color name")
	flags.Int("size", 1024, "target QR width in pixels; rendered width never exceeds it")
	flags.Int("border", 4, "quiet-zone width in modules")
	flags.Int("pad", 80, "outer canvas padding in pixels")
	flags.Bool("debug", false, "verbose logging")

	for flag, key := range map[string]string{
		"out":      "output.path",
		"title":    "poster.title",
		"subtitle": "poster.subtitle",
		"footer":   "poster.footer",
		"logo":     "qr.logo",
		"dark":     "qr.dark",
		"light":    "qr.light",
		"size":     "qr.size",
		"border":   "qr.border",
		"pad":      "poster.pad",
		"debug":    "settings.debug",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(generateCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
