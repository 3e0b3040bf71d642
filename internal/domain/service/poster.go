package service

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/biox-systems/biox-qr/internal/adapters/config"
	"github.com/biox-systems/biox-qr/internal/adapters/logger"
	"github.com/biox-systems/biox-qr/internal/domain/poster"
	"github.com/biox-systems/biox-qr/pkg/colorx"
	qr "github.com/biox-systems/biox-qr/pkg/qrcode"
)

// PosterService runs the whole pipeline for one invocation: normalize
// colors, render the QR bitmap, compose the poster, persist the PNG.
type PosterService struct {
	log *logger.Logger
}

func NewPosterService(log *logger.Logger) *PosterService {
	return &PosterService{log: log}
}

// Generate renders the poster for data and writes it to cfg.Out, returning
// the written path. The file is only persisted after every composition step
// succeeded; a failure leaves no partial output behind.
func (s *PosterService) Generate(data string, cfg *config.Config) (string, error) {
	dark, _ := colorx.Parse(colorx.Normalize(cfg.Dark, "#000000"))
	light, _ := colorx.Parse(colorx.Normalize(cfg.Light, "#ffffff"))

	qrCfg := qr.Config{
		Content:    data,
		TargetSize: cfg.Size,
		Border:     cfg.Border,
		Foreground: dark,
		Background: light,
		LogoPath:   cfg.Logo,
	}
	qrImg, err := qrCfg.Render()
	if err != nil {
		return "", err
	}
	s.log.Debugf("qr bitmap: %dpx for target %dpx", qrImg.Bounds().Dx(), cfg.Size)

	layout := poster.Layout{
		Title:        cfg.Title,
		Subtitle:     cfg.Subtitle,
		Footer:       cfg.Footer,
		Background:   light,
		Foreground:   dark,
		Pad:          cfg.Pad,
		TitleGap:     cfg.TitleGap,
		BlockGap:     cfg.BlockGap,
		LineGap:      cfg.LineGap,
		WrapWidth:    cfg.WrapWidth,
		TitleSize:    cfg.TitleSize,
		SubtitleSize: cfg.SubtitleSize,
		FooterSize:   cfg.FooterSize,
	}
	canvas := poster.Compose(layout, qrImg)
	s.log.Debugf("canvas: %dx%d", canvas.Bounds().Dx(), canvas.Bounds().Dy())

	var buf bytes.Buffer
	if err = png.Encode(&buf, canvas); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	if err = writeAtomic(cfg.Out, buf.Bytes()); err != nil {
		return "", err
	}
	return cfg.Out, nil
}

// writeAtomic persists data through a uniquely named temp file beside the
// destination and a rename, so the destination is either the previous file
// or the complete new one, never a truncated write.
func writeAtomic(path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path),
		fmt.Sprintf("%s.%.8s.tmp", filepath.Base(path), uuid.New().String()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
