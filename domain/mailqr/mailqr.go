package mailqr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/prasetyowira/qrmailer/constant"
	"github.com/prasetyowira/qrmailer/infrastructure/logger"
)

// Request carries everything needed to generate one QR code. BodySet
// distinguishes an explicitly empty body from an absent one; only the
// latter falls back to the default text.
type Request struct {
	Email      string
	Subject    string
	Body       string
	BodySet    bool
	LogoPath   string
	OutputPath string
}

// Encoder renders a payload string as a QR code raster.
type Encoder interface {
	Encode(content string) (image.Image, error)
}

// Compositor pastes a logo onto the center of a raster.
type Compositor interface {
	Overlay(base image.Image, logoPath string) (image.Image, error)
}

// Writer persists a raster to disk.
type Writer interface {
	Save(img image.Image, path string) error
}

// Viewer displays a saved image, best effort.
type Viewer interface {
	Show(path string) error
}

// Service represents the domain service for email QR generation
type Service struct {
	encoder    Encoder
	compositor Compositor
	writer     Writer
	viewer     Viewer
}

// NewService creates a new email QR service
func NewService(ctx context.Context, encoder Encoder, compositor Compositor, writer Writer, viewer Viewer) *Service {
	logger.CtxDebug(ctx, "Creating mailqr service", logger.LoggerInfo{
		ContextFunction: constant.CtxDomain,
		Data: map[string]interface{}{
			constant.DataService: "mailqr",
		},
	})

	return &Service{
		encoder:    encoder,
		compositor: compositor,
		writer:     writer,
		viewer:     viewer,
	}
}

// BuildMailtoLink assembles the mailto payload for the QR code. All three
// parts are inserted verbatim with no percent-encoding; mail clients accept
// unescaped queries and escaping would change the scanned payload.
func BuildMailtoLink(email, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", email, subject, body)
}

// Generate builds the mailto link, encodes it, overlays the logo, saves the
// result, and opens a viewer on it.
//
// A missing logo file is the one recovered failure: the QR code is written
// without a logo. Any other overlay error, and any encode or save error,
// aborts the run before the output file is written. Viewer failures are
// logged and ignored.
func (s *Service) Generate(ctx context.Context, req Request) error {
	logger.CtxDebug(ctx, constant.MsgBuildingLink, logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataEmail:   req.Email,
			constant.DataSubject: req.Subject,
			constant.DataBodySet: req.BodySet,
		},
	})

	body := req.Body
	if !req.BodySet {
		body = constant.DefaultBody
	}
	link := BuildMailtoLink(req.Email, req.Subject, body)

	logger.CtxDebug(ctx, constant.MsgLinkBuilt, logger.LoggerInfo{
		ContextFunction: constant.CtxBuildLink,
		Data: map[string]interface{}{
			constant.DataLink:       link,
			constant.DataLinkLength: len(link),
		},
	})

	logger.CtxDebug(ctx, constant.MsgEncodingQR, logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
	})

	img, err := s.encoder.Encode(link)
	if err != nil {
		logger.CtxError(ctx, constant.MsgGenerateFailed, logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeEncode,
				Message: err.Error(),
				Type:    constant.ErrTypeEncode,
			},
			Data: map[string]interface{}{
				constant.DataLinkLength: len(link),
			},
		})
		return err
	}

	logger.CtxDebug(ctx, constant.MsgQREncoded, logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataWidth:  img.Bounds().Dx(),
			constant.DataHeight: img.Bounds().Dy(),
		},
	})

	logger.CtxDebug(ctx, constant.MsgOverlayingLogo, logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataLogoPath: req.LogoPath,
		},
	})

	composed, err := s.compositor.Overlay(img, req.LogoPath)
	switch {
	case err == nil:
		logger.CtxDebug(ctx, constant.MsgLogoOverlaid, logger.LoggerInfo{
			ContextFunction: constant.CtxOverlay,
			Data: map[string]interface{}{
				constant.DataLogoPath: req.LogoPath,
			},
		})
		img = composed
	case errors.Is(err, fs.ErrNotExist):
		// Only a missing file is recovered. Corrupt or unreadable
		// logos abort the run.
		fmt.Println(constant.MsgLogoNotFound)
		logger.CtxWarn(ctx, constant.MsgLogoNotFound, logger.LoggerInfo{
			ContextFunction: constant.CtxOverlay,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeLogoAbsent,
				Message: err.Error(),
				Type:    constant.ErrTypeOverlay,
			},
			Data: map[string]interface{}{
				constant.DataLogoPath: req.LogoPath,
			},
		})
	default:
		logger.CtxError(ctx, constant.MsgGenerateFailed, logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeOverlay,
				Message: err.Error(),
				Type:    constant.ErrTypeOverlay,
			},
			Data: map[string]interface{}{
				constant.DataLogoPath: req.LogoPath,
			},
		})
		return err
	}

	logger.CtxDebug(ctx, constant.MsgSavingImage, logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataOutputPath: req.OutputPath,
		},
	})

	if err := s.writer.Save(img, req.OutputPath); err != nil {
		logger.CtxError(ctx, constant.MsgGenerateFailed, logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeSave,
				Message: err.Error(),
				Type:    constant.ErrTypeOutput,
			},
			Data: map[string]interface{}{
				constant.DataOutputPath: req.OutputPath,
			},
		})
		return err
	}

	logger.CtxInfo(ctx, constant.MsgImageSaved, logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataOutputPath: req.OutputPath,
			constant.DataWidth:      img.Bounds().Dx(),
			constant.DataHeight:     img.Bounds().Dy(),
		},
	})

	logger.CtxDebug(ctx, constant.MsgOpeningViewer, logger.LoggerInfo{
		ContextFunction: constant.CtxShow,
		Data: map[string]interface{}{
			constant.DataOutputPath: req.OutputPath,
		},
	})

	if err := s.viewer.Show(req.OutputPath); err != nil {
		// Fire and forget; headless environments have no viewer.
		logger.CtxWarn(ctx, constant.MsgViewerFailed, logger.LoggerInfo{
			ContextFunction: constant.CtxShow,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeShow,
				Message: err.Error(),
				Type:    constant.ErrTypeViewer,
			},
			Data: map[string]interface{}{
				constant.DataOutputPath: req.OutputPath,
			},
		})
	}

	return nil
}
