package main

import (
	"fmt"
	"os"

	"github.com/prasetyowira/qrmailer/config"
	"github.com/prasetyowira/qrmailer/constant"
	"github.com/prasetyowira/qrmailer/domain/mailqr"
	appLogger "github.com/prasetyowira/qrmailer/infrastructure/logger"
	"github.com/prasetyowira/qrmailer/infrastructure/output"
	"github.com/prasetyowira/qrmailer/infrastructure/overlay"
	"github.com/prasetyowira/qrmailer/infrastructure/qrcode"
)

func main() {
	// Load configuration from command-line flags
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Initialize logger based on environment
	isProduction := cfg.LogLevel == "INFO"
	appLogger.Initialize(isProduction)
	defer appLogger.Close()

	ctx := appLogger.NewRunContext()

	appLogger.CtxInfo(ctx, constant.MsgApplicationStarting, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataEmail:       cfg.Email,
			constant.DataSubject:     cfg.Subject,
			constant.DataLogoPath:    cfg.LogoPath,
			constant.DataOutputPath:  cfg.OutputPath,
			constant.DataEnvironment: cfg.LogLevel,
		},
	})

	// Create mailqr service with its infrastructure adapters
	service := mailqr.NewService(
		ctx,
		qrcode.NewGenerator(),
		overlay.NewCompositor(),
		output.NewWriter(),
		output.NewViewer(),
	)

	req := mailqr.Request{
		Email:      cfg.Email,
		Subject:    cfg.Subject,
		Body:       cfg.Body,
		BodySet:    cfg.BodySet,
		LogoPath:   cfg.LogoPath,
		OutputPath: cfg.OutputPath,
	}

	if err := service.Generate(ctx, req); err != nil {
		appLogger.CtxError(ctx, constant.MsgGenerateFailed, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppGenerate,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
		appLogger.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf(constant.MsgSavedConfirmation, cfg.OutputPath)
}
