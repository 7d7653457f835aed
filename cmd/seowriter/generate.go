package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/TobiSchelling/seowriter/internal/config"
	"github.com/TobiSchelling/seowriter/internal/console"
	"github.com/TobiSchelling/seowriter/internal/llm"
	"github.com/TobiSchelling/seowriter/internal/pipeline"
	"github.com/TobiSchelling/seowriter/internal/report"
)

var errRunFailed = errors.New("article generation failed")

type generateOptions struct {
	cfg        *config.Config
	provider   llm.Provider
	prompter   *console.Prompter
	out        io.Writer
	log        *zap.SugaredLogger
	reportPath string
	// interrupt, when set, scopes ctx to the model calls. It is installed
	// after the prompts so an interrupt while typing still ends the process.
	interrupt  func(context.Context) (context.Context, context.CancelFunc)
}

// generate collects a request, runs the pipeline and persists the report.
// Missing required fields end the run quietly before any model call.
func generate(ctx context.Context, o generateOptions) error {
	req, err := o.prompter.ReadRequest()
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		o.log.Warn(err.Error())
		return nil
	}

	if o.interrupt != nil {
		var stop context.CancelFunc
		ctx, stop = o.interrupt(ctx)
		defer stop()
	}
	if err := ctx.Err(); err != nil {
		o.log.Warnf("Generation cancelled: %v", err)
		return nil
	}

	client := llm.NewClient(o.provider, o.cfg.Generation.RequestTimeout, o.log)
	pipe := pipeline.New(client, o.log, o.cfg.Generation.Concurrent)
	result := pipe.Run(ctx, req)

	if !result.Failed || o.cfg.Output.WritePartial {
		if err := report.WriteFile(o.reportPath, result.Report); err != nil {
			o.log.Errorf("An error occurred while saving the article and its details: %v", err)
		} else {
			o.log.Infof("Article and its details successfully saved to %s", o.reportPath)
		}
	}

	if !result.Failed {
		fmt.Fprintln(o.out)
		if err := report.Render(o.out, result.Report); err != nil {
			return err
		}
	}

	fmt.Fprintln(o.out)
	for i, step := range result.Steps {
		fmt.Fprintf(o.out, "Step %d/6: %s\n", i+1, step.Name)
		if step.Err != nil {
			fmt.Fprintf(o.out, "  Error: %v\n", step.Err)
		} else {
			fmt.Fprintf(o.out, "  %s\n", step.Summary)
		}
	}

	if result.Failed {
		return errRunFailed
	}
	return nil
}
