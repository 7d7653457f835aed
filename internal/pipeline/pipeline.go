package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TobiSchelling/seowriter/internal/article"
	"github.com/TobiSchelling/seowriter/internal/llm"
	"github.com/TobiSchelling/seowriter/internal/readability"
	"github.com/TobiSchelling/seowriter/internal/report"
)

// ErrArticleMissing marks a run whose article stage produced nothing.
var ErrArticleMissing = errors.New("failed to generate the article")

// Step names, in execution order.
const (
	StepSEOTitle    = "SEO Title"
	StepMeta        = "Meta Description"
	StepOutline     = "Outline"
	StepArticle     = "Article"
	StepReadability = "Readability"
	StepEvaluation  = "Content Evaluation"
)

// StepResult holds the result of a single pipeline step.
type StepResult struct {
	Name    string
	Summary string
	Err     error
}

// Result holds the results of a full pipeline run.
type Result struct {
	Report *report.Report
	Steps  []StepResult
	// Failed is set when the article gate closed and evaluation was skipped.
	Failed bool
}

// Pipeline orchestrates the generation and evaluation stages for one article.
type Pipeline struct {
	client     *llm.Client
	log        *zap.SugaredLogger
	concurrent bool
}

// New creates a new pipeline. When concurrent is set the title, meta
// description and outline stages run in parallel.
func New(client *llm.Client, log *zap.SugaredLogger, concurrent bool) *Pipeline {
	return &Pipeline{client: client, log: log, concurrent: concurrent}
}

type task struct {
	step   string
	name   string
	prompt llm.Prompt
}

// Run executes every stage for req. Stages never abort the run except the
// article stage, which gates readability scoring and content evaluation.
func (p *Pipeline) Run(ctx context.Context, req article.Request) *Result {
	r := &Result{Report: &report.Report{}}

	p.log.Info("Generating SEO title, meta description and outline...")
	roots := []task{
		{StepSEOTitle, "SEO title", article.SEOTitlePrompt(req)},
		{StepMeta, "meta description", article.MetaDescriptionPrompt(req)},
		{StepOutline, "outline", article.OutlinePrompt(req)},
	}
	results := p.runRoots(ctx, roots)
	r.Report.SEOTitle = results[0].Value()
	r.Report.MetaDescription = results[1].Value()
	r.Report.Outline = results[2].Value()
	for i, t := range roots {
		r.Steps = append(r.Steps, stepFor(t.step, results[i]))
	}

	step := p.runArticle(ctx, req, r.Report)
	r.Steps = append(r.Steps, step)
	if step.Err != nil {
		p.log.Error("Failed to generate the article.")
		r.Failed = true
		return r
	}

	p.log.Info("Evaluating article quality...")
	r.Steps = append(r.Steps, p.runReadability(r.Report))
	r.Steps = append(r.Steps, p.runEvaluation(ctx, r.Report))

	return r
}

// runRoots runs independent tasks and returns their results in task order,
// regardless of completion order.
func (p *Pipeline) runRoots(ctx context.Context, tasks []task) []llm.Result {
	results := make([]llm.Result, len(tasks))
	if !p.concurrent {
		for i, t := range tasks {
			results[i] = p.client.Complete(ctx, t.name, t.prompt, 0)
		}
		return results
	}

	// A model failure stays local to its task. Only cancellation of the
	// run itself is returned, which stops the sibling requests.
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tasks {
		g.Go(func() error {
			results[i] = p.client.Complete(gctx, t.name, t.prompt, 0)
			if errors.Is(results[i].Err, context.Canceled) {
				return results[i].Err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.log.Warnf("Generation interrupted: %v", err)
	}
	return results
}

func (p *Pipeline) runArticle(ctx context.Context, req article.Request, rep *report.Report) StepResult {
	words, known := article.WordCount(req.Length)
	if !known {
		p.log.Warnf("Unrecognised article length %q, using the medium length of %d words", req.Length, words)
	}
	maxTokens := article.TokenBudget(words)

	p.log.Info("Generating article. Please wait, this may take a few minutes...")
	res := p.client.Complete(ctx, "article", article.ArticlePrompt(req, words), maxTokens)
	rep.Article = res.Value()
	if !res.OK() {
		return StepResult{Name: StepArticle, Err: fmt.Errorf("%w: %w", ErrArticleMissing, res.Err)}
	}
	return StepResult{
		Name:    StepArticle,
		Summary: fmt.Sprintf("Generated %d characters (target %d words, %d token budget)", len(res.Text), words, maxTokens),
	}
}

func (p *Pipeline) runReadability(rep *report.Report) StepResult {
	scores, err := readability.Score(*rep.Article)
	if err != nil {
		p.log.Errorf("An error occurred while calculating readability: %v", err)
		return StepResult{Name: StepReadability, Err: err}
	}
	rep.Readability = scores
	return StepResult{
		Name:    StepReadability,
		Summary: fmt.Sprintf("Reading ease %.2f, grade level %.2f", scores.ReadingEase, scores.Grade),
	}
}

func (p *Pipeline) runEvaluation(ctx context.Context, rep *report.Report) StepResult {
	res := p.client.Complete(ctx, "content evaluation", article.CritiquePrompt(*rep.Article), 0)
	rep.Evaluation = res.Value()
	return stepFor(StepEvaluation, res)
}

func stepFor(name string, res llm.Result) StepResult {
	if !res.OK() {
		return StepResult{Name: name, Err: res.Err}
	}
	return StepResult{Name: name, Summary: fmt.Sprintf("Generated %d characters", len(res.Text))}
}
