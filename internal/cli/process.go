package cmd

import (
	"fmt"
	"time"

	"github.com/rohmanhakim/docs-toc/internal/config"
	"github.com/rohmanhakim/docs-toc/internal/inject"
	"github.com/rohmanhakim/docs-toc/internal/mdexport"
	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/internal/source"
	"github.com/rohmanhakim/docs-toc/internal/storage"
	"github.com/rohmanhakim/docs-toc/internal/toc"
	"github.com/rohmanhakim/docs-toc/internal/verify"
)

/*
pipeline runs one page through every stage:

	load -> inject -> verify (optional) -> markdown (optional) -> write (unless dry run)

Stages record their own failures on the metadata sink; the pipeline only
decides whether to continue.
*/
type pipeline struct {
	cfg          config.Config
	metadataSink metadata.MetadataSink
	loader       source.Loader
	injector     inject.Injector
	verifier     verify.Verifier
	exporter     mdexport.Exporter
	sink         storage.Sink
}

func newPipeline(cfg config.Config, metadataSink metadata.MetadataSink) pipeline {
	localSink := storage.NewLocalSink(metadataSink)
	return pipeline{
		cfg:          cfg,
		metadataSink: metadataSink,
		loader:       source.NewLoader(metadataSink),
		injector:     inject.NewInjector(cfg, toc.NewExtractor(cfg), metadataSink),
		verifier:     verify.NewVerifier(metadataSink),
		exporter:     mdexport.NewExporter(metadataSink),
		sink:         &localSink,
	}
}

// fileSummary is what the command prints for one processed page.
type fileSummary struct {
	path     string
	headings int
	inserted bool
	problems int
	written  string
}

func (s fileSummary) String() string {
	placement := "anchors only"
	if s.inserted {
		placement = "toc inserted"
	}
	line := fmt.Sprintf("%s: %d headings, %s", s.path, s.headings, placement)
	if s.problems > 0 {
		line += fmt.Sprintf(", %d problems", s.problems)
	}
	if s.written != "" {
		line += " -> " + s.written
	}
	return line
}

func (p pipeline) process(path string) (fileSummary, error) {
	summary := fileSummary{path: path}

	doc, loadErr := p.loader.Load(path)
	if loadErr != nil {
		return summary, loadErr
	}

	start := time.Now()
	out, err := p.injector.Apply(doc.HTML, doc.Title)
	if err != nil {
		return summary, err
	}
	p.metadataSink.RecordExtraction(metadata.NewExtractionEvent(
		path,
		len(out.Result.Headings),
		p.cfg.Hierarchical(),
		time.Since(start),
	))
	summary.headings = len(out.Result.Headings)
	summary.inserted = out.Inserted()

	if p.cfg.Verify() {
		report, verifyErr := p.verifier.Verify(path, out.Content, out.Result.Headings)
		summary.problems = len(report.Problems)
		if verifyErr != nil {
			return summary, verifyErr
		}
	}

	var markdown string
	if p.cfg.ExportMarkdown() {
		md, exportErr := p.exporter.Convert(out.Result.Items)
		if exportErr != nil {
			return summary, exportErr
		}
		markdown = md
	}

	if p.cfg.DryRun() {
		return summary, nil
	}

	result, writeErr := p.sink.Write(p.cfg.OutputDir(), storage.Artifact{
		Name:       doc.Name,
		SourcePath: path,
		Page:       out.Content,
		TOC:        out.Container,
		Markdown:   markdown,
	}, p.cfg.HashAlgo())
	if writeErr != nil {
		return summary, writeErr
	}
	summary.written = result.Path(metadata.ArtifactPage)
	return summary, nil
}
