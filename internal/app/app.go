// internal/app/app.go
package app

import (
	"bytes"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"plasmid-core/assembly"
	"plasmid-core/design"
	"plasmid-core/fasta"
	"plasmid-core/marker"
	"plasmid-core/ori"
	"plasmid-core/resite"
	"plasmid/internal/config"
	"plasmid/internal/output"
	"plasmid/internal/report"
)

// DesignOptions are the inputs of one design run.
type DesignOptions struct {
	In       string // genomic FASTA ("-" = stdin, .gz supported)
	Design   string // design file
	Markers  string // marker table; empty selects the built-in catalog
	Out      string // output FASTA
	Manifest string // optional placement manifest (.json selects JSON)
	Config   string // optional YAML config
}

// RunDesign performs one assembly: genome + design + catalog in, FASTA +
// manifest out. Output files are written only after assembly succeeds.
func RunDesign(opts DesignOptions, log *zap.Logger) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}

	rec, err := fasta.ReadFile(opts.In)
	if err != nil {
		return errors.Wrap(err, opts.In)
	}
	log.Info("loaded genome", zap.String("header", rec.ID), zap.Int("length", len(rec.Seq)))

	entries, err := loadDesign(opts.Design)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(opts.Markers, log)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log.Info("assembling", zap.String("run", runID), zap.Int("entries", len(entries)))

	asm := assembly.New(cat, ori.New(cfg.Ori), resite.NewIndex(cat), cfg.StripPasses)
	p, err := asm.Assemble(rec.Seq, entries)
	if err != nil {
		return errors.Wrap(err, "assemble")
	}
	log.Info("assembled", zap.Int("length", len(p.Seq)), zap.Int("segments", len(p.Segments)))

	header := "Designed_Plasmid_from_" + rec.ID
	var buf bytes.Buffer
	if err := fasta.Write(&buf, header, p.Seq, cfg.LineWidth); err != nil {
		return err
	}
	if err := os.WriteFile(opts.Out, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "write output")
	}

	if opts.Manifest != "" {
		m := output.NewManifest(runID, rec.ID, p)
		var mb bytes.Buffer
		if isJSONPath(opts.Manifest) {
			err = output.EncodePretty(&mb, m)
		} else {
			err = output.WriteTSV(&mb, m)
		}
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.Manifest, mb.Bytes(), 0o644); err != nil {
			return errors.Wrap(err, "write manifest")
		}
	}
	return nil
}

// AnalyzeOptions are the inputs of one analyze run.
type AnalyzeOptions struct {
	In      string
	Markers string
	JSON    bool
}

// RunAnalyze reports on an existing plasmid FASTA.
func RunAnalyze(opts AnalyzeOptions, w io.Writer, log *zap.Logger) error {
	rec, err := fasta.ReadFile(opts.In)
	if err != nil {
		return errors.Wrap(err, opts.In)
	}
	cat, err := loadCatalog(opts.Markers, log)
	if err != nil {
		return err
	}
	r, err := report.Analyze(rec.ID, rec.Seq, cat)
	if err != nil {
		return err
	}
	if opts.JSON {
		err = output.EncodePretty(w, r)
	} else {
		err = report.WriteText(w, r)
	}
	if output.IsBrokenPipe(err) {
		return nil
	}
	return err
}

// RunEnzymes lists the catalog's restriction enzymes as "<Name>: <Site>".
func RunEnzymes(markersPath string, w io.Writer, log *zap.Logger) error {
	cat, err := loadCatalog(markersPath, log)
	if err != nil {
		return err
	}
	for _, rec := range cat.Enzymes() {
		if _, err := io.WriteString(w, rec.Name+": "+string(rec.Seq)+"\n"); err != nil {
			if output.IsBrokenPipe(err) {
				return nil
			}
			return err
		}
	}
	return nil
}

func loadDesign(path string) ([]design.Entry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	entries, err := design.Parse(fh)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return entries, nil
}

func loadCatalog(path string, log *zap.Logger) (*marker.Catalog, error) {
	if path == "" {
		log.Warn("no marker table supplied, using built-in defaults")
		return marker.DefaultCatalog(), nil
	}
	cat, err := marker.ParseCatalogFile(path)
	if err != nil {
		return nil, err
	}
	for _, w := range cat.Warnings() {
		log.Warn(w)
	}
	return cat, nil
}

func isJSONPath(path string) bool {
	return len(path) > 5 && path[len(path)-5:] == ".json"
}
