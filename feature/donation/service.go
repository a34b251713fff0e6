package donation

import (
	"archive/zip"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Processor runs the full extraction pipeline over a local donation archive.
type Processor struct {
	specs []Spec
	rules Replacements
	log   *zap.Logger
}

// NewProcessor creates a Processor. Nil specs select the default registry;
// nil rules disable reconciliation; nil log disables diagnostics.
func NewProcessor(specs []Spec, rules Replacements, log *zap.Logger) *Processor {
	if specs == nil {
		specs = DefaultSpecs()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{specs: specs, rules: rules, log: log}
}

// Run classifies the archive, reconciles participant identities and extracts
// all tables. The archive is opened twice: once to scan entry names, once to
// read the matched bodies. The run either completes or fails outright; no
// partial result is returned.
func (p *Processor) Run(archivePath string) (map[string]*Table, error) {
	log := p.log.With(zap.String("run_id", uuid.NewString()))

	names, err := archiveNames(archivePath)
	if err != nil {
		return nil, err
	}

	meta := Classify(names, p.specs)
	log.Info("archive classified",
		zap.Int("entries", len(names)),
		zap.Int("matched", len(meta)))

	meta = Reconcile(meta, p.rules, log)

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %q: %w", archivePath, err)
	}
	defer zr.Close()

	tables, err := Extract(&zr.Reader, meta, p.specs)
	if err != nil {
		return nil, err
	}

	log.Info("extraction complete",
		zap.Int("files", len(meta)),
		zap.Int("tables", len(tables)))
	return tables, nil
}

func archiveNames(archivePath string) ([]string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %q: %w", archivePath, err)
	}
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}
