// Package report writes a solved run to disk, consolidating what the
// teacher split across its storage (metadata.json + CSV) and store
// (stdout/file JSON export) packages into a single writer.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kitewing/vsmgo/internal/result"
	"github.com/kitewing/vsmgo/internal/solver"
)

// Metadata is the run's fixed-shape summary, serialized as
// metadata.json alongside the per-panel distributions.csv.
type Metadata struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Model       string    `json:"model"`
	Iterations  int       `json:"iterations"`
	Residual    float64   `json:"residual"`
	Converged   bool      `json:"converged"`
	CL          float64   `json:"cl"`
	CD          float64   `json:"cd"`
	CM          float64   `json:"cm"`
	CS          float64   `json:"cs"`
	ProjectedArea float64 `json:"projected_area"`
}

// WriteRun writes metadata.json and distributions.csv into runDir,
// creating it if necessary, and returns the metadata written.
func WriteRun(runDir string, model solver.Model, solveResult *solver.Result, res *result.Result) (Metadata, error) {
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return Metadata{}, err
	}

	meta := Metadata{
		ID:            filepath.Base(runDir),
		Timestamp:     time.Now(),
		Model:         model.String(),
		CL:            res.CL,
		CD:            res.CD,
		CM:            res.CM,
		CS:            res.CS,
		ProjectedArea: res.ProjectedArea,
	}
	if solveResult != nil {
		meta.Iterations = solveResult.Iterations
		meta.Residual = solveResult.Residual
		meta.Converged = solveResult.Warning == nil
	}

	if err := writeMetadataJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return Metadata{}, err
	}
	if err := writeDistributionsCSV(filepath.Join(runDir, "distributions.csv"), res); err != nil {
		return Metadata{}, err
	}
	return meta, nil
}

func writeMetadataJSON(path string, meta Metadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeDistributionsCSV(path string, res *result.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"panel", "gamma", "alpha_rad", "cl", "cd", "cm"}); err != nil {
		return err
	}
	for i := range res.GammaDistribution {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(res.GammaDistribution[i], 'g', -1, 64),
			strconv.FormatFloat(res.AlphaArray[i], 'g', -1, 64),
			strconv.FormatFloat(res.ClDistribution[i], 'g', -1, 64),
			strconv.FormatFloat(res.CdDistribution[i], 'g', -1, 64),
			strconv.FormatFloat(res.CmDistribution[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON serializes res as a single JSON document to path, for
// callers that want one self-contained file rather than a run
// directory (mirrors the teacher's store.ExportJSON).
func WriteJSON(path string, model solver.Model, solveResult *solver.Result, res *result.Result) error {
	meta, err := metadataFor(model, solveResult, res)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// WriteJSONStdout writes the same document WriteJSON would to stdout,
// mirroring the teacher's store.ExportJSONStdout for pipeline use.
func WriteJSONStdout(model solver.Model, solveResult *solver.Result, res *result.Result) error {
	meta, err := metadataFor(model, solveResult, res)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func metadataFor(model solver.Model, solveResult *solver.Result, res *result.Result) (Metadata, error) {
	if res == nil {
		return Metadata{}, fmt.Errorf("report: nil result")
	}
	meta := Metadata{
		Timestamp:     time.Now(),
		Model:         model.String(),
		CL:            res.CL,
		CD:            res.CD,
		CM:            res.CM,
		CS:            res.CS,
		ProjectedArea: res.ProjectedArea,
	}
	if solveResult != nil {
		meta.Iterations = solveResult.Iterations
		meta.Residual = solveResult.Residual
		meta.Converged = solveResult.Warning == nil
	}
	return meta, nil
}

// NewRunID mints a filesystem-safe run identifier from a model name
// and timestamp, the way the teacher's Store.Save does for its
// runDir.
func NewRunID(model string, t time.Time) string {
	return fmt.Sprintf("%s_%d", model, t.Unix())
}
