// Command vsm solves steady aerodynamic loads on a lifting surface via
// the vortex step method or classic lifting-line theory.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/kitewing/vsmgo/internal/body"
	"github.com/kitewing/vsmgo/internal/compute"
	"github.com/kitewing/vsmgo/internal/report"
	"github.com/kitewing/vsmgo/internal/result"
	"github.com/kitewing/vsmgo/internal/settings"
	"github.com/kitewing/vsmgo/internal/solver"
	"github.com/kitewing/vsmgo/internal/sweep"
	"github.com/kitewing/vsmgo/internal/vecmath"
)

var (
	dataDir     string
	settingsFile string
	presetCategory string
	presetName  string
	alphaDeg    float64
	airspeed    float64
	sweepStart  float64
	sweepEnd    float64
	sweepStep   float64
	outPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vsm",
		Short: "vortex step method / lifting-line solver",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vsm", "run output directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve one operating point and print coefficients",
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&settingsFile, "settings", "", "settings YAML path")
	solveCmd.Flags().StringVar(&presetCategory, "preset-category", "", "preset category")
	solveCmd.Flags().StringVar(&presetName, "preset", "", "preset name")
	solveCmd.Flags().Float64Var(&alphaDeg, "alpha", 5.0, "angle of attack, degrees")
	solveCmd.Flags().Float64Var(&airspeed, "airspeed", 20.0, "freestream airspeed, m/s")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep angle of attack and plot CL",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&settingsFile, "settings", "", "settings YAML path")
	sweepCmd.Flags().StringVar(&presetCategory, "preset-category", "", "preset category")
	sweepCmd.Flags().StringVar(&presetName, "preset", "", "preset name")
	sweepCmd.Flags().Float64Var(&airspeed, "airspeed", 20.0, "freestream airspeed, m/s")
	sweepCmd.Flags().Float64Var(&sweepStart, "alpha-start", -5, "sweep start angle, degrees")
	sweepCmd.Flags().Float64Var(&sweepEnd, "alpha-end", 15, "sweep end angle, degrees")
	sweepCmd.Flags().Float64Var(&sweepStep, "alpha-step", 1, "sweep step, degrees")

	presetsCmd := &cobra.Command{
		Use:   "presets [category]",
		Short: "list available presets, or presets within a category",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPresets,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "solve one operating point and write a run directory",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&settingsFile, "settings", "", "settings YAML path")
	exportCmd.Flags().StringVar(&presetCategory, "preset-category", "", "preset category")
	exportCmd.Flags().StringVar(&presetName, "preset", "", "preset name")
	exportCmd.Flags().Float64Var(&alphaDeg, "alpha", 5.0, "angle of attack, degrees")
	exportCmd.Flags().Float64Var(&airspeed, "airspeed", 20.0, "freestream airspeed, m/s")
	exportCmd.Flags().StringVar(&outPath, "out", "", "run directory (defaults under --data)")

	rootCmd.AddCommand(solveCmd, sweepCmd, presetsCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadSettings() (*settings.Settings, error) {
	switch {
	case settingsFile != "":
		return settings.Load(settingsFile)
	case presetCategory != "" && presetName != "":
		s := settings.GetPreset(presetCategory, presetName)
		if s == nil {
			return nil, fmt.Errorf("unknown preset %s/%s", presetCategory, presetName)
		}
		return s, nil
	default:
		return settings.DefaultSettings(), nil
	}
}

func solveAt(s *settings.Settings, alphaRad, va float64) (*solver.Result, *result.Result, error) {
	wings, err := s.BuildWings()
	if err != nil {
		return nil, nil, err
	}
	b, err := body.New(wings, vecmath.Vec3{})
	if err != nil {
		return nil, nil, err
	}
	freestream := vecmath.Vec3{X: va * math.Cos(alphaRad), Z: va * math.Sin(alphaRad)}
	if err := b.SetVA(freestream, vecmath.Vec3{}); err != nil {
		return nil, nil, err
	}

	cfg, err := s.SolverSettings.ToConfig()
	if err != nil {
		return nil, nil, err
	}

	state := solver.NewState()
	solver.InitGamma(state, b.Panels, cfg)
	backend := compute.AutoSelectBackend(len(b.Panels))
	if err := solver.BuildAIC(state, b.Panels, cfg, backend); err != nil {
		return nil, nil, err
	}
	solveResult, err := solver.GammaLoop(state, b.Panels, cfg, backend)
	if err != nil {
		return nil, nil, err
	}

	res := result.Integrate(b, state, cfg, vecmath.Vec3{})
	return solveResult, res, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	alphaRad := alphaDeg * math.Pi / 180

	start := time.Now()
	solveResult, res, err := solveAt(s, alphaRad, airspeed)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("model: %s\n", s.SolverSettings.AerodynamicModelType)
	fmt.Printf("alpha: %.2f deg  airspeed: %.2f m/s\n", alphaDeg, airspeed)
	fmt.Printf("iterations: %d  residual: %.3e\n", solveResult.Iterations, solveResult.Residual)
	if solveResult.Warning != nil {
		fmt.Printf("warning: %v\n", solveResult.Warning)
	}
	fmt.Printf("solved in %v\n\n", elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CL\tCD\tCM\tCS\tPROJECTED_AREA")
	fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n", res.CL, res.CD, res.CM, res.CS, res.ProjectedArea)
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	cfg, err := s.SolverSettings.ToConfig()
	if err != nil {
		return err
	}

	var alphas []float64
	for a := sweepStart; a <= sweepEnd+1e-9; a += sweepStep {
		alphas = append(alphas, a*math.Pi/180)
	}
	cases := sweep.AlphaSweep(alphas, airspeed, cfg)

	outcomes, err := sweep.Run(context.Background(), s.BuildWings, vecmath.Vec3{}, cases)
	if err != nil {
		return err
	}

	cls := make([]float64, 0, len(outcomes))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALPHA_DEG\tCL\tCD\tCM")
	for i, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%.2f\terror: %v\n", alphas[i]*180/math.Pi, o.Err)
			continue
		}
		fmt.Fprintf(w, "%.2f\t%.4f\t%.4f\t%.4f\n", alphas[i]*180/math.Pi, o.Result.CL, o.Result.CD, o.Result.CM)
		cls = append(cls, o.Result.CL)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(cls) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(cls,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption("CL vs alpha"),
		)
		fmt.Println(graph)
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for category := range settings.Presets {
			fmt.Println(category)
		}
		return nil
	}
	names := settings.ListPresets(args[0])
	if len(names) == 0 {
		fmt.Printf("no presets for category: %s\n", args[0])
		return nil
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	alphaRad := alphaDeg * math.Pi / 180

	solveResult, res, err := solveAt(s, alphaRad, airspeed)
	if err != nil {
		return err
	}

	cfg, err := s.SolverSettings.ToConfig()
	if err != nil {
		return err
	}

	runDir := outPath
	if runDir == "" {
		runDir = filepath.Join(dataDir, report.NewRunID(cfg.Model.String(), time.Now()))
	}

	meta, err := report.WriteRun(runDir, cfg.Model, solveResult, res)
	if err != nil {
		return err
	}

	fmt.Printf("wrote run: %s\n", runDir)
	fmt.Printf("cl=%.4f cd=%.4f cm=%.4f converged=%v\n", meta.CL, meta.CD, meta.CM, meta.Converged)
	return nil
}
