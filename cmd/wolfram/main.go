// Command wolfram reproduces the reference analysis of elementary cellular
// automata: canonical space-time figures, a deep statistical analysis of one
// rule, a seed-sensitivity comparison and an optional survey of the rule
// space.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"wolfram-ca/internal/ca"
	"wolfram-ca/internal/figure"
	"wolfram-ca/internal/render"
	"wolfram-ca/internal/report"
	"wolfram-ca/internal/stats"
	"wolfram-ca/internal/store"
)

type surveyResult struct {
	rule        int
	entropy     float64
	meanDensity float64
}

func main() {
	out := flag.String("out", "results", "output directory for figures")
	rule := flag.Int("rule", 30, "rule for the deep analysis and seed comparison")
	cells := flag.Int("cells", 300, "lattice width for the canonical figures")
	steps := flag.Int("steps", 200, "generations for the canonical figures")
	scale := flag.Int("scale", 2, "pixel scale of the space-time PNGs")
	survey := flag.Bool("survey", false, "render every 8th rule and rank by pattern entropy")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel survey simulations")
	dbPath := flag.String("db", "", "optional SQLite file recording survey runs")
	video := flag.Bool("video", false, "write an MJPEG sweep of the analyzed rule")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	canonicalFigures(*out, *cells, *steps, *scale)
	analyzeRule(*out, *rule, *scale)
	seedSensitivity(*out, *rule, *scale)

	if *video {
		writeVideo(*out, *rule, *cells, *steps, *scale)
	}
	if *survey {
		runSurvey(*out, *workers, *dbPath)
	}
	fmt.Printf("All results written to %s\n", *out)
}

// canonicalFigures renders the four canonical rules from the preset registry.
func canonicalFigures(out string, cells, steps, scale int) {
	names := make([]string, 0, len(ca.Presets()))
	for name := range ca.Presets() {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		preset := ca.Presets()[name]
		cfg := ca.DefaultConfig()
		cfg.Rule = preset.Rule
		cfg.Cells = cells
		cfg.Steps = steps
		t, err := ca.Simulate(cfg)
		if err != nil {
			log.Fatalf("simulate %s: %v", name, err)
		}
		path := filepath.Join(out, fmt.Sprintf("rule_%03d_%s.png", preset.Rule, name))
		if err := render.WritePNG(path, t, render.On, render.Off, scale); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Printf("[ok] %s — %s\n", path, preset.Description)
	}
}

// analyzeRule reproduces the deep analysis: space-time diagram, density
// chart, autocorrelation of the final generation, pattern histogram and a
// console metrics block.
func analyzeRule(out string, rule, scale int) {
	cfg := ca.DefaultConfig()
	cfg.Rule = rule
	cfg.Cells = 400
	cfg.Steps = 300
	t, err := ca.Simulate(cfg)
	if err != nil {
		log.Fatalf("simulate rule %d: %v", rule, err)
	}

	spacetime := filepath.Join(out, fmt.Sprintf("analysis_rule_%03d.png", rule))
	if err := render.WritePNG(spacetime, t, render.On, render.Off, scale); err != nil {
		log.Fatalf("write %s: %v", spacetime, err)
	}

	density := stats.Density(t)
	if err := figure.DensityChart(filepath.Join(out, fmt.Sprintf("density_rule_%03d.png", rule)), density); err != nil {
		log.Fatalf("density chart: %v", err)
	}

	acorr := stats.Autocorrelation(stats.BinaryRow(t.Last()))
	if err := figure.AutocorrelationChart(filepath.Join(out, fmt.Sprintf("autocorr_rule_%03d.png", rule)), acorr, 80); err != nil {
		log.Fatalf("autocorrelation chart: %v", err)
	}

	if err := figure.PatternHistogram(filepath.Join(out, fmt.Sprintf("patterns_rule_%03d.png", rule)), stats.PatternCounts(t), rule); err != nil {
		log.Fatalf("pattern histogram: %v", err)
	}

	report.Write(os.Stdout, report.Collect(t, rule), density)
}

// seedSensitivity contrasts three slightly different initial configurations
// of the same rule.
func seedSensitivity(out string, rule, scale int) {
	cfg := ca.DefaultConfig()
	cfg.Rule = rule
	cfg.Cells = 200
	cfg.Steps = 150

	center, err := ca.Simulate(cfg)
	if err != nil {
		log.Fatalf("simulate center seed: %v", err)
	}

	twinRow := make([]uint8, cfg.Cells)
	twinRow[cfg.Cells/2] = 1
	twinRow[cfg.Cells/2+1] = 1
	twin, err := ca.SimulateFrom(cfg, twinRow)
	if err != nil {
		log.Fatalf("simulate twin seed: %v", err)
	}

	cfg.Mode = ca.SeedRandom
	random, err := ca.Simulate(cfg)
	if err != nil {
		log.Fatalf("simulate random seed: %v", err)
	}

	for _, fig := range []struct {
		name string
		t    *ca.Trajectory
	}{
		{"seed_center", center},
		{"seed_twin", twin},
		{"seed_random", random},
	} {
		path := filepath.Join(out, fmt.Sprintf("%s_rule_%03d.png", fig.name, rule))
		if err := render.WritePNG(path, fig.t, render.On, render.Off, scale); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Printf("[ok] %s\n", path)
	}
}

func writeVideo(out string, rule, cells, steps, scale int) {
	cfg := ca.DefaultConfig()
	cfg.Rule = rule
	cfg.Cells = cells
	cfg.Steps = steps
	t, err := ca.Simulate(cfg)
	if err != nil {
		log.Fatalf("simulate video run: %v", err)
	}
	path := filepath.Join(out, fmt.Sprintf("sweep_rule_%03d.avi", rule))
	if err := render.WriteAnimation(path, t, scale, 25); err != nil {
		log.Fatalf("write animation: %v", err)
	}
	fmt.Printf("[ok] %s\n", path)
}

// runSurvey simulates every 8th rule with a center seed, renders thumbnails
// and ranks the rules by pattern entropy. Individual simulations stay
// sequential; only independent rules run in parallel.
func runSurvey(out string, workers int, dbPath string) {
	surveyDir := filepath.Join(out, "survey")
	if err := os.MkdirAll(surveyDir, 0o755); err != nil {
		log.Fatalf("create survey dir: %v", err)
	}
	if workers < 1 {
		workers = 1
	}

	var db *store.DB
	if dbPath != "" {
		var err error
		db, err = store.Open(dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer db.Close()
	}

	cfg := ca.DefaultConfig()
	cfg.Cells = 101
	cfg.Steps = 50

	jobs := make(chan int)
	results := make(chan surveyResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rule := range jobs {
				run := cfg
				run.Rule = rule
				t, err := ca.Simulate(run)
				if err != nil {
					log.Fatalf("simulate rule %d: %v", rule, err)
				}
				path := filepath.Join(surveyDir, fmt.Sprintf("rule_%03d.png", rule))
				if err := render.WritePNG(path, t, render.On, render.Off, 1); err != nil {
					log.Fatalf("write %s: %v", path, err)
				}
				density := stats.Density(t)
				mean := 0.0
				for _, d := range density {
					mean += d
				}
				results <- surveyResult{
					rule:        rule,
					entropy:     stats.Entropy(t),
					meanDensity: mean / float64(len(density)),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for rule := 0; rule <= ca.MaxRule; rule += 8 {
			jobs <- rule
		}
		close(jobs)
	}()

	start := time.Now()
	var all []surveyResult
	for res := range results {
		all = append(all, res)
		if db != nil {
			_, err := db.InsertRun(store.Run{
				Rule:        res.rule,
				Cells:       cfg.Cells,
				Steps:       cfg.Steps,
				SeedMode:    string(cfg.Mode),
				Entropy:     res.entropy,
				MeanDensity: res.meanDensity,
			})
			if err != nil {
				log.Fatalf("record rule %d: %v", res.rule, err)
			}
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].entropy > all[j].entropy })
	elapsed := time.Since(start)

	fmt.Printf("\nSurveyed %d rules (elapsed %s), top 5 by pattern entropy:\n",
		len(all), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) rule %3d  entropy=%.4f bits  mean density=%.4f\n",
			i+1, res.rule, res.entropy, res.meanDensity)
	}
	if db != nil {
		fmt.Printf("Survey recorded in %s\n", dbPath)
	}
}
