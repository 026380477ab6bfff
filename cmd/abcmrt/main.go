// Command abcmrt estimates the speech intelligibility of degraded MRT
// recordings. Each input WAV must carry its MRT file identity in its
// name (e.g. M3_b24_w2_ulaw.wav); reference templates are computed
// from a directory of clean recordings.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	abcmrt "github.com/ieee0824/abcmrt-go"
	"github.com/ieee0824/abcmrt-go/align"
	"github.com/ieee0824/abcmrt-go/audio"
	"github.com/ieee0824/abcmrt-go/dataset"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var (
		cfgPath   string
		templates string
		workers   int
		maxLag    int
		verbose   bool
	)

	root := &cobra.Command{
		Use:          "abcmrt --templates DIR [flags] FILE...",
		Short:        "Objective MRT speech intelligibility estimation (ABC-MRT16)",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("templates") || cfg.Templates == "" {
				cfg.Templates = templates
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("max-lag") {
				cfg.MaxLag = maxLag
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			if cfg.Verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if cfg.Templates == "" {
				return fmt.Errorf("--templates is required")
			}
			if cfg.Workers == 0 {
				cfg.Workers = runtime.NumCPU()
			}
			return run(cmd.Context(), log, cfg, args)
		},
	}

	root.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	root.Flags().StringVarP(&templates, "templates", "t", "", "directory of clean reference WAV recordings")
	root.Flags().IntVarP(&workers, "workers", "w", 0, "parallel clips (0 = number of CPUs)")
	root.Flags().IntVar(&maxLag, "max-lag", 0, "alignment lag window in frames (0 = default)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logrus.Logger, cfg config, files []string) error {
	store, err := dataset.Load(cfg.Templates, log)
	if err != nil {
		return err
	}

	clips := make([][]float64, 0, len(files))
	fileNums := make([]int, 0, len(files))
	kept := make([]string, 0, len(files))
	for _, f := range files {
		num, ok := abcmrt.FileNumber(f)
		if !ok {
			log.WithField("file", f).Warn("no MRT file number in name, skipping")
			continue
		}
		samples, header, err := audio.ReadWAVFile(f)
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		if header.SampleRate != abcmrt.SampleRate {
			samples, err = audio.Resample(samples, int(header.SampleRate), abcmrt.SampleRate)
			if err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
		}
		clips = append(clips, samples)
		fileNums = append(fileNums, num)
		kept = append(kept, f)
	}
	if len(clips) == 0 {
		return fmt.Errorf("no scorable input files")
	}

	session := &abcmrt.Session{
		Templates: store,
		Align:     align.Config{MaxLag: cfg.MaxLag},
		Workers:   cfg.Workers,
	}
	rate, results, err := session.Process(ctx, clips, fileNums)
	if err != nil {
		return err
	}

	for i, r := range results {
		entry := log.WithFields(logrus.Fields{"file": kept[i], "num": r.FileNum})
		if r.Err != nil {
			entry.WithError(r.Err).Warn("trial excluded")
			continue
		}
		if r.Outcome != nil {
			entry = entry.WithField("selected", r.Outcome.Selected)
		}
		entry.Debug("trial scored")
		fmt.Printf("%s\t%.0f\n", kept[i], r.Success)
	}

	if !rate.Defined {
		return fmt.Errorf("no trials could be scored")
	}
	fmt.Printf("intelligibility\t%.4f\t(%d trials, corrected for guessing)\n", rate.Value, rate.Trials)
	return nil
}
