package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZulvikaK/bookstore/bookstore"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newSettings binds the command's flags and BOOKSTORE_* environment variables.
// A flag that was set wins over the environment.
func newSettings(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

// resolveConfig loads the YAML config and applies flag/env overrides for one flow.
func resolveConfig(v *viper.Viper, name bookstore.FlowName) (bookstore.Config, bookstore.FlowSettings, error) {
	cfg, err := bookstore.LoadConfig(bookstore.ConfigWithFile(v.GetString("config")))
	if err != nil {
		return cfg, bookstore.FlowSettings{}, err
	}
	if s := v.GetString("base-url"); s != "" {
		cfg.API.BaseURL = s
	}
	if v.IsSet("timeout") && v.GetDuration("timeout") > 0 {
		cfg.API.Timeout = v.GetDuration("timeout")
	}

	settings, err := cfg.FlowSettings(name)
	if err != nil {
		return cfg, settings, err
	}
	if s := v.GetString("input"); s != "" {
		settings.Input = s
	}
	if s := v.GetString("output"); s != "" {
		settings.Output = s
	}
	if v.IsSet("delay") {
		settings.Delay = v.GetDuration("delay")
	}
	return cfg, settings, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runFlow(cmd *cobra.Command, name bookstore.FlowName) error {
	v, err := newSettings(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, settings, err := resolveConfig(v, name)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger, err := newLogger(v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("failed to create logger %w", err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", runID))

	inputs, err := bookstore.ReadInputFile(settings.Input)
	if err != nil {
		return fmt.Errorf("failed to read input %w", err)
	}
	logger.Info("Starting batch",
		zap.String("flow", string(name)),
		zap.String("input", settings.Input),
		zap.Int("records", len(inputs)),
		zap.Duration("delay", settings.Delay))

	client := bookstore.NewClient(&bookstore.RunContext{
		Config:    cfg,
		RunID:     runID,
		RecordDir: v.GetString("record"),
		Logger:    logger,
	})
	flow, err := bookstore.NewFlow(name, client)
	if err != nil {
		return err
	}
	processor := bookstore.NewProcessor(bookstore.FixedDelay(settings.Delay), logger)
	results := processor.Run(cmd.Context(), flow, inputs)

	if err = bookstore.WriteOutputFile(settings.Output, flow.Header(), results); err != nil {
		return err
	}
	logger.Info("Output saved", zap.String("output", settings.Output))

	out := cmd.OutOrStdout()
	writeSummary(out, name, bookstore.Summarize(results))
	if !v.GetBool("verify") {
		return nil
	}
	failed := writeVerdicts(out, bookstore.VerifyAll(inputs, results))
	if failed > 0 {
		return fmt.Errorf("%d of %d rows did not match their expectations", failed, len(inputs))
	}
	return nil
}

func writeSummary(w io.Writer, name bookstore.FlowName, summary bookstore.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s: %d records", name, summary.Total))
	t.AppendHeader(table.Row{"Outcome", "Records"})
	for _, kind := range []bookstore.OutcomeKind{bookstore.Success, bookstore.ClientError, bookstore.ServerError, bookstore.TransportError} {
		t.AppendRow(table.Row{kind.String(), summary.ByKind[kind]})
	}
	t.Render()
}

// writeVerdicts renders the checked rows and returns how many failed.
func writeVerdicts(w io.Writer, verdicts []bookstore.Verdict) int {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Line", "Result", "Details"})
	failed := 0
	for _, v := range verdicts {
		if !v.Checked {
			continue
		}
		result := "pass"
		if !v.Pass() {
			result = "FAIL"
			failed++
		}
		t.AppendRow(table.Row{v.Line, result, strings.Join(v.Mismatches, "; ")})
	}
	t.Render()
	return failed
}
