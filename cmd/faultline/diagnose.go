package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"faultline/internal/channel"
	"faultline/internal/dispatch"
	"faultline/internal/fault"
	"faultline/internal/host"
)

var (
	diagnoseConfigPath string
	diagnoseMessage    string
	diagnoseFile       string
	diagnoseLine       int
	diagnoseRecordPath string
	diagnoseQuietLog   bool
)

func init() {
	diagnoseCmd.Flags().StringVarP(&diagnoseConfigPath, "config", "c", "", "diagnosis config (TOML)")
	diagnoseCmd.Flags().StringVarP(&diagnoseMessage, "message", "m", "", "failure message to diagnose")
	diagnoseCmd.Flags().StringVar(&diagnoseFile, "file", "", "source file the failure was reported in")
	diagnoseCmd.Flags().IntVar(&diagnoseLine, "line", 0, "source line the failure was reported at")
	diagnoseCmd.Flags().StringVar(&diagnoseRecordPath, "record", "", "msgpack record dump captured by a host")
	diagnoseCmd.Flags().BoolVar(&diagnoseQuietLog, "quiet-log", false, "suppress the emergency log channel")
}

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Run single-shot diagnosis on a fatal error record",
	Long: `Diagnose replays one captured fatal error through the full recovery
pipeline: classification, emergency logging, and symbol-suggestion
enhancement against the configured search roots.`,
	RunE: runDiagnose,
}

// printHandler is the terminal handler for CLI runs: it prints whatever the
// recovery path forwards.
type printHandler struct {
	fired bool
}

func (h *printHandler) Handle(err error) {
	h.fired = true
	fmt.Printf("%s %s\n", color.New(color.FgRed, color.Bold).Sprint("fatal:"), err.Error())
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	configureColor(cmd)

	cfg, err := loadDiagnosisConfig(diagnoseConfigPath)
	if err != nil {
		return err
	}
	rec, err := diagnoseRecord()
	if err != nil {
		return err
	}

	suggester, _ := buildSuggester(cfg)

	channels := channel.NewRegistry()
	if !diagnoseQuietLog {
		if zl, zerr := zap.NewProduction(); zerr == nil {
			defer func() { _ = zl.Sync() }()
			channels.Set(channel.Emergency, channel.NewZapLogger(zl))
		}
	}

	level, err := cfg.threshold()
	if err != nil {
		return err
	}

	proc := host.NewProcess()
	handler := &printHandler{}
	proc.SetFinalHandler(handler)

	d := dispatch.Register(dispatch.Config{
		Level:         level,
		DisplayErrors: cfg.DisplayErrors,
	}, dispatch.Deps{
		Channels:  channels,
		Runtime:   proc,
		Handlers:  proc,
		Suggester: suggester,
	})
	d.Install(proc, proc)

	// Fatal conditions bypass in-band interception: they surface only at
	// the terminal hook.
	proc.RecordFatal(*rec)
	proc.Shutdown()

	if !handler.fired {
		fmt.Println(rec.Message)
	}
	return nil
}

// diagnoseRecord builds the record to diagnose from --record or the message
// flags. Flag-built records default to the fatal Error class.
func diagnoseRecord() (*fault.Record, error) {
	if diagnoseRecordPath != "" {
		return readRecordDump(diagnoseRecordPath)
	}
	if diagnoseMessage == "" {
		return nil, fmt.Errorf("either --record or --message is required")
	}
	return &fault.Record{
		Code:    fault.LevelError,
		Message: diagnoseMessage,
		File:    diagnoseFile,
		Line:    diagnoseLine,
	}, nil
}
