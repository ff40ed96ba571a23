package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"boxful-client/internal/config"
	"boxful-client/internal/platform/obs"
	"boxful-client/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "boxful",
	Short: "Boxful shipping client",
	Long: `Create parcel shipping orders and review your shipment history
against the Boxful order service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./boxful.yaml)")
}

func initConfig() {
	var err error

	_ = godotenv.Load()

	if cfgFile != "" {
		config.SetConfigFile(cfgFile)
	}

	cfg, err = config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	obs.Setup(cfg.Logging.Level, cfg.Logging.Format)
}

// noticeError carries a notice as a command's failure so it is printed as is.
type noticeError struct {
	notice services.Notice
	err    error
}

func (e *noticeError) Error() string { return e.notice.String() }
func (e *noticeError) Unwrap() error { return e.err }

func fail(n services.Notice, err error) error {
	return &noticeError{notice: n, err: err}
}
