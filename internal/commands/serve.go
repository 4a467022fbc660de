package commands

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/dashboard"
	"github.com/finmentor-dev/finmentor/internal/logging"
)

func newServeCommand() *cobra.Command {
	var ledgerDir string
	var port int
	var pretty bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, st, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}

			if port == 0 {
				port = cfg.Server.Port
			}

			log := logging.New(cfg.Server.LogLevel, pretty)
			log.Info().Str("ledger", dir).Int("port", port).Msg("dashboard listening")

			gin.SetMode(gin.ReleaseMode)
			svc := dashboard.NewService(st)
			if err := svc.Router().Run(fmt.Sprintf(":%d", port)); err != nil {
				log.Error().Err(err).Msg("server stopped")
				return err
			}
			return nil
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "human-readable log output")

	return cmd
}
