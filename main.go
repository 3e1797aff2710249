package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/snowid/internal/app"
)

func main() {
	opts := app.Options{}

	root := &cobra.Command{
		Use:   "snowid",
		Short: "Serves unique, time-ordered 64-bit ids over HTTP",
		Run: func(_ *cobra.Command, _ []string) {
			application := app.New(opts) // Initialize the application
			wait := application.Start()  // Start the application and wait for the termination signal
			<-wait                       // Wait for the application to receive a termination signal

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			application.Stop(ctx) // Stop the application gracefully
		},
	}

	root.Flags().StringVar(&opts.ConfigPath, "config", "", "path to the configuration file")
	root.Flags().Int64Var(&opts.WorkerID, "worker-id", -1, "worker id (0-31), overrides the configuration")
	root.Flags().Int64Var(&opts.DatacenterID, "datacenter-id", -1, "datacenter id (0-31), overrides the configuration")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
