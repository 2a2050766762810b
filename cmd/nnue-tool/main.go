// Command nnue-tool inspects, verifies, and evaluates with NNUE parameter
// files: the scriptable replacement for the teacher's UCI loop, which has
// no role once search and protocol handling are out of scope.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nnuekit/nnue/chess"
	"github.com/nnuekit/nnue/nnue"
	"github.com/nnuekit/nnue/nnue/features"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "nnue-tool",
	Short: "Inspect, verify, and evaluate with NNUE parameter files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

func newEvaluatorShape() (*nnue.FeatureTransformer, *nnue.Network) {
	fs := features.NewFeatureSet(features.NewHalfKP[features.Friend]())
	return nnue.NewFeatureTransformer(fs), nnue.NewNetwork(2 * nnue.H)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <net-file>",
	Short: "Print a parameter file's header and computed architecture hash",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			logrus.Fatalf("open %s: %v", args[0], err)
		}
		defer f.Close()

		ft, net := newEvaluatorShape()
		e, err := nnue.Load(f, ft, net)
		if err != nil {
			logrus.Fatalf("load %s: %v", args[0], err)
		}
		fmt.Printf("version:              %#x\n", nnue.Version)
		fmt.Printf("feature transformer:  dims=%d hash=%#x\n", ft.Features.Dimensions(), ft.HashValue())
		fmt.Printf("network:              hash=%#x\n", net.HashValue())
		_ = e
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <net-file>",
	Short: "Check a parameter file's architecture hash without printing it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			logrus.Fatalf("open %s: %v", args[0], err)
		}
		defer f.Close()

		ft, net := newEvaluatorShape()
		if _, err := nnue.Load(f, ft, net); err != nil {
			fmt.Printf("FAIL: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}

var evalFEN string

var evalCmd = &cobra.Command{
	Use:   "eval <net-file>",
	Short: "Load a network and print the centipawn score for a FEN position",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			logrus.Fatalf("open %s: %v", args[0], err)
		}
		defer f.Close()

		ft, net := newEvaluatorShape()
		e, err := nnue.Load(f, ft, net)
		if err != nil {
			logrus.Fatalf("load %s: %v", args[0], err)
		}

		board, err := chess.NewBoard(evalFEN, nnue.H)
		if err != nil {
			logrus.Fatalf("parse FEN: %v", err)
		}

		fmt.Println(e.Evaluate(board))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (debug, info, warn, error)")
	evalCmd.Flags().StringVar(&evalFEN, "fen", chess.StartFEN, "FEN position to evaluate")

	rootCmd.AddCommand(inspectCmd, verifyCmd, evalCmd)
}

func main() {
	Execute()
}
