package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application/services"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/config"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/infrastructure/input"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/interfaces/cli"
)

var configPathF = flag.String("config", "", "Path to an optional YAML config file.")

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config path] <orders.json> <paymentmethods.json>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPathF)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	orders, err := input.ReadOrdersFile(flag.Arg(0))
	if err != nil {
		logger.Error("failed to read orders", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	methods, err := input.ReadPaymentMethodsFile(flag.Arg(1))
	if err != nil {
		logger.Error("failed to read payment methods", "path", flag.Arg(1), "error", err)
		os.Exit(1)
	}

	policy := services.NewPolicy(
		cfg.Policy.PointsMethodID,
		cfg.Policy.MinPointsPercent,
		cfg.Policy.PartialDiscountPercent,
	)
	allocationService := services.NewAllocationService(services.NewOrderAllocator(policy), nil, logger)

	result, err := allocationService.Allocate(context.Background(), services.AllocateCommand{
		Orders:         orders,
		PaymentMethods: methods,
	})
	if err != nil {
		logger.Error("allocation failed", "error", err)
		os.Exit(1)
	}

	if err := cli.WriteSpent(os.Stdout, result.Spent); err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}
