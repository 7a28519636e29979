package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/wardacoder/COMPAIR/config"
	"github.com/wardacoder/COMPAIR/pkg/projectlog"
	"github.com/wardacoder/COMPAIR/router"
	"github.com/wardacoder/COMPAIR/service/factory"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	defer func() {
		if serviceErr := recover(); serviceErr != nil {
			var buf [4096]byte
			n := runtime.Stack(buf[:], false)
			log.Println("The service exits abnormally, error message:【", serviceErr, "】")
			log.Println("Stack info: ")
			fmt.Printf("==> %s\n", string(buf[:n]))

			os.Exit(1)
		}
	}()

	root := &cobra.Command{
		Use:     "compair",
		Short:   "Compair — AI comparison backend",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(
		newServeCmd(),
		newSweepCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete expired cache entries and shares, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectlog.Init()
			ctx := context.Background()
			serviceFactory := factory.GetServiceFactory()

			cacheDeleted, serviceErr := serviceFactory.CacheService().SweepExpired(ctx)
			if serviceErr != nil {
				return fmt.Errorf("cache sweep: %s", serviceErr.Message)
			}
			shareDeleted, serviceErr := serviceFactory.ShareService().SweepExpired(ctx)
			if serviceErr != nil {
				return fmt.Errorf("share sweep: %s", serviceErr.Message)
			}

			logrus.Infof("sweep done: cache=%d shares=%d", cacheDeleted, shareDeleted)
			return nil
		},
	}
}

func runServe() error {
	projectlog.Init()

	// 后台定时清扫过期缓存，间隔为 0 时关闭
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	if interval := config.GetInstance().GetIntOrDefault(config.CacheSweepIntervalMinute, 0); interval > 0 {
		factory.GetServiceFactory().CacheService().StartSweeper(sweepCtx, time.Duration(interval)*time.Minute)
		logrus.Infof("cache sweeper started, interval=%dm", interval)
	}

	go startServer()
	waitStop()
	return nil
}

func startServer() {
	addr := config.GetInstance().GetString(config.AppHost)
	if err := http.ListenAndServe(addr, router.GetInstance()); err != nil {
		logrus.Errorf("Failed to ListenAndServer at %v, err = %v", addr, err)
		os.Exit(1)
	}
}

func waitStop() {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	sig := <-sc
	log.Printf("exit: signal=<%d>.\n", sig)
	switch sig {
	case syscall.SIGTERM:
		log.Println("exit: bye :-).")
		os.Exit(0)
	default:
		log.Println("exit: interrupted.")
		os.Exit(1)
	}
}
