package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/storemon/storemon/internal/endpoint"
	"github.com/storemon/storemon/internal/meta"
	"github.com/storemon/storemon/internal/report"
	"github.com/storemon/storemon/internal/store"
)

func (cmd *StoremonCommand) RunServer(s *store.Store) (exitCode int) {
	if err := os.MkdirAll(cmd.ReportDir, 0755); err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: failed to prepare report directory: %s\n", err)
		return 1
	}

	runner := report.New(s, cmd.ReportDir)
	runner.Workers = cmd.Workers
	runner.Console = cmd.OutStream

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scheduler := cron.New()
	if cmd.Sched != nil {
		job := cron.FuncJob(func() {
			id, err := runner.Trigger(ctx)
			if err != nil {
				fmt.Fprintf(cmd.ErrStream, "error: failed to trigger scheduled report: %s\n", err)
				return
			}
			fmt.Fprintf(cmd.OutStream, "scheduled report started: %s\n", id)
		})

		if cmd.Sched.KickAtStart() {
			go job.Run()
		}

		scheduler.Schedule(cmd.Sched, job)
		scheduler.Start()
	}

	listen := fmt.Sprintf("0.0.0.0:%d", cmd.ListenPort)
	fmt.Fprintf(cmd.OutStream, "Storemon %s listening on http://%s\n", meta.Version, listen)

	srv := &http.Server{Addr: listen, Handler: endpoint.New(runner)}

	wg := &sync.WaitGroup{}
	wg.Add(2)
	go func() {
		<-ctx.Done()

		go func() {
			<-scheduler.Stop().Done()
			wg.Done()
		}()

		if err := srv.Shutdown(context.Background()); err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: failed to shutdown server: %s\n", err)
		}
		wg.Done()
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
		exitCode = 1
	}
	stop()

	wg.Wait()

	return exitCode
}
