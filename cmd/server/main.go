package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"claims-decision-orchestrator/internal/agent"
	"claims-decision-orchestrator/internal/api"
	"claims-decision-orchestrator/internal/claimstore"
	"claims-decision-orchestrator/internal/config"
	appTemporal "claims-decision-orchestrator/internal/temporal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// The claim queue lives in process memory, so the worker and the API
	// must share one store and run in the same binary.
	store := claimstore.New(claimstore.SeedClaims()...)

	coordinator := agent.NewHTTPClient(cfg.AgentBaseURL, cfg.AgentAPIKey)

	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
	})
	if err != nil {
		log.Fatalf("connect temporal: %v", err)
	}
	defer temporalClient.Close()

	activities := &appTemporal.Activities{
		Store:              store,
		Agent:              coordinator,
		CoordinatorAgentID: cfg.CoordinatorAgentID,
		AgentTimeout:       time.Duration(cfg.AgentTimeoutSec) * time.Second,
	}

	w := worker.New(temporalClient, cfg.TemporalTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(appTemporal.ClaimIntakeWorkflow, workflow.RegisterOptions{Name: appTemporal.ClaimIntakeWorkflowName})
	w.RegisterActivity(activities.AdjudicateClaimActivity)
	w.RegisterActivity(activities.AppendClaimActivity)

	if err := w.Start(); err != nil {
		log.Fatalf("start worker: %v", err)
	}
	defer w.Stop()
	log.Printf("worker running on task queue %s", cfg.TemporalTaskQueue)

	runner := &appTemporal.Runner{
		Client:           temporalClient,
		TaskQueue:        cfg.TemporalTaskQueue,
		WorkflowIDPrefix: cfg.WorkflowIDPrefix,
		StageDelay:       time.Duration(cfg.StageDelayMS) * time.Millisecond,
	}

	h := api.NewHandler(cfg, store, runner)
	router := api.NewRouter(h)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("api listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
