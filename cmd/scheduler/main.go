package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"serverless-api-template/config"
	"serverless-api-template/internal/model"
	"serverless-api-template/internal/scheduler"
	schedulerJob "serverless-api-template/internal/scheduler/delivery/job"
	schedulerUC "serverless-api-template/internal/scheduler/usecase"
	"serverless-api-template/pkg/gauth"
	"serverless-api-template/pkg/gdrive"
	"serverless-api-template/pkg/gsheets"
	"serverless-api-template/pkg/job"
	"serverless-api-template/pkg/log"
	"serverless-api-template/pkg/slack"
	"serverless-api-template/pkg/storage"
)

// scheduler runs one job and prints {statusCode, body}.
//
//	scheduler -type draft
//	scheduler -event '{"type":"publish"}'
func main() {
	eventType := flag.String("type", "", "job to run: draft or publish")
	eventJSON := flag.String("event", "", "raw trigger payload, e.g. {\"type\":\"draft\"}")
	flag.Parse()

	ev, err := parseEvent(*eventType, *eventJSON)
	if err != nil {
		exit(job.Failure(err.Error()))
	}

	cfg, err := config.Load()
	if err != nil {
		exit(job.Failure(fmt.Sprintf("load config: %v", err)))
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	uc, err := newUseCase(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "scheduler: init: %v", err)
		exit(job.Failure(err.Error()))
	}

	exit(schedulerJob.New(logger, uc).Handle(ctx, ev))
}

func parseEvent(eventType, eventJSON string) (scheduler.Event, error) {
	var ev scheduler.Event
	if eventJSON != "" {
		if err := json.Unmarshal([]byte(eventJSON), &ev); err != nil {
			return ev, fmt.Errorf("invalid event: %w", err)
		}
	}
	if eventType != "" {
		t := scheduler.EventType(eventType)
		ev.Type = &t
	}
	return ev, nil
}

func newUseCase(ctx context.Context, l log.Logger, cfg *config.Config) (scheduler.UseCase, error) {
	googleOpt, err := gauth.ClientOption(ctx, cfg.Google.ServiceAccountKey, cfg.Google.Subject, gsheets.Scope, gdrive.Scope)
	if err != nil {
		return nil, fmt.Errorf("google credentials: %w", err)
	}

	sheets, err := gsheets.NewClient(ctx, googleOpt)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	drive, err := gdrive.NewClient(ctx, googleOpt)
	if err != nil {
		return nil, fmt.Errorf("drive client: %w", err)
	}

	store, err := storage.New(ctx, l, storage.Config{
		Bucket:         cfg.Storage.Bucket,
		Region:         cfg.Storage.Region,
		Endpoint:       cfg.Storage.Endpoint,
		AccessKeyID:    cfg.Storage.AccessKeyID,
		SecretKey:      cfg.Storage.SecretKey,
		ForcePathStyle: cfg.Storage.ForcePathStyle,
		Offline:        cfg.Environment.Offline,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	var notifier scheduler.Notifier
	if cfg.Slack.OAuthToken != "" && cfg.Slack.Channel != "" {
		notifier = slack.New(l, slack.Config{
			Token:                cfg.Slack.OAuthToken,
			Channel:              cfg.Slack.Channel,
			APIURL:               cfg.Slack.APIURL,
			RetryAttempts:        cfg.Slack.RetryAttempts,
			RetryInitialInterval: cfg.Slack.RetryInitialInterval,
			RatePerSecond:        cfg.Slack.RatePerSec,
			DebugEnabled:         model.Environment(cfg.Environment.Name).DebugEnabled(),
		})
	}

	return schedulerUC.New(l, scheduler.Config{
		DriveFolderID:   cfg.Scheduler.DriveFolderID,
		FilePrefix:      cfg.Scheduler.FilePrefix,
		ArchiveFolderID: cfg.Scheduler.ArchiveFolderID,
		SpreadsheetID:   cfg.Scheduler.SpreadsheetID,
		SheetRange:      cfg.Scheduler.SheetRange,
		HeaderLines:     cfg.Scheduler.HeaderLines,
		InsertRange:     cfg.Scheduler.InsertRange,
		DeleteRange:     cfg.Scheduler.DeleteRange,
		SnapshotPrefix:  cfg.Scheduler.SnapshotPrefix,
		PublishKey:      cfg.Scheduler.PublishKey,
	}, sheets, drive, store, notifier), nil
}

func exit(res job.Result) {
	out, _ := json.Marshal(res)
	fmt.Println(string(out))
	if res.StatusCode >= http.StatusInternalServerError {
		os.Exit(1)
	}
	os.Exit(0)
}
