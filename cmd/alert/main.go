package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"serverless-api-template/config"
	"serverless-api-template/internal/alert"
	alertEvent "serverless-api-template/internal/alert/delivery/event"
	alertUC "serverless-api-template/internal/alert/usecase"
	"serverless-api-template/internal/model"
	"serverless-api-template/pkg/job"
	"serverless-api-template/pkg/log"
	"serverless-api-template/pkg/response"
	"serverless-api-template/pkg/slack"
)

// alert relays one log-subscription event to Slack and prints {statusCode, body}.
//
//	alert < event.json
//	alert -event '{"awslogs":{"data":"..."}}'
func main() {
	eventJSON := flag.String("event", "", "raw log subscription event; read from stdin when empty")
	flag.Parse()

	raw := []byte(*eventJSON)
	if len(raw) == 0 {
		var err error
		if raw, err = io.ReadAll(os.Stdin); err != nil {
			exit(failed())
		}
	}

	var ev alert.Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		fmt.Fprintln(os.Stderr, "invalid event:", err)
		exit(failed())
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		exit(failed())
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	sender := slack.New(logger, slack.Config{
		Token:                cfg.Slack.OAuthToken,
		Channel:              cfg.Slack.Channel,
		APIURL:               cfg.Slack.APIURL,
		RetryAttempts:        cfg.Slack.RetryAttempts,
		RetryInitialInterval: cfg.Slack.RetryInitialInterval,
		RatePerSecond:        cfg.Slack.RatePerSec,
		DebugEnabled:         model.Environment(cfg.Environment.Name).DebugEnabled(),
	})

	h := alertEvent.New(logger, alertUC.New(logger, sender))
	exit(h.Handle(context.Background(), ev))
}

func failed() job.Result {
	return job.JSON(http.StatusInternalServerError, response.MessageResp{Message: alert.MessageFailed})
}

func exit(res job.Result) {
	out, _ := json.Marshal(res)
	fmt.Println(string(out))
	if res.StatusCode >= http.StatusInternalServerError {
		os.Exit(1)
	}
	os.Exit(0)
}
