package usecase

import (
	"context"
	"fmt"

	"serverless-api-template/internal/scheduler"
	"serverless-api-template/pkg/gsheets"
)

// Publish writes the rows of the snapshot at PublishKey back to the sheet.
func (uc *implUseCase) Publish(ctx context.Context) (scheduler.PublishOutput, error) {
	if uc.cfg.PublishKey == "" || uc.cfg.SpreadsheetID == "" || uc.cfg.InsertRange == "" {
		return scheduler.PublishOutput{}, fmt.Errorf("publish: %w", scheduler.ErrNotConfigured)
	}

	var snap scheduler.Snapshot
	if err := uc.store.FetchJSON(ctx, uc.cfg.PublishKey, &snap); err != nil {
		return scheduler.PublishOutput{}, fmt.Errorf("publish: %w", err)
	}

	deleteRange := uc.cfg.DeleteRange
	if deleteRange == "" {
		deleteRange = uc.cfg.SheetRange
	}

	res, err := uc.sheets.Reset(ctx, gsheets.ResetRequest{
		SpreadsheetID: uc.cfg.SpreadsheetID,
		InsertRange:   uc.cfg.InsertRange,
		DeleteRange:   deleteRange,
		Rows:          snap.Rows,
	})
	if err != nil {
		return scheduler.PublishOutput{}, fmt.Errorf("publish: reset sheet: %w", err)
	}

	uc.l.Infof(ctx, "scheduler.Publish: key=%s rows=%d", uc.cfg.PublishKey, len(snap.Rows))
	return scheduler.PublishOutput{
		Key:    uc.cfg.PublishKey,
		Rows:   len(snap.Rows),
		Reset:  res.Reset,
		Update: res.Update,
	}, nil
}
