package usecase

import (
	"context"
	"fmt"

	"serverless-api-template/internal/scheduler"
	"serverless-api-template/pkg/dates"
	"serverless-api-template/pkg/gsheets"
)

// Draft snapshots the sheet together with the Drive files it was built
// from, then archives those files.
func (uc *implUseCase) Draft(ctx context.Context) (scheduler.DraftOutput, error) {
	if uc.cfg.DriveFolderID == "" || uc.cfg.SpreadsheetID == "" || uc.cfg.SheetRange == "" {
		return scheduler.DraftOutput{}, fmt.Errorf("draft: %w", scheduler.ErrNotConfigured)
	}

	files, err := uc.drive.ListByPrefix(ctx, uc.cfg.DriveFolderID, uc.cfg.FilePrefix)
	if err != nil {
		return scheduler.DraftOutput{}, fmt.Errorf("draft: list files: %w", err)
	}

	data, err := uc.sheets.Fetch(ctx, gsheets.FetchRequest{
		SpreadsheetID: uc.cfg.SpreadsheetID,
		Range:         uc.cfg.SheetRange,
		HeaderLines:   uc.cfg.HeaderLines,
	})
	if err != nil {
		return scheduler.DraftOutput{}, fmt.Errorf("draft: fetch sheet: %w", err)
	}

	now := uc.now()
	key := uc.cfg.SnapshotPrefix + dates.S3Stamp(now) + ".json"
	snap := scheduler.Snapshot{
		GeneratedAt: now,
		Files:       files,
		Headers:     data.Headers,
		Rows:        data.Rows,
	}
	if _, err := uc.store.UploadJSON(ctx, key, snap); err != nil {
		return scheduler.DraftOutput{}, fmt.Errorf("draft: upload snapshot: %w", err)
	}

	out := scheduler.DraftOutput{Key: key, Files: len(files), Rows: len(data.Rows)}
	if uc.cfg.ArchiveFolderID != "" {
		for _, f := range files {
			if _, err := uc.drive.Move(ctx, f.ID, uc.cfg.ArchiveFolderID); err != nil {
				return out, fmt.Errorf("draft: archive %s: %w", f.Name, err)
			}
			out.Moved++
		}
	}

	uc.l.Infof(ctx, "scheduler.Draft: key=%s files=%d rows=%d moved=%d", key, out.Files, out.Rows, out.Moved)
	return out, nil
}
