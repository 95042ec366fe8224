package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/vincentqiao/medflow/internal/backup"
	"github.com/vincentqiao/medflow/internal/constants"
	"github.com/vincentqiao/medflow/internal/logger"
	"github.com/vincentqiao/medflow/internal/models"
	"github.com/vincentqiao/medflow/internal/storage"
	"github.com/vincentqiao/medflow/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
}

// PerformAutomaticBackup makes a best-effort backup of the data file.
// Failures are logged, never surfaced: a failed backup must not keep the
// user from checking in.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backups, err := mgr.ListBackups()
	if err == nil && len(backups) > 0 {
		// Skip if a backup from today already exists.
		y, m, d := time.Now().Date()
		by, bm, bd := backups[0].Timestamp.Date()
		if y == by && m == bm && d == bd {
			return
		}
	}

	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("automatic backup failed", "err", err)
	}
}

func formatEntry(entry models.DoseEntry) string {
	taken := time.UnixMilli(entry.Timestamp)
	return fmt.Sprintf("%s  %-12s  %s",
		taken.Format(constants.DateFormat+" "+constants.ClockFormat),
		entry.MedicineType,
		entry.MedicineName,
	)
}

func medTypeHelp() string {
	names := make([]string, 0, len(models.MedTypes))
	for _, t := range models.MedTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
