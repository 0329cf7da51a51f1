package models

// Generation triggers.
const (
	TriggerSchedule = "schedule"
	TriggerWatcher  = "watcher"
	TriggerSignal   = "signal"
	TriggerManual   = "manual"
)

// RunEntry records one dashboard generation run. It is persisted as the
// header of a run log file under ~/.huddle/logs/.
type RunEntry struct {
	RunID     string
	Trigger   string
	StartedAt string // RFC3339
	EndedAt   string // RFC3339
	Projects  int
	Missing   int
	Written   bool // false when output was unchanged and the write skipped
	Status    string
}
