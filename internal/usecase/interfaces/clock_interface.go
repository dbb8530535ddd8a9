package interfaces

import "time"

// IClock supplies the current instant to the pipeline. Contract numbers,
// expirations and schedules all derive from it, so tests inject a fixed
// clock to pin every generated artifact.
type IClock interface {
	Now() time.Time
}
