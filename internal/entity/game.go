package entity

import (
	"time"

	"github.com/dariubs/percent"
	"github.com/google/uuid"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// GameRecord is the summary of one session kept in storage. It holds counters only, never moves.
type GameRecord struct {
	ID            string    `json:"id"`
	Role          Role      `json:"role"`
	Status        string    `json:"status"`
	Outcome       Outcome   `json:"outcome,omitempty"`
	ShotsFired    int       `json:"shots_fired"`
	Hits          int       `json:"hits"`
	Kills         int       `json:"kills"`
	ShotsReceived int       `json:"shots_received"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at,omitempty"`
}

func NewGameRecord(role Role, startedAt time.Time) *GameRecord {
	return &GameRecord{
		ID:        uuid.NewString(),
		Role:      role,
		Status:    StatusOngoing,
		StartedAt: startedAt,
	}
}

// RecordShot counts a move made by the local player.
func (that *GameRecord) RecordShot(result ShotResult) {
	that.ShotsFired++

	switch result {
	case ShotHit:
		that.Hits++
	case ShotKill:
		that.Hits++
		that.Kills++
	}
}

// RecordIncoming counts a move made by the opponent.
func (that *GameRecord) RecordIncoming() {
	that.ShotsReceived++
}

func (that *GameRecord) Finish(outcome Outcome, finishedAt time.Time) {
	that.Outcome = outcome
	that.Status = StatusFinished
	that.FinishedAt = finishedAt
}

func (that *GameRecord) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *GameRecord) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Accuracy returns the share of local shots that hit, in percent.
func (that *GameRecord) Accuracy() float64 {
	if that.ShotsFired == 0 {
		return 0
	}

	return percent.PercentOf(that.Hits, that.ShotsFired)
}
