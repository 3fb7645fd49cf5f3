package journal

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Interaction is one committed interaction event.
type Interaction struct {
	AgentID  uint64
	TargetID uint64
	Kind     string
	Class    string
	Distance float64
	Autoloot int
}

// Recorder writes interaction events to the database off the simulation
// goroutine. Record never blocks: if the buffer is full the event is
// dropped and counted.
type Recorder struct {
	db      *DB
	log     *zap.Logger
	events  chan Interaction
	done    chan struct{}
	dropped int64
}

func NewRecorder(db *DB, bufferSize int, log *zap.Logger) *Recorder {
	if bufferSize < 1 {
		bufferSize = 64
	}
	r := &Recorder{
		db:     db,
		log:    log,
		events: make(chan Interaction, bufferSize),
		done:   make(chan struct{}),
	}
	go r.writeLoop()
	return r
}

// Record queues an event for insertion. Safe to call from the simulation
// goroutine only.
func (r *Recorder) Record(ev Interaction) {
	select {
	case r.events <- ev:
	default:
		r.dropped++
		r.log.Warn("journal buffer full, event dropped",
			zap.Int64("dropped_total", r.dropped))
	}
}

// Close flushes queued events and stops the writer.
func (r *Recorder) Close() {
	close(r.events)
	<-r.done
}

func (r *Recorder) writeLoop() {
	defer close(r.done)
	for ev := range r.events {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := r.insert(ctx, ev)
		cancel()
		if err != nil {
			r.log.Error("journal insert failed", zap.Error(err),
				zap.Uint64("target_id", ev.TargetID))
		}
	}
}

func (r *Recorder) insert(ctx context.Context, ev Interaction) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO interactions (agent_id, target_id, kind, class, distance, autoloot)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		int64(ev.AgentID), int64(ev.TargetID), ev.Kind, ev.Class, ev.Distance, ev.Autoloot,
	)
	return err
}
