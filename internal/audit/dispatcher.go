package audit

import (
	"log"
	"sync"
)

// Event types mirrored from the admin dashboard's activity feed.
const (
	EventBookingCreated     = "booking_created"
	EventBookingCancelled   = "booking_cancelled"
	EventVerified           = "verified"
	EventVerificationFailed = "verification_failed"
	EventSMSSent            = "sms_sent"
	EventSMSFailed          = "sms_failed"
	EventDateBlocked        = "date_blocked"
	EventDateUnblocked      = "date_unblocked"
)

type Event struct {
	Type        string
	Description string
}

// Sink is where dispatched events end up. *Logger is the production sink.
type Sink interface {
	Log(eventType, description string) error
}

// Dispatcher decouples audit writes from the request path: events go through
// a buffered channel and a single worker goroutine. Audit is best effort and
// must never break the booking flow.
type Dispatcher struct {
	sink    Sink
	queue   chan Event
	pending sync.WaitGroup
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(ev.Type, ev.Description); err != nil {
			log.Println("audit error:", err)
		}
		d.pending.Done()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.pending.Add(1)
	select {
	case d.queue <- ev:
	default:
		// queue full, drop the event rather than block a request
		d.pending.Done()
		log.Println("audit queue full, dropping event")
	}
}

// Flush blocks until every accepted event has been written. Lets tests await
// the fire-and-forget writes deterministically.
func (d *Dispatcher) Flush() {
	d.pending.Wait()
}
