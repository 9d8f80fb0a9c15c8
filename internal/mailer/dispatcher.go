package mailer

import "log"

// Delivery is fire-and-forget: the triggering request never waits on, or
// fails because of, an email. Best-effort, at-most-once; send errors are
// logged and not retried.

type Message struct {
	To      string
	Subject string
	Body    string
}

type Dispatcher struct {
	provider Provider
	queue    chan Message
}

func NewDispatcher(provider Provider) *Dispatcher {
	d := &Dispatcher{
		provider: provider,
		queue:    make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.provider.Send(msg.To, msg.Subject, msg.Body); err != nil {
			log.Println("mail error:", err)
		}
	}
}

// Close stops the worker once the queued messages drain. Dispatch must
// not be called afterwards.
func (d *Dispatcher) Close() {
	close(d.queue)
}

func (d *Dispatcher) Dispatch(msg Message) {
	if msg.To == "" {
		return
	}

	select {
	case d.queue <- msg:
	default:
		log.Println("mail queue full, dropping message")
	}
}
