// Package eventbus dispatches in-process domain events to subscribers whose
// function signature matches the published arguments.
package eventbus

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/county-directory/console/pkg/serrors"
)

type EventBus interface {
	Publish(args ...interface{})
	PublishE(args ...interface{}) error
	Subscribe(handler interface{})
	SubscribersCount() int
}

var (
	ErrNoSubscribers        = serrors.NewError("EVENTBUS_NO_SUBSCRIBERS", "no matching subscribers", "")
	ErrInvalidHandlerReturn = serrors.NewError("EVENTBUS_INVALID_HANDLER_RETURN", "invalid handler return signature", "")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

type bus struct {
	log      logrus.FieldLogger
	mu       sync.RWMutex
	handlers []reflect.Value
}

// NewEventPublisher returns a bus that logs delivery problems to log. A nil
// logger silences them.
func NewEventPublisher(log logrus.FieldLogger) EventBus {
	return &bus{log: log}
}

// MatchSignature reports whether handler can be called with args.
func MatchSignature(handler interface{}, args []interface{}) bool {
	t := reflect.TypeOf(handler)
	if t == nil || t.Kind() != reflect.Func || t.NumIn() != len(args) {
		return false
	}
	for i, arg := range args {
		param := t.In(i)
		if arg == nil {
			if param.Kind() != reflect.Interface && param.Kind() != reflect.Ptr {
				return false
			}
			continue
		}
		if !reflect.TypeOf(arg).AssignableTo(param) {
			return false
		}
	}
	return true
}

func (b *bus) Subscribe(handler interface{}) {
	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func {
		panic("eventbus: handler must be a function")
	}
	b.mu.Lock()
	b.handlers = append(b.handlers, v)
	b.mu.Unlock()
}

func (b *bus) SubscribersCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

func (b *bus) matching(args []interface{}) []reflect.Value {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []reflect.Value
	for _, h := range b.handlers {
		if MatchSignature(h.Interface(), args) {
			out = append(out, h)
		}
	}
	return out
}

func values(args []interface{}, h reflect.Value) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(h.Type().In(i))
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}
	return in
}

// call invokes h and converts a panic or a returned error into err.
func call(h reflect.Value, args []interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("eventbus: handler %s panicked: %v", h.Type(), r)
		}
	}()
	out := h.Call(values(args, h))
	switch {
	case len(out) == 0:
		return nil
	case len(out) > 1 || out[0].Type() != errorType:
		return fmt.Errorf("%w: handler %s", ErrInvalidHandlerReturn, h.Type())
	case out[0].IsNil():
		return nil
	default:
		return out[0].Interface().(error)
	}
}

func eventName(args []interface{}) string {
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = fmt.Sprintf("%T", arg)
	}
	return strings.Join(names, ",")
}

// Publish delivers args to every matching subscriber. Handler failures are
// logged and never reach the publisher.
func (b *bus) Publish(args ...interface{}) {
	delivered := false
	for _, h := range b.matching(args) {
		if err := call(h, args); err != nil {
			if b.log != nil {
				b.log.WithField("event", eventName(args)).WithError(err).Error("eventbus: handler failed")
			}
			continue
		}
		delivered = true
	}
	if !delivered && b.log != nil {
		b.log.WithField("event", eventName(args)).Warn("eventbus.Publish: no matching subscribers")
	}
}

// PublishE delivers args and joins every handler failure.
func (b *bus) PublishE(args ...interface{}) error {
	handlers := b.matching(args)
	if len(handlers) == 0 {
		return ErrNoSubscribers
	}
	var errs []error
	for _, h := range handlers {
		if err := call(h, args); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
