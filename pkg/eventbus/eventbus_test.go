package eventbus

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countyCreated struct {
	Name string
}

type contactCreated struct {
	FullName string
}

func bufferedLogger(level logrus.Level) (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetLevel(level)
	return log, buf
}

func TestPublish_DeliversToMatchingSubscribersOnly(t *testing.T) {
	publisher := NewEventPublisher(nil)
	var counties []string
	publisher.Subscribe(func(e *countyCreated) { counties = append(counties, e.Name) })
	publisher.Subscribe(func(e *contactCreated) { t.Error("contact handler must not receive county events") })

	publisher.Publish(&countyCreated{Name: "Kent"})
	assert.Equal(t, []string{"Kent"}, counties)
	assert.Equal(t, 2, publisher.SubscribersCount())
}

func TestPublish_WarnsWithoutSubscribers(t *testing.T) {
	log, buf := bufferedLogger(logrus.WarnLevel)
	publisher := NewEventPublisher(log)
	publisher.Subscribe(func(e *contactCreated) {})

	publisher.Publish(&countyCreated{Name: "Kent"})
	assert.Contains(t, buf.String(), "no matching subscribers")
}

func TestPublish_RecoversHandlerPanics(t *testing.T) {
	log, buf := bufferedLogger(logrus.WarnLevel)
	publisher := NewEventPublisher(log)

	var before, after bool
	publisher.Subscribe(func(e *countyCreated) { before = true })
	publisher.Subscribe(func(e *countyCreated) { panic("boom") })
	publisher.Subscribe(func(e *countyCreated) { after = true })

	require.NotPanics(t, func() { publisher.Publish(&countyCreated{Name: "Kent"}) })
	assert.True(t, before)
	assert.True(t, after)
	assert.Contains(t, buf.String(), "panicked")
	assert.NotContains(t, buf.String(), "no matching subscribers")
}

func TestPublish_AllHandlersPanicCountsAsUndelivered(t *testing.T) {
	log, buf := bufferedLogger(logrus.WarnLevel)
	publisher := NewEventPublisher(log)
	publisher.Subscribe(func(e *countyCreated) { panic("always") })

	publisher.Publish(&countyCreated{})
	assert.Contains(t, buf.String(), "no matching subscribers")
}

func TestPublish_ConcurrentPublishers(t *testing.T) {
	publisher := NewEventPublisher(nil)
	var mu sync.Mutex
	seen := 0
	publisher.Subscribe(func(e *contactCreated) {
		mu.Lock()
		seen++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			publisher.Publish(&contactCreated{FullName: "Ann"})
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, seen)
}

func TestMatchSignature(t *testing.T) {
	assert.True(t, MatchSignature(func(e *countyCreated) {}, []interface{}{&countyCreated{}}))
	assert.False(t, MatchSignature(func(e *countyCreated) {}, []interface{}{&contactCreated{}}))
	assert.False(t, MatchSignature(func(e *countyCreated) {}, nil))
	assert.False(t, MatchSignature(func(e *countyCreated) {}, []interface{}{&countyCreated{}, &countyCreated{}}))
	assert.True(t, MatchSignature(func(ctx context.Context) {}, []interface{}{context.Background()}))
	assert.True(t, MatchSignature(func(e *countyCreated) {}, []interface{}{nil}))
	assert.False(t, MatchSignature("not a func", nil))
}

func TestPublishE(t *testing.T) {
	t.Run("no subscribers", func(t *testing.T) {
		err := NewEventPublisher(nil).PublishE(&countyCreated{})
		assert.ErrorIs(t, err, ErrNoSubscribers)
	})

	t.Run("joins handler errors", func(t *testing.T) {
		publisher := NewEventPublisher(nil)
		err1, err2 := errors.New("err1"), errors.New("err2")
		publisher.Subscribe(func(e *countyCreated) error { return err1 })
		publisher.Subscribe(func(e *countyCreated) error { return err2 })

		err := publisher.PublishE(&countyCreated{})
		assert.ErrorIs(t, err, err1)
		assert.ErrorIs(t, err, err2)
	})

	t.Run("panic surfaces as error and later handlers run", func(t *testing.T) {
		publisher := NewEventPublisher(nil)
		called := false
		publisher.Subscribe(func(e *countyCreated) error { panic("boom") })
		publisher.Subscribe(func(e *countyCreated) error { called = true; return nil })

		require.Error(t, publisher.PublishE(&countyCreated{}))
		assert.True(t, called)
	})

	t.Run("invalid return signature", func(t *testing.T) {
		publisher := NewEventPublisher(nil)
		publisher.Subscribe(func(e *countyCreated) int { return 1 })
		assert.ErrorIs(t, publisher.PublishE(&countyCreated{}), ErrInvalidHandlerReturn)
	})
}
