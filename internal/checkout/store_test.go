package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izamghali/fastrac-take-home-test/internal/domain"
	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

func TestStore_PutGetDelete(t *testing.T) {
	store := NewStore(time.Minute, nil)
	session := newTestSession(newCheckoutGateway(), nil)

	store.Put(session)

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	store.Delete(session.ID)
	_, err = store.Get(session.ID)
	var nfErr *errors.ErrNotFound
	require.ErrorAs(t, err, &nfErr)
}

func TestStore_GetUnknownID(t *testing.T) {
	store := NewStore(time.Minute, nil)

	_, err := store.Get(uuid.New())

	var nfErr *errors.ErrNotFound
	require.ErrorAs(t, err, &nfErr)
}

func TestStore_PruneExpired(t *testing.T) {
	store := NewStore(10*time.Millisecond, nil)

	stale := newTestSession(newCheckoutGateway(), nil)
	store.Put(stale)

	time.Sleep(20 * time.Millisecond)

	fresh := newTestSession(newCheckoutGateway(), nil)
	fresh.SetInsurance(true) // touches lastActive
	store.Put(fresh)

	pruned := store.PruneExpired()

	assert.Equal(t, 1, pruned)
	_, err := store.Get(stale.ID)
	assert.Error(t, err)
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSession_IdleSince(t *testing.T) {
	s := newTestSession(newCheckoutGateway(), nil)

	idle := s.IdleSince(time.Now().Add(time.Hour))

	assert.GreaterOrEqual(t, idle, time.Hour-time.Second)

	s.SetUserAddress(context.Background(), domain.Address{PostalCode: "10110"})
	assert.Less(t, s.IdleSince(time.Now()), time.Second)
}
