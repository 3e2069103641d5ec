package pokemons_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokemon-catalog/internal/domain/pokemons"
)

func TestRemoteCatalog_FetchAllKeepsListingOrder(t *testing.T) {
	remote := &fakeRemote{pages: [][]pokemons.Pokemon{
		{mon(1, "bulbasaur"), mon(2, "ivysaur"), mon(3, "venusaur")},
		{mon(4, "charmander"), mon(5, "charmeleon")},
	}}
	c := pokemons.NewRemoteCatalog(remote, pokemons.WithConcurrency(4))

	got, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon"}, names(got))
	assert.Equal(t, 5, c.MaxRemoteID())
}

func TestRemoteCatalog_SecondCallHitsCache(t *testing.T) {
	remote := &fakeRemote{pages: [][]pokemons.Pokemon{{mon(1, "bulbasaur"), mon(4, "charmander")}}}
	c := pokemons.NewRemoteCatalog(remote)

	first, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	lists, details := remote.listCalls.Load(), remote.detailCalls.Load()

	second, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, lists, remote.listCalls.Load())
	assert.Equal(t, details, remote.detailCalls.Load())
}

func TestRemoteCatalog_ConcurrentFirstCallsShareOneLoad(t *testing.T) {
	remote := &fakeRemote{pages: [][]pokemons.Pokemon{{mon(1, "bulbasaur")}}}
	c := pokemons.NewRemoteCatalog(remote)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := c.FetchAll(context.Background())
			assert.NoError(t, err)
			assert.Len(t, items, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), remote.listCalls.Load())
}

func TestRemoteCatalog_DetailFailureSkipsItem(t *testing.T) {
	remote := &fakeRemote{
		pages:      [][]pokemons.Pokemon{{mon(1, "bulbasaur"), mon(2, "ivysaur"), mon(3, "venusaur")}},
		failDetail: map[int]error{2: errors.New("boom")},
	}
	c := pokemons.NewRemoteCatalog(remote)

	got, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bulbasaur", "venusaur"}, names(got))
	assert.Equal(t, 3, c.MaxRemoteID())
}

func TestRemoteCatalog_PageFailureKeepsEarlierPages(t *testing.T) {
	remote := &fakeRemote{
		pages: [][]pokemons.Pokemon{
			{mon(1, "bulbasaur")},
			{mon(2, "ivysaur")},
			{mon(3, "venusaur")},
		},
		failPage: map[int]error{1: errors.New("bad gateway")},
	}
	c := pokemons.NewRemoteCatalog(remote)

	got, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bulbasaur"}, names(got))
	assert.Equal(t, 1, c.MaxRemoteID())
}

func TestRemoteCatalog_EmptyRemote(t *testing.T) {
	c := pokemons.NewRemoteCatalog(&fakeRemote{})

	got, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, c.MaxRemoteID())
}

func TestRemoteCatalog_CanceledLoadIsNotCached(t *testing.T) {
	remote := &fakeRemote{pages: [][]pokemons.Pokemon{{mon(1, "bulbasaur")}}}
	c := pokemons.NewRemoteCatalog(remote)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, c.MaxRemoteID())

	got, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bulbasaur"}, names(got))
}
