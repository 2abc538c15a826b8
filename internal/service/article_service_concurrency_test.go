package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/service"
)

// allowDeletes accepts the side effects of cascade deletes.
func (f *fixture) allowDeletes() {
	f.indexer.EXPECT().Remove(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.attachments.EXPECT().Remove(mock.Anything, mock.Anything).Return(nil).Maybe()
}

// collect runs fn on n goroutines and returns their errors.
func collect(n int, fn func(worker int) error) []error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for w := 0; w < n; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			if err := fn(worker); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	return errs
}

func TestArticleService_ReadersNeverSeePartialReorder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()

	const writers, perWriter = 4, 40
	done := make(chan []error)
	go func() {
		done <- collect(writers, func(int) error {
			for i := 0; i < perWriter; i++ {
				_, err := f.svc.CreateArticle(ctx, service.CreateArticleInput{
					GroupID: 1, Priority: 0, Title: "T", Content: "C",
				}, domain.NotifyContext{})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}()

	var errs []error
	for reading := true; reading; {
		select {
		case errs = <-done:
			reading = false
		default:
		}

		children, err := f.svc.ListChildren(ctx, domain.Scope{GroupID: 1}, "", domain.Page{})
		require.NoError(t, err)
		for i, c := range children {
			if !assert.Equal(t, i, c.Priority, "listing of %d siblings", len(children)) {
				<-done
				return
			}
		}
	}

	assert.Empty(t, errs)
	count, err := f.svc.CountChildren(ctx, domain.Scope{GroupID: 1})
	require.NoError(t, err)
	assert.Equal(t, writers*perWriter, count)
	assertDense(t, f, 1, 0)
}

func TestArticleService_ConcurrentMovesStayDense(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyVersion)
	f.allowWrites()

	left := f.create(t, 1, 0, 0, "Left")
	right := f.create(t, 1, 0, 1, "Right")
	var keys []int64
	for i := 0; i < 12; i++ {
		keys = append(keys, f.create(t, 1, left.ResourceKey, i, "child").ResourceKey)
	}

	errs := collect(8, func(worker int) error {
		for i := 0; i < 30; i++ {
			key := keys[(worker*5+i)%len(keys)]
			parent := left.ResourceKey
			if (worker+i)%2 == 0 {
				parent = right.ResourceKey
			}
			if _, err := f.svc.MoveArticle(ctx, key, parent, (worker*3+i)%7); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Empty(t, errs)

	assertDense(t, f, 1, 0)
	assertDense(t, f, 1, left.ResourceKey)
	assertDense(t, f, 1, right.ResourceKey)
	assert.Equal(t, len(keys), len(f.priorities(t, 1, left.ResourceKey))+len(f.priorities(t, 1, right.ResourceKey)))
}

func TestArticleService_DeleteRacingCreateLeavesNoOrphans(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.PositionPolicyMetadata)
	f.allowWrites()
	f.allowDeletes()

	for round := 0; round < 25; round++ {
		root := f.create(t, 1, 0, 0, "Root")
		child := f.create(t, 1, root.ResourceKey, 0, "Child")

		errs := collect(2, func(worker int) error {
			if worker == 0 {
				_, err := f.svc.DeleteArticle(ctx, root.ResourceKey)
				return err
			}
			_, err := f.svc.CreateArticle(ctx, service.CreateArticleInput{
				GroupID: 1, ParentResourceKey: child.ResourceKey, Title: "Late", Content: "C",
			}, domain.NotifyContext{})
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		})
		require.Empty(t, errs, "round %d", round)

		remaining, err := f.svc.ListGroup(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, remaining, "round %d left articles behind", round)
	}
}
