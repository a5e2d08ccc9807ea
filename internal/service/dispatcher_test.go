// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VacTuzX-dot/xfrontend/internal/adapter"
	"github.com/VacTuzX-dot/xfrontend/internal/crypto"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/mock"
	"github.com/VacTuzX-dot/xfrontend/internal/store"
	"github.com/VacTuzX-dot/xfrontend/models"
)

// spyFetcher counts refreshes instead of hitting the adapter.
type spyFetcher struct {
	mu    sync.Mutex
	modes []models.FetchMode
}

func (s *spyFetcher) FetchAll(_ context.Context, mode models.FetchMode) (models.FetchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes = append(s.modes, mode)
	return models.FetchResult{}, nil
}

func (s *spyFetcher) calls() []models.FetchMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FetchMode(nil), s.modes...)
}

type dispatcherFixture struct {
	dispatcher MutationDispatcher
	adapter    *mock.MockRegistryAdapter
	store      store.SnapshotStore
	fetcher    *spyFetcher
	hasher     crypto.PasswordHasher
}

func newTestDispatcher(t *testing.T, ctrl *gomock.Controller, batchSize int, seed ...models.UserRecord) dispatcherFixture {
	t.Helper()

	hasher, err := crypto.NewPasswordHasher(4)
	require.NoError(t, err)

	snapshot := store.NewSnapshotStore()
	_, ok := snapshot.ApplyFetch(snapshot.BeginFetch(), seed, time.Now())
	require.True(t, ok)

	f := dispatcherFixture{
		adapter: mock.NewMockRegistryAdapter(ctrl),
		store:   snapshot,
		fetcher: &spyFetcher{},
		hasher:  hasher,
	}
	f.dispatcher = NewMutationDispatcher(f.adapter, f.store, f.fetcher, hasher, batchSize, logger.Nop())
	return f
}

func fullRecord(id, password string) models.UserRecord {
	return models.UserRecord{
		ID:          models.RecordID(id),
		TitlePrefix: "Mr.",
		FirstName:   "John" + id,
		LastName:    "Doe",
		Username:    "john" + id,
		Password:    password,
		Address:     "1 Main Rd\nBangkok",
		Sex:         "Male",
		Birthday:    "1990-05-17",
	}
}

func ids(n int) []models.RecordID {
	out := make([]models.RecordID, n)
	for i := range out {
		out[i] = models.RecordID(fmt.Sprint(i + 1))
	}
	return out
}

func notFound() error {
	return &adapter.BackendError{Status: http.StatusNotFound, Message: "user not found"}
}

// ── DeleteOne ─────────────────────────────────────────────────────────────────

func TestDeleteOne_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10, fullRecord("1", "a"), fullRecord("2", "b"))
	ctx := context.Background()

	f.adapter.EXPECT().DeleteUser(ctx, models.RecordID("1")).DoAndReturn(
		func(context.Context, models.RecordID) error {
			r, ok := f.store.Get("1")
			require.True(t, ok)
			assert.Equal(t, models.SyncPending, r.State, "record is pending while the request is in flight")
			return nil
		},
	)

	require.NoError(t, f.dispatcher.DeleteOne(ctx, "1"))

	_, ok := f.store.Get("1")
	assert.False(t, ok)
	assert.Equal(t, []models.FetchMode{models.FetchBackground}, f.fetcher.calls())
}

func TestDeleteOne_FailureMarksFailedAndRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10, fullRecord("1", "a"))
	ctx := context.Background()

	f.adapter.EXPECT().DeleteUser(ctx, models.RecordID("1")).Return(notFound())

	err := f.dispatcher.DeleteOne(ctx, "1")
	require.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, err, adapter.ErrBackend)

	r, ok := f.store.Get("1")
	require.True(t, ok, "failed delete keeps the record")
	assert.Equal(t, models.SyncFailed, r.State)
	assert.Len(t, f.fetcher.calls(), 1)
}

func TestDeleteOne_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)

	assert.ErrorIs(t, f.dispatcher.DeleteOne(context.Background(), ""), ErrEmptyRecordID)
	assert.Empty(t, f.fetcher.calls())
}

// ── DeleteMany ────────────────────────────────────────────────────────────────

func TestDeleteMany_BatchesEveryIDExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)
	ctx := context.Background()

	var (
		mu       sync.Mutex
		attempts = map[models.RecordID]int{}
		inFlight atomic.Int32
		maxSeen  atomic.Int32
	)

	f.adapter.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id models.RecordID) error {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				m := maxSeen.Load()
				if n <= m || maxSeen.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)

			mu.Lock()
			attempts[id]++
			mu.Unlock()

			if id == "4" || id == "15" || id == "23" {
				return errors.New("boom")
			}
			return nil
		},
	).Times(23)

	var progress []models.BatchProgress
	res := f.dispatcher.DeleteMany(ctx, ids(23), func(p models.BatchProgress) {
		progress = append(progress, p)
	})

	assert.Equal(t, 23, res.Requested)
	assert.Equal(t, 20, res.Succeeded)
	assert.Equal(t, 3, res.Failed)
	assert.Equal(t, 23, res.Succeeded+res.Failed)
	assert.ElementsMatch(t, []models.RecordID{"4", "15", "23"}, res.FailedIDs)
	assert.Equal(t, models.BatchPartial, res.Outcome())

	require.Len(t, progress, 3)
	assert.Equal(t, []int{10, 20, 23}, []int{progress[0].Done, progress[1].Done, progress[2].Done})
	assert.Equal(t, 23, progress[2].Total)
	assert.Equal(t, 100, progress[2].Percent())

	assert.Len(t, attempts, 23)
	for id, n := range attempts {
		assert.Equal(t, 1, n, "id %s", id)
	}
	assert.LessOrEqual(t, maxSeen.Load(), int32(10))

	assert.Len(t, f.fetcher.calls(), 1, "one refresh after the whole run")
}

func TestDeleteMany_DuplicatesSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10, fullRecord("1", "a"), fullRecord("2", "b"))
	ctx := context.Background()

	f.adapter.EXPECT().DeleteUser(gomock.Any(), models.RecordID("1")).Return(nil)
	f.adapter.EXPECT().DeleteUser(gomock.Any(), models.RecordID("2")).Return(nil)

	res := f.dispatcher.DeleteMany(ctx, []models.RecordID{"1", "1", "2"}, nil)

	assert.Equal(t, models.BatchResult{Requested: 3, Succeeded: 2, Skipped: 1}, res)
	assert.Equal(t, models.BatchSucceeded, res.Outcome())
	assert.Empty(t, f.store.Snapshot().Records)
}

func TestDeleteMany_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)

	called := false
	res := f.dispatcher.DeleteMany(context.Background(), nil, func(models.BatchProgress) { called = true })

	assert.Equal(t, models.BatchEmpty, res.Outcome())
	assert.False(t, called)
	assert.Empty(t, f.fetcher.calls())
}

func TestDeleteMany_AllFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 2, fullRecord("1", "a"), fullRecord("2", "b"), fullRecord("3", "c"))

	f.adapter.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("DELETE: %w", adapter.ErrNetwork)).Times(3)

	res := f.dispatcher.DeleteMany(context.Background(), ids(3), nil)

	assert.Equal(t, 3, res.Failed)
	assert.Equal(t, models.BatchFailed, res.Outcome())
	for _, v := range f.store.Snapshot().Records {
		assert.Equal(t, models.SyncFailed, v.State)
	}
}

// ── Rehash ────────────────────────────────────────────────────────────────────

func TestRehashAll_AllHashedIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)

	records := []models.UserRecord{fullRecord("1", testHash), fullRecord("2", "$2b$10$whatever")}
	res := f.dispatcher.RehashAll(context.Background(), records, func(models.BatchProgress) {
		t.Fatal("no progress expected")
	})

	assert.Equal(t, 0, res.Succeeded)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, models.BatchEmpty, res.Outcome())
	assert.Empty(t, f.fetcher.calls())
}

func TestRehashAll_SendsFullRecordWithOnlyPasswordReplaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := []models.UserRecord{fullRecord("1", "secret1"), fullRecord("2", testHash), fullRecord("3", "secret3")}
	f := newTestDispatcher(t, ctrl, 10, records...)
	ctx := context.Background()

	var (
		mu   sync.Mutex
		sent = map[models.RecordID]models.UserRecord{}
	)
	f.adapter.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.UserRecord) error {
			mu.Lock()
			sent[r.ID] = r
			mu.Unlock()
			return nil
		},
	).Times(2)

	var progress []models.BatchProgress
	res := f.dispatcher.RehashAll(ctx, records, func(p models.BatchProgress) { progress = append(progress, p) })

	assert.Equal(t, models.BatchResult{Requested: 3, Succeeded: 2, Skipped: 1}, res)
	require.Len(t, progress, 1)
	assert.Equal(t, 2, progress[0].Total, "progress counts the plaintext subset")
	assert.Equal(t, 100, progress[0].Percent())

	for _, original := range []models.UserRecord{records[0], records[2]} {
		got := sent[original.ID]
		assert.True(t, got.IsHashed())
		assert.True(t, f.hasher.Compare(got.Password, original.Password))
		assert.Equal(t, original.WithPassword(got.Password), got, "every other field is unchanged")

		stored, ok := f.store.Get(original.ID)
		require.True(t, ok)
		assert.Equal(t, got, stored.UserRecord)
		assert.Equal(t, models.SyncSynced, stored.State)
	}
}

func TestRehashAll_FailureLeavesPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := []models.UserRecord{fullRecord("1", "secret1")}
	f := newTestDispatcher(t, ctrl, 10, records...)

	f.adapter.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	res := f.dispatcher.RehashAll(context.Background(), records, nil)
	assert.Equal(t, models.BatchFailed, res.Outcome())

	stored, _ := f.store.Get("1")
	assert.Equal(t, "secret1", stored.Password)
	assert.Equal(t, models.SyncFailed, stored.State)
}

func TestRehashOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10, fullRecord("1", "secret1"))
	ctx := context.Background()

	require.NoError(t, f.dispatcher.RehashOne(ctx, fullRecord("2", testHash)), "hashed record is skipped")
	assert.Empty(t, f.fetcher.calls())

	f.adapter.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.UserRecord) error {
			assert.True(t, f.hasher.Compare(r.Password, "secret1"))
			return nil
		},
	)
	require.NoError(t, f.dispatcher.RehashOne(ctx, fullRecord("1", "secret1")))

	stored, _ := f.store.Get("1")
	assert.True(t, stored.IsHashed())
	assert.Len(t, f.fetcher.calls(), 1)
}

func TestRehashOne_HashFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10, fullRecord("1", "secret1"))
	hasher := mock.NewMockPasswordHasher(ctrl)
	d := NewMutationDispatcher(f.adapter, f.store, f.fetcher, hasher, 10, logger.Nop())

	hasher.EXPECT().Hash("secret1").Return("", crypto.ErrPasswordTooLong)
	f.adapter.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Times(0)

	err := d.RehashOne(context.Background(), fullRecord("1", "secret1"))
	require.ErrorIs(t, err, crypto.ErrPasswordTooLong)

	stored, _ := f.store.Get("1")
	assert.Equal(t, models.SyncFailed, stored.State)
	assert.Equal(t, "secret1", stored.Password)
}

// ── Update / Edit / Create ────────────────────────────────────────────────────

func TestUpdate_RefusesDowngrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10, fullRecord("1", testHash))

	err := f.dispatcher.Update(context.Background(), fullRecord("1", "plain"))
	assert.ErrorIs(t, err, ErrPasswordDowngrade)

	stored, _ := f.store.Get("1")
	assert.Equal(t, testHash, stored.Password)
}

func TestUpdate_RefusesDowngradeOfRecordMissingFromSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)
	ctx := context.Background()

	f.adapter.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.UserRecord) (models.UserRecord, error) {
			u.ID = "7"
			return u, nil
		})
	req := models.SignUpRequest{UserRecord: fullRecord("", "secret1"), ConfirmPassword: "secret1", AcceptedTerms: true}
	created, err := f.dispatcher.Create(ctx, req)
	require.NoError(t, err)
	require.True(t, created.IsHashed())

	_, inSnapshot := f.store.Get(created.ID)
	require.False(t, inSnapshot)

	f.adapter.EXPECT().GetUser(ctx, created.ID).Return(created, nil)
	f.adapter.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Times(0)

	err = f.dispatcher.Update(ctx, created.WithPassword("plaintext"))
	assert.ErrorIs(t, err, ErrPasswordDowngrade)
}

func TestUpdate_RecordMissingFromSnapshot(t *testing.T) {
	tests := []struct {
		name       string
		stored     models.UserRecord
		getErr     error
		wantUpdate bool
		wantErr    error
	}{
		{
			name:       "stored plaintext is replaced",
			stored:     fullRecord("5", "old"),
			wantUpdate: true,
		},
		{
			name:    "unknown id",
			getErr:  notFound(),
			wantErr: ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestDispatcher(t, ctrl, 10)
			ctx := context.Background()
			changed := fullRecord("5", "new")

			f.adapter.EXPECT().GetUser(ctx, models.RecordID("5")).Return(tt.stored, tt.getErr)
			if tt.wantUpdate {
				f.adapter.EXPECT().UpdateUser(ctx, changed).Return(nil)
			}

			err := f.dispatcher.Update(ctx, changed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdate_HashedPasswordSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)
	ctx := context.Background()
	changed := fullRecord("5", testHash)

	f.adapter.EXPECT().UpdateUser(ctx, changed).Return(nil)

	assert.NoError(t, f.dispatcher.Update(ctx, changed))
}

func TestUpdate_SendsCompleteRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	original := fullRecord("1", testHash)
	f := newTestDispatcher(t, ctrl, 10, original)
	ctx := context.Background()

	changed := original
	changed.Address = "99 New Rd"

	f.adapter.EXPECT().UpdateUser(ctx, changed).Return(nil)

	require.NoError(t, f.dispatcher.Update(ctx, changed))
	stored, _ := f.store.Get("1")
	assert.Equal(t, changed, stored.UserRecord)
}

func TestUpdate_FailureMarksFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10, fullRecord("1", "a"))

	f.adapter.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		Return(&adapter.BackendError{Status: http.StatusConflict, Message: "duplicate username"})

	err := f.dispatcher.Update(context.Background(), fullRecord("1", "a"))
	require.ErrorIs(t, err, adapter.ErrConflict)

	stored, _ := f.store.Get("1")
	assert.Equal(t, models.SyncFailed, stored.State)
}

func TestEdit_PasswordRules(t *testing.T) {
	tests := []struct {
		name        string
		original    string
		newPassword string
		check       func(t *testing.T, h crypto.PasswordHasher, got string)
	}{
		{
			name:        "empty keeps original",
			original:    testHash,
			newPassword: "",
			check:       func(t *testing.T, _ crypto.PasswordHasher, got string) { assert.Equal(t, testHash, got) },
		},
		{
			name:        "hashed value passes through",
			original:    "old",
			newPassword: "$2y$10$precomputed",
			check: func(t *testing.T, _ crypto.PasswordHasher, got string) {
				assert.Equal(t, "$2y$10$precomputed", got)
			},
		},
		{
			name:        "plaintext is hashed",
			original:    testHash,
			newPassword: "brand-new",
			check: func(t *testing.T, h crypto.PasswordHasher, got string) {
				assert.True(t, h.Compare(got, "brand-new"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			original := fullRecord("7", tt.original)
			f := newTestDispatcher(t, ctrl, 10, original)
			ctx := context.Background()

			req := models.EditRequest{
				TitlePrefix: "Dr.",
				FirstName:   "Jane",
				LastName:    "Roe",
				Username:    "jane",
				Address:     "Chiang Mai",
				Sex:         "Female",
				Birthday:    "1991-02-03",
				NewPassword: tt.newPassword,
			}

			f.adapter.EXPECT().GetUser(ctx, models.RecordID("7")).Return(original, nil)
			f.adapter.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, r models.UserRecord) error {
					assert.Equal(t, models.RecordID("7"), r.ID)
					assert.Equal(t, "Dr.", r.TitlePrefix)
					assert.Equal(t, "Jane", r.FirstName)
					assert.Equal(t, "Roe", r.LastName)
					assert.Equal(t, "jane", r.Username)
					assert.Equal(t, "Chiang Mai", r.Address)
					assert.Equal(t, "Female", r.Sex)
					assert.Equal(t, "1991-02-03", r.Birthday)
					tt.check(t, f.hasher, r.Password)
					return nil
				},
			)

			edited, err := f.dispatcher.Edit(ctx, "7", req)
			require.NoError(t, err)
			tt.check(t, f.hasher, edited.Password)
		})
	}
}

func TestEdit_NotFoundRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)

	f.adapter.EXPECT().GetUser(gomock.Any(), models.RecordID("9")).Return(models.UserRecord{}, notFound())

	_, err := f.dispatcher.Edit(context.Background(), "9", models.EditRequest{})
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Len(t, f.fetcher.calls(), 1)
}

func TestCreate_HashesPlaintextAndClearsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)
	ctx := context.Background()

	req := models.SignUpRequest{UserRecord: fullRecord("should-go", "secret1"), ConfirmPassword: "secret1", AcceptedTerms: true}

	f.adapter.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.UserRecord) (models.UserRecord, error) {
			assert.Empty(t, r.ID)
			assert.True(t, f.hasher.Compare(r.Password, "secret1"))
			r.ID = "42"
			return r, nil
		},
	)

	created, err := f.dispatcher.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.RecordID("42"), created.ID)
	assert.Equal(t, req.Username, created.Username)
	assert.Len(t, f.fetcher.calls(), 1)
}

func TestCreate_KeepsHashedPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)
	ctx := context.Background()

	f.adapter.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.UserRecord) (models.UserRecord, error) {
			assert.Equal(t, testHash, r.Password)
			return r, nil
		},
	)

	_, err := f.dispatcher.Create(ctx, models.SignUpRequest{UserRecord: fullRecord("", testHash)})
	require.NoError(t, err)
}

// ── validation wrapper ────────────────────────────────────────────────────────

func TestDispatcherValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestDispatcher(t, ctrl, 10)
	d := NewDispatcherValidationService().Wrap(f.dispatcher)
	ctx := context.Background()

	req := models.SignUpRequest{UserRecord: fullRecord("", "123"), ConfirmPassword: "123", AcceptedTerms: true}
	_, err := d.Create(ctx, req)
	require.ErrorIs(t, err, ErrInvalidSignUpData)
	assert.Equal(t, "Password must be at least 6 characters.", UserMessage(err))

	_, err = d.Edit(ctx, "1", models.EditRequest{})
	assert.ErrorIs(t, err, ErrInvalidEditData)

	err = d.Update(ctx, fullRecord("", "x"))
	assert.ErrorIs(t, err, ErrInvalidRecordData)

	f.adapter.EXPECT().DeleteUser(ctx, models.RecordID("5")).Return(nil)
	assert.NoError(t, d.DeleteOne(ctx, "5"))
}
